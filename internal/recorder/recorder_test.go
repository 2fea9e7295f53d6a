package recorder

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"spatial-pd/internal/sims/dilemma"
)

func sampleRun(t *testing.T, rounds int) (*dilemma.World, []dilemma.Metrics) {
	t.Helper()
	cfg := dilemma.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 12
	cfg.Seed = 5
	world, err := dilemma.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	stream := []dilemma.Metrics{world.Metrics()}
	for i := 0; i < rounds; i++ {
		world.Step()
		stream = append(stream, world.Metrics())
	}
	return world, stream
}

func TestMemorySinkKeepsStream(t *testing.T) {
	_, stream := sampleRun(t, 10)

	sink := NewMemorySink()
	for _, m := range stream {
		if err := sink.WriteRound(m); err != nil {
			t.Fatalf("WriteRound: %v", err)
		}
	}
	got := sink.Rounds()
	if len(got) != len(stream) {
		t.Fatalf("recorded %d rounds, want %d", len(got), len(stream))
	}
	for i := range got {
		if got[i] != stream[i] {
			t.Fatalf("round %d mismatch: %+v != %+v", i, got[i], stream[i])
		}
	}
}

func TestCSVSinkWritesHeaderAndRows(t *testing.T) {
	_, stream := sampleRun(t, 5)
	path := filepath.Join(t.TempDir(), "run.csv")

	sink, err := NewSink("csv", path)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	for _, m := range stream {
		if err := sink.WriteRound(m); err != nil {
			t.Fatalf("WriteRound: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != len(stream)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(stream)+1)
	}
	if rows[0][0] != "round" || rows[0][4] != "cooperation_rate" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "0" {
		t.Fatalf("first data row should be round 0, got %q", rows[1][0])
	}
}

func TestJSONLSinkRoundTrips(t *testing.T) {
	_, stream := sampleRun(t, 8)
	path := filepath.Join(t.TempDir(), "run.jsonl.zst")

	sink, err := NewSink("jsonl", path)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	for _, m := range stream {
		if err := sink.WriteRound(m); err != nil {
			t.Fatalf("WriteRound: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer dec.Close()

	var got []dilemma.Metrics
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		var m dilemma.Metrics
		if err := json.Unmarshal(scanner.Bytes(), &m); err != nil {
			t.Fatalf("decode line: %v", err)
		}
		got = append(got, m)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != len(stream) {
		t.Fatalf("decoded %d rounds, want %d", len(got), len(stream))
	}
	for i := range got {
		if got[i] != stream[i] {
			t.Fatalf("round %d mismatch: %+v != %+v", i, got[i], stream[i])
		}
	}
}

func TestNewSinkRejectsUnknownKind(t *testing.T) {
	if _, err := NewSink("parquet", ""); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestFileSinksRequirePath(t *testing.T) {
	if _, err := NewSink("csv", ""); err == nil {
		t.Fatal("csv sink must require a path")
	}
	if _, err := NewSink("jsonl", ""); err == nil {
		t.Fatal("jsonl sink must require a path")
	}
}
