//go:build sqlite

package recorder

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestSQLiteSinkPersistsRounds(t *testing.T) {
	_, stream := sampleRun(t, 6)
	path := filepath.Join(t.TempDir(), "run.db")

	sink, err := NewSink("sqlite", path)
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

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM rounds`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(stream) {
		t.Fatalf("stored %d rounds, want %d", count, len(stream))
	}

	var rate float64
	if err := db.QueryRow(`SELECT cooperation_rate FROM rounds WHERE round = 0`).Scan(&rate); err != nil {
		t.Fatalf("select round 0: %v", err)
	}
	if rate != stream[0].CooperationRate {
		t.Fatalf("round 0 cooperation rate %g, want %g", rate, stream[0].CooperationRate)
	}
}
