package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"spatial-pd/internal/sims/dilemma"
)

// jsonlSink writes one JSON document per round into a zstd-compressed file.
type jsonlSink struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

func newJSONLSink(path string) (*jsonlSink, error) {
	if path == "" {
		return nil, fmt.Errorf("recorder: jsonl sink requires an output path")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("recorder: zstd writer: %w", err)
	}
	return &jsonlSink{f: f, enc: enc, w: bufio.NewWriter(enc)}, nil
}

func (s *jsonlSink) WriteRound(m dilemma.Metrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *jsonlSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		_ = s.enc.Close()
		_ = s.f.Close()
		return err
	}
	if err := s.enc.Close(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
