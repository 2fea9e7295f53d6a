package recorder

import (
	"sync"

	"spatial-pd/internal/sims/dilemma"
)

// MemorySink buffers the metric stream in memory, mainly for tests and the
// sweep command's per-run summaries.
type MemorySink struct {
	mu     sync.Mutex
	rounds []dilemma.Metrics
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// WriteRound appends the snapshot to the buffer.
func (s *MemorySink) WriteRound(m dilemma.Metrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = append(s.rounds, m)
	return nil
}

// Close is a no-op.
func (s *MemorySink) Close() error { return nil }

// Rounds returns a copy of everything recorded so far.
func (s *MemorySink) Rounds() []dilemma.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dilemma.Metrics(nil), s.rounds...)
}
