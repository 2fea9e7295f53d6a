// Package recorder persists the per-round metric stream of a run. Sinks
// consume the engine's read-only query surface only; a sink failure must
// never corrupt or halt the simulation loop, so callers report write errors
// and keep stepping.
package recorder

import (
	"fmt"

	"spatial-pd/internal/sims/dilemma"
)

// Sink receives one metrics snapshot per completed round.
type Sink interface {
	WriteRound(m dilemma.Metrics) error
	Close() error
}

// NewSink constructs a sink for the given backend kind. Supported kinds are
// "memory" (default), "csv", "jsonl" (zstd-compressed JSON lines) and
// "sqlite" (requires the sqlite build tag).
func NewSink(kind, path string) (Sink, error) {
	switch kind {
	case "", "memory":
		return NewMemorySink(), nil
	case "csv":
		return newCSVSink(path)
	case "jsonl":
		return newJSONLSink(path)
	case "sqlite":
		return newSQLiteSink(path)
	default:
		return nil, fmt.Errorf("recorder: unsupported sink backend %q", kind)
	}
}
