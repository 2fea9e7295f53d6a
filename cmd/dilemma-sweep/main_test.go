package main

import (
	"math"
	"testing"

	"spatial-pd/internal/sims/dilemma"
)

func TestSummarize(t *testing.T) {
	runs := []runResult{
		{preset: "p", finalCoop: 0.2, finalScore: 10, clustering: 0.5, roundsStable: 50},
		{preset: "p", finalCoop: 0.4, finalScore: 20, clustering: 0.7, roundsStable: 3},
	}
	s := summarize("p", runs)
	if s.runs != 2 {
		t.Fatalf("runs = %d", s.runs)
	}
	if math.Abs(s.meanCoop-0.3) > 1e-12 {
		t.Fatalf("meanCoop = %g", s.meanCoop)
	}
	if math.Abs(s.stdCoop-0.1) > 1e-12 {
		t.Fatalf("stdCoop = %g", s.stdCoop)
	}
	if math.Abs(s.meanScore-15) > 1e-12 || math.Abs(s.meanClust-0.6) > 1e-12 {
		t.Fatalf("means %g %g", s.meanScore, s.meanClust)
	}
	if s.stableRuns != 1 {
		t.Fatalf("stableRuns = %d", s.stableRuns)
	}
}

func TestStableTail(t *testing.T) {
	history := []dilemma.Metrics{
		{CooperationRate: 0.9},
		{CooperationRate: 0.5},
		{CooperationRate: 0.5},
		{CooperationRate: 0.5},
	}
	if got := stableTail(history); got != 3 {
		t.Fatalf("stableTail = %d, want 3", got)
	}
	if got := stableTail(nil); got != 0 {
		t.Fatalf("empty history: %d", got)
	}
	whole := []dilemma.Metrics{{CooperationRate: 1}, {CooperationRate: 1}}
	if got := stableTail(whole); got != 2 {
		t.Fatalf("fully stable history: %d", got)
	}
}
