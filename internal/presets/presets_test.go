package presets

import (
	"testing"

	"spatial-pd/internal/sims/dilemma"
)

func TestCatalogLoadsAndValidates(t *testing.T) {
	entries, err := All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("catalog must not be empty")
	}

	seen := map[string]bool{}
	for _, p := range entries {
		if seen[p.Name] {
			t.Fatalf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Rounds <= 0 {
			t.Fatalf("%s: rounds %d must be positive", p.Name, p.Rounds)
		}
		if p.Description == "" {
			t.Fatalf("%s: missing description", p.Name)
		}
		if err := p.Config().Validate(); err != nil {
			t.Fatalf("%s: invalid engine config: %v", p.Name, err)
		}
	}
}

func TestClassicDilemmaOrdering(t *testing.T) {
	p, err := ByName("classic_prisoners_dilemma")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	pay := p.Payoff
	if !(pay.DC > pay.CC && pay.CC > pay.DD && pay.DD > pay.CD) {
		t.Fatalf("classic preset must satisfy DC > CC > DD > CD, got %+v", pay)
	}
	if p.Config().Update != dilemma.UpdateSynchronous {
		t.Fatalf("classic preset should be synchronous")
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("no_such_game"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestPresetConstructsRunnableWorld(t *testing.T) {
	p, err := ByName("stag_hunt_game")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	world, err := dilemma.NewWithConfig(p.Config())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	world.Step()
	if world.Round() != 1 {
		t.Fatalf("round %d, want 1", world.Round())
	}
}

func TestNamesMatchCatalogOrder(t *testing.T) {
	entries, err := All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != len(entries) {
		t.Fatalf("Names length %d, entries %d", len(names), len(entries))
	}
	for i := range names {
		if names[i] != entries[i].Name {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], entries[i].Name)
		}
	}
}
