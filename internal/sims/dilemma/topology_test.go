package dilemma

import "testing"

func neighborTestWorld(t *testing.T, hood Neighborhood) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 7
	cfg.Height = 5
	cfg.Density = 1
	cfg.Neighborhood = hood
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

func TestNeighborCountUniformOnTorus(t *testing.T) {
	cases := []struct {
		hood Neighborhood
		want int
	}{
		{NeighborhoodMoore, 8},
		{NeighborhoodVonNeumann, 4},
	}

	for _, tc := range cases {
		world := neighborTestWorld(t, tc.hood)
		probes := [][2]int{
			{0, 0}, {6, 0}, {0, 4}, {6, 4}, // corners
			{3, 0}, {3, 4}, {0, 2}, {6, 2}, // edge midpoints
			{3, 2}, // interior
		}
		for _, p := range probes {
			neighbors := world.candidateNeighbors(p[0], p[1])
			if len(neighbors) != tc.want {
				t.Fatalf("%s neighbors of (%d,%d): got %d, want %d",
					tc.hood, p[0], p[1], len(neighbors), tc.want)
			}
			seen := map[int]bool{}
			self := p[1]*world.w + p[0]
			for _, n := range neighbors {
				if n < 0 || n >= world.w*world.h {
					t.Fatalf("%s neighbor index %d of (%d,%d) out of range", tc.hood, n, p[0], p[1])
				}
				if n == self {
					t.Fatalf("%s neighbors of (%d,%d) include self", tc.hood, p[0], p[1])
				}
				if seen[n] {
					t.Fatalf("%s neighbors of (%d,%d) contain duplicate index %d", tc.hood, p[0], p[1], n)
				}
				seen[n] = true
			}
		}
	}
}

func TestMooreCornerWrapsToOppositeCorner(t *testing.T) {
	world := neighborTestWorld(t, NeighborhoodMoore)

	neighbors := world.candidateNeighbors(0, 0)
	oppositeCorner := (world.h-1)*world.w + (world.w - 1)
	found := false
	for _, n := range neighbors {
		if n == oppositeCorner {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (0,0) Moore neighborhood to wrap to (%d,%d)", world.w-1, world.h-1)
	}
}

func TestVonNeumannExcludesDiagonals(t *testing.T) {
	world := neighborTestWorld(t, NeighborhoodVonNeumann)

	diagonal := 1*world.w + 1
	for _, n := range world.candidateNeighbors(2, 2) {
		if n == diagonal {
			t.Fatalf("von Neumann neighborhood of (2,2) must not contain (1,1)")
		}
	}
}
