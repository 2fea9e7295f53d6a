package dilemma

import (
	"spatial-pd/internal/core"
)

// Neighbor offsets are enumerated in a fixed order; together with the
// self-first rule in decideNext this makes tie-breaks deterministic.
var (
	mooreOffsets = [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	vonNeumannOffsets = [][2]int{
		{0, -1}, {-1, 0}, {1, 0}, {0, 1},
	}
)

// World stores all state for one spatial game run. Agents live in flat
// row-major layers over a toroidal grid; a cell with occupied=false has no
// agent and is skipped everywhere.
type World struct {
	cfg Config

	w, h int

	occupied []bool
	strategy []Strategy
	next     []Strategy
	score    []float64

	// occupiedIdx lists occupied cells in row-major order and is fixed for
	// the lifetime of a run; order is per-round scratch for the
	// asynchronous permutation.
	occupiedIdx []int
	order       []int

	offsets [][2]int
	display []uint8

	rng     *core.RNG
	round   int
	metrics Metrics
}

// New returns a dilemma world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return Must(cfg)
}

// NewWithConfig returns a dilemma world for the provided configuration. The
// configuration is validated first: the engine never starts in an invalid
// state.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	offsets := mooreOffsets
	if cfg.Neighborhood == NeighborhoodVonNeumann {
		offsets = vonNeumannOffsets
	}
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		occupied:    make([]bool, total),
		strategy:    make([]Strategy, total),
		next:        make([]Strategy, total),
		score:       make([]float64, total),
		occupiedIdx: make([]int, 0, total),
		order:       make([]int, 0, total),
		offsets:     offsets,
		display:     make([]uint8, total),
	}
	w.Reset(0)
	return w, nil
}

// Must is NewWithConfig for configurations known to be valid, such as the
// output of FromMap. It panics on a validation error.
func Must(cfg Config) *World {
	w, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "dilemma" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer (empty/cooperator/defector per cell).
func (w *World) Cells() []uint8 { return w.display }

// Config returns a copy of the world configuration.
func (w *World) Config() Config { return w.cfg }

// Round returns the number of completed rounds since the last Reset.
func (w *World) Round() int { return w.round }

// Reset rebuilds the population using deterministic randomness. A zero seed
// falls back to the configured seed. The draw order is fixed: the placement
// shuffle first, then one strategy draw per occupied cell in row-major
// order.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.round = 0

	total := w.w * w.h
	for i := 0; i < total; i++ {
		w.occupied[i] = false
		w.strategy[i] = Cooperate
		w.next[i] = Cooperate
		w.score[i] = 0
	}

	w.placeAgents()
	w.rebuildDisplay()
	w.metrics = w.collectMetrics()
}

func (w *World) placeAgents() {
	total := w.w * w.h
	count := int(float64(total) * w.cfg.Density)
	if count > total {
		count = total
	}

	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	w.rng.Shuffle(total, func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	for _, idx := range positions[:count] {
		w.occupied[idx] = true
	}

	w.occupiedIdx = w.occupiedIdx[:0]
	for i := 0; i < total; i++ {
		if !w.occupied[i] {
			continue
		}
		w.occupiedIdx = append(w.occupiedIdx, i)
		if w.rng.Float64() < w.cfg.InitialCooperation {
			w.strategy[i] = Cooperate
		} else {
			w.strategy[i] = Defect
		}
	}
}

// Step advances the simulation by one full round under the configured
// discipline and refreshes the metrics from the committed state.
func (w *World) Step() {
	if len(w.occupiedIdx) > 0 {
		if w.cfg.Update == UpdateAsynchronous {
			w.stepAsynchronous()
		} else {
			w.stepSynchronous()
		}
		w.rebuildDisplay()
	}
	w.round++
	w.metrics = w.collectMetrics()
}

// stepSynchronous runs the two-phase discipline: all scores from the
// round-start strategies, then all decisions against those per-round scores,
// then a single commit. No agent observes another's pending strategy.
func (w *World) stepSynchronous() {
	for _, idx := range w.occupiedIdx {
		w.score[idx] = w.playNeighbors(idx)
	}
	for _, idx := range w.occupiedIdx {
		w.next[idx] = w.mutate(w.decideNext(idx))
	}
	for _, idx := range w.occupiedIdx {
		w.strategy[idx] = w.next[idx]
	}
}

// stepAsynchronous visits occupied cells in a fresh seeded permutation and
// commits each decision immediately, so later agents can observe strategies
// already updated this round. This is the defining difference from the
// synchronous discipline and must not be parallelized.
func (w *World) stepAsynchronous() {
	w.order = append(w.order[:0], w.occupiedIdx...)
	w.rng.Shuffle(len(w.order), func(i, j int) {
		w.order[i], w.order[j] = w.order[j], w.order[i]
	})
	for _, idx := range w.order {
		w.score[idx] = w.playNeighbors(idx)
		w.strategy[idx] = w.mutate(w.decideNext(idx))
	}
}

// playNeighbors sums the focal agent's payoff from one encounter with every
// occupied neighbor, using the strategies as currently stored.
func (w *World) playNeighbors(idx int) float64 {
	x := idx % w.w
	y := idx / w.w
	mine := w.strategy[idx]
	sum := 0.0
	for _, off := range w.offsets {
		n := core.WrapIndex(x+off[0], y+off[1], w.w, w.h)
		if !w.occupied[n] {
			continue
		}
		sum += w.cfg.Payoff.For(mine, w.strategy[n])
	}
	return sum
}

// decideNext applies imitate-the-best: adopt the strategy of whichever of
// the agent and its occupied neighbors holds the strictly highest score.
// Ties keep the agent's own strategy; ties between neighbors resolve to the
// earliest in offset order. An agent with no occupied neighbors keeps its
// strategy.
func (w *World) decideNext(idx int) Strategy {
	x := idx % w.w
	y := idx / w.w
	best := w.score[idx]
	bestStrategy := w.strategy[idx]
	for _, off := range w.offsets {
		n := core.WrapIndex(x+off[0], y+off[1], w.w, w.h)
		if !w.occupied[n] {
			continue
		}
		if w.score[n] > best {
			best = w.score[n]
			bestStrategy = w.strategy[n]
		}
	}
	return bestStrategy
}

// mutate flips the decided strategy with the configured probability. The
// draw happens after the deterministic decision, one per visited agent, and
// no draw is burned when mutation is disabled.
func (w *World) mutate(s Strategy) Strategy {
	if w.cfg.MutationRate <= 0 {
		return s
	}
	if w.rng.Float64() < w.cfg.MutationRate {
		return s.Opposite()
	}
	return s
}

// candidateNeighbors returns the wrapped linear indices of all neighborhood
// positions of (x, y), occupied or not.
func (w *World) candidateNeighbors(x, y int) []int {
	out := make([]int, 0, len(w.offsets))
	for _, off := range w.offsets {
		out = append(out, core.WrapIndex(x+off[0], y+off[1], w.w, w.h))
	}
	return out
}

// AgentView is the per-agent rendering attribute set consumed by
// presentation layers.
type AgentView struct {
	X, Y     int
	Strategy Strategy
	Score    float64
}

// Agents returns a snapshot of all occupied cells in row-major order.
func (w *World) Agents() []AgentView {
	out := make([]AgentView, 0, len(w.occupiedIdx))
	for _, idx := range w.occupiedIdx {
		out = append(out, AgentView{
			X:        idx % w.w,
			Y:        idx / w.w,
			Strategy: w.strategy[idx],
			Score:    w.score[idx],
		})
	}
	return out
}

// StrategyAt reports the strategy of the agent at (x, y), if any.
func (w *World) StrategyAt(x, y int) (Strategy, bool) {
	idx := core.WrapIndex(x, y, w.w, w.h)
	if !w.occupied[idx] {
		return 0, false
	}
	return w.strategy[idx], true
}

func init() {
	core.Register("dilemma", func(cfg map[string]string) core.Sim {
		return Must(FromMap(cfg))
	})
}
