package dilemma

import (
	"fmt"
	"strconv"
)

// Neighborhood selects how many cells count as adjacent.
type Neighborhood string

const (
	// NeighborhoodMoore is the 8-connected neighborhood (diagonals included).
	NeighborhoodMoore Neighborhood = "moore"
	// NeighborhoodVonNeumann is the 4-connected orthogonal neighborhood.
	NeighborhoodVonNeumann Neighborhood = "von_neumann"
)

// UpdateOrder selects the round discipline.
type UpdateOrder string

const (
	// UpdateSynchronous computes every agent's score and decision from the
	// round-start snapshot, then commits all strategies at once.
	UpdateSynchronous UpdateOrder = "synchronous"
	// UpdateAsynchronous visits occupied cells in a seeded random order and
	// commits each decision immediately.
	UpdateAsynchronous UpdateOrder = "asynchronous"
)

// Config controls a dilemma world. Structural fields (dimensions, density,
// neighborhood, update order) are fixed once the world is constructed;
// mutation rate and payoffs can be adjusted live via SetFloatParameter.
type Config struct {
	Width  int
	Height int

	Seed int64

	Density            float64
	Neighborhood       Neighborhood
	Update             UpdateOrder
	InitialCooperation float64
	MutationRate       float64

	Payoff PayoffMatrix
}

// DefaultConfig returns the standard configuration: a dense 50x50 classic
// Prisoner's Dilemma with Moore neighborhoods and synchronous updates.
func DefaultConfig() Config {
	return Config{
		Width:              50,
		Height:             50,
		Seed:               42,
		Density:            0.8,
		Neighborhood:       NeighborhoodMoore,
		Update:             UpdateSynchronous,
		InitialCooperation: 0.5,
		MutationRate:       0.01,
		Payoff:             PayoffMatrix{CC: 3, CD: 0, DC: 5, DD: 1},
	}
}

// Validate rejects configurations the engine must never start with.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("dilemma: width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("dilemma: height must be positive, got %d", c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("dilemma: density must be in [0,1], got %g", c.Density)
	}
	if c.InitialCooperation < 0 || c.InitialCooperation > 1 {
		return fmt.Errorf("dilemma: initial cooperation rate must be in [0,1], got %g", c.InitialCooperation)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("dilemma: mutation rate must be in [0,1], got %g", c.MutationRate)
	}
	switch c.Neighborhood {
	case NeighborhoodMoore, NeighborhoodVonNeumann:
	default:
		return fmt.Errorf("dilemma: unknown neighborhood %q", c.Neighborhood)
	}
	switch c.Update {
	case UpdateSynchronous, UpdateAsynchronous:
	default:
		return fmt.Errorf("dilemma: unknown update order %q", c.Update)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Malformed or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overlays string-map overrides onto an existing configuration,
// ignoring malformed or out-of-range values.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		switch Neighborhood(v) {
		case NeighborhoodMoore, NeighborhoodVonNeumann:
			c.Neighborhood = Neighborhood(v)
		}
	}
	if v, ok := cfg["update"]; ok {
		switch UpdateOrder(v) {
		case UpdateSynchronous, UpdateAsynchronous:
			c.Update = UpdateOrder(v)
		}
	}
	if v, ok := cfg["initial_cooperation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.InitialCooperation = parsed
		}
	}
	if v, ok := cfg["mutation_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.MutationRate = parsed
		}
	}
	if v, ok := cfg["payoff_cc"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Payoff.CC = parsed
		}
	}
	if v, ok := cfg["payoff_cd"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Payoff.CD = parsed
		}
	}
	if v, ok := cfg["payoff_dc"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Payoff.DC = parsed
		}
	}
	if v, ok := cfg["payoff_dd"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Payoff.DD = parsed
		}
	}
	return c
}
