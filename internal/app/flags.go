package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset string
	Scale  int
	TPS    int
	Seed   int64
	Panel  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "classic_prisoners_dilemma", Scale: 8, TPS: 10, Seed: 0, Panel: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "game preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the run (0 uses the preset seed)")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
}
