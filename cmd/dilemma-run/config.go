package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig describes one batch run: the preset to start from, optional
// engine overrides, the run length and the metrics sink.
type RunConfig struct {
	Preset string `yaml:"preset"`
	Rounds int    `yaml:"rounds"`
	Seed   int64  `yaml:"seed"`

	// Record selects the sink backend (memory, csv, jsonl, sqlite); Out is
	// its output path.
	Record string `yaml:"record"`
	Out    string `yaml:"out"`

	// Overrides are flag-style engine config keys, e.g. mutation_rate: "0.02".
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// DefaultRunConfig returns the standard batch configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Preset: "classic_prisoners_dilemma",
		Record: "memory",
	}
}

// LoadRunConfig reads a YAML run configuration, starting from defaults. An
// empty path returns the defaults unchanged.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects run configurations that cannot be executed.
func (c RunConfig) Validate() error {
	if c.Preset == "" {
		return fmt.Errorf("run config: preset is required")
	}
	if c.Rounds < 0 {
		return fmt.Errorf("run config: rounds must not be negative, got %d", c.Rounds)
	}
	switch c.Record {
	case "", "memory", "csv", "jsonl", "sqlite":
	default:
		return fmt.Errorf("run config: unknown record backend %q", c.Record)
	}
	return nil
}
