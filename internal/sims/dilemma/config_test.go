package dilemma

import "testing"

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"density above one", func(c *Config) { c.Density = 1.2 }},
		{"negative density", func(c *Config) { c.Density = -0.1 }},
		{"cooperation above one", func(c *Config) { c.InitialCooperation = 2 }},
		{"negative mutation", func(c *Config) { c.MutationRate = -0.5 }},
		{"unknown neighborhood", func(c *Config) { c.Neighborhood = "hex" }},
		{"unknown update order", func(c *Config) { c.Update = "waves" }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if _, err := NewWithConfig(cfg); err == nil {
			t.Fatalf("%s: construction must fail on invalid config", tc.name)
		}
	}
}

func TestValidateAcceptsAnyPayoff(t *testing.T) {
	cfg := DefaultConfig()
	// Stag Hunt ordering, not a dilemma; the engine does not enforce
	// DC > CC > DD > CD.
	cfg.Payoff = PayoffMatrix{CC: 4, CD: 0, DC: 3, DD: 2}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	cfg.Payoff = PayoffMatrix{CC: -1.5, CD: 2.25, DC: 0, DD: -7}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error for negative payoffs: %v", err)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                   "32",
		"h":                   "24",
		"seed":                "1234",
		"density":             "0.5",
		"neighborhood":        "von_neumann",
		"update":              "asynchronous",
		"initial_cooperation": "0.25",
		"mutation_rate":       "0.1",
		"payoff_dc":           "6.5",
	})

	if cfg.Width != 32 || cfg.Height != 24 {
		t.Fatalf("dimensions %dx%d, want 32x24", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 1234 {
		t.Fatalf("seed %d, want 1234", cfg.Seed)
	}
	if cfg.Density != 0.5 {
		t.Fatalf("density %g, want 0.5", cfg.Density)
	}
	if cfg.Neighborhood != NeighborhoodVonNeumann {
		t.Fatalf("neighborhood %q, want von_neumann", cfg.Neighborhood)
	}
	if cfg.Update != UpdateAsynchronous {
		t.Fatalf("update %q, want asynchronous", cfg.Update)
	}
	if cfg.InitialCooperation != 0.25 || cfg.MutationRate != 0.1 {
		t.Fatalf("rates %g/%g, want 0.25/0.1", cfg.InitialCooperation, cfg.MutationRate)
	}
	if cfg.Payoff.DC != 6.5 {
		t.Fatalf("payoff DC %g, want 6.5", cfg.Payoff.DC)
	}
}

func TestFromMapIgnoresMalformedValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":             "not-a-number",
		"h":             "-4",
		"density":       "1.7",
		"neighborhood":  "triangular",
		"update":        "sometimes",
		"mutation_rate": "NaNish",
	})
	if cfg != def {
		t.Fatalf("malformed overrides must leave defaults intact: got %+v", cfg)
	}
}
