// Package presets holds the catalog of named game configurations. Loading a
// preset is pure data substitution into a dilemma.Config; the catalog itself
// is embedded JSON checked against an embedded schema at first use.
package presets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"spatial-pd/internal/sims/dilemma"
)

//go:embed presets.json
var catalogJSON []byte

//go:embed presets.schema.json
var schemaJSON string

// Payoff mirrors the four payoff scalars of a 2x2 game.
type Payoff struct {
	CC float64 `json:"cc"`
	CD float64 `json:"cd"`
	DC float64 `json:"dc"`
	DD float64 `json:"dd"`
}

// Preset is one named entry of the catalog: engine construction parameters
// plus a suggested run length and a free-text description.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rounds      int    `json:"rounds"`

	Width              int     `json:"width"`
	Height             int     `json:"height"`
	Density            float64 `json:"density"`
	Neighborhood       string  `json:"neighborhood"`
	Update             string  `json:"update"`
	InitialCooperation float64 `json:"initial_cooperation"`
	MutationRate       float64 `json:"mutation_rate"`
	Seed               int64   `json:"seed"`
	Payoff             Payoff  `json:"payoff"`
}

// Config converts the preset into an engine configuration.
func (p Preset) Config() dilemma.Config {
	return dilemma.Config{
		Width:              p.Width,
		Height:             p.Height,
		Seed:               p.Seed,
		Density:            p.Density,
		Neighborhood:       dilemma.Neighborhood(p.Neighborhood),
		Update:             dilemma.UpdateOrder(p.Update),
		InitialCooperation: p.InitialCooperation,
		MutationRate:       p.MutationRate,
		Payoff: dilemma.PayoffMatrix{
			CC: p.Payoff.CC,
			CD: p.Payoff.CD,
			DC: p.Payoff.DC,
			DD: p.Payoff.DD,
		},
	}
}

var (
	loadOnce sync.Once
	catalog  []Preset
	loadErr  error
)

func load() ([]Preset, error) {
	loadOnce.Do(func() {
		schema, err := jsonschema.CompileString("presets.schema.json", schemaJSON)
		if err != nil {
			loadErr = fmt.Errorf("presets: compile schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(catalogJSON, &doc); err != nil {
			loadErr = fmt.Errorf("presets: parse catalog: %w", err)
			return
		}
		if err := schema.Validate(doc); err != nil {
			loadErr = fmt.Errorf("presets: catalog does not match schema: %w", err)
			return
		}
		var entries []Preset
		if err := json.Unmarshal(catalogJSON, &entries); err != nil {
			loadErr = fmt.Errorf("presets: decode catalog: %w", err)
			return
		}
		for _, p := range entries {
			if err := p.Config().Validate(); err != nil {
				loadErr = fmt.Errorf("presets: %q: %w", p.Name, err)
				return
			}
		}
		catalog = entries
	})
	return catalog, loadErr
}

// All returns every preset in catalog order.
func All() ([]Preset, error) {
	return load()
}

// ByName looks up a preset by its catalog name.
func ByName(name string) (Preset, error) {
	entries, err := load()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range entries {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("presets: unknown preset %q", name)
}

// Names lists the catalog names in order.
func Names() ([]string, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, p := range entries {
		names[i] = p.Name
	}
	return names, nil
}
