package dilemma

import (
	"strconv"

	"spatial-pd/internal/core"
)

// Parameters reports the current configuration for HUD/inspection purposes.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				floatParam("density", "Agent density", cfg.Density),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				stringParam("neighborhood", "Neighborhood", string(cfg.Neighborhood)),
				stringParam("update", "Update order", string(cfg.Update)),
				floatParam("initial_cooperation", "Initial cooperation", cfg.InitialCooperation),
				floatParam("mutation_rate", "Mutation rate", cfg.MutationRate),
			},
		},
		{
			Name: "Payoff",
			Params: []core.Parameter{
				floatParam("payoff_cc", "Reward (C vs C)", cfg.Payoff.CC),
				floatParam("payoff_cd", "Sucker (C vs D)", cfg.Payoff.CD),
				floatParam("payoff_dc", "Temptation (D vs C)", cfg.Payoff.DC),
				floatParam("payoff_dd", "Punishment (D vs D)", cfg.Payoff.DD),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD while a run is
// live. Structural parameters (dimensions, density, disciplines) are fixed
// at construction and deliberately absent.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "mutation_rate", Label: "Mutation rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "payoff_cc", Label: "Reward", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "payoff_cd", Label: "Sucker", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "payoff_dc", Label: "Temptation", Type: core.ParamTypeFloat, Step: 0.5},
		{Key: "payoff_dd", Label: "Punishment", Type: core.ParamTypeFloat, Step: 0.5},
	}
}

// SetFloatParameter updates an adjustable parameter, clamping bounded values
// into range. It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "mutation_rate":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		w.cfg.MutationRate = value
	case "payoff_cc":
		w.cfg.Payoff.CC = value
	case "payoff_cd":
		w.cfg.Payoff.CD = value
	case "payoff_dc":
		w.cfg.Payoff.DC = value
	case "payoff_dd":
		w.cfg.Payoff.DD = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
