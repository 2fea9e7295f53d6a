package dilemma

import (
	"fmt"
	"image/color"
)

const (
	displayEmpty      = 0
	displayCooperator = 1
	displayDefector   = 2
)

var dilemmaPalette = []color.RGBA{
	{R: 18, G: 18, B: 24, A: 255},   // empty cell
	{R: 64, G: 120, B: 216, A: 255}, // cooperator
	{R: 206, G: 66, B: 56, A: 255},  // defector
}

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return dilemmaPalette
}

// StatsLines formats the latest round metrics for the HUD.
func (w *World) StatsLines() []string {
	m := w.metrics
	return []string{
		fmt.Sprintf("round %d", m.Round),
		fmt.Sprintf("agents %d (C %d / D %d)", m.TotalAgents, m.Cooperators, m.Defectors),
		fmt.Sprintf("cooperation %.3f", m.CooperationRate),
		fmt.Sprintf("avg score %.2f", m.AverageScore),
		fmt.Sprintf("clustering %.3f", m.ClusteringCooperators),
	}
}

func (w *World) rebuildDisplay() {
	for i := range w.display {
		switch {
		case !w.occupied[i]:
			w.display[i] = displayEmpty
		case w.strategy[i] == Cooperate:
			w.display[i] = displayCooperator
		default:
			w.display[i] = displayDefector
		}
	}
}
