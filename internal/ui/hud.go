//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"spatial-pd/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	StatsLines() []string
}

// HUD renders a stats-and-parameters panel to the right of the simulation
// view. Controls are keyboard driven: Tab cycles the selected parameter,
// -/+ nudge it by its step.
type HUD struct {
	sim   core.Sim
	width int

	snapshot core.ParameterSnapshot
	stats    []string

	controls    []core.ParameterControl
	selected    int
	floatSetter core.FloatParameterSetter

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles parameter input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if provider, ok := h.sim.(statsProvider); ok {
		h.stats = provider.StatsLines()
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.floatSetter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	dir := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		dir = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		dir = 1
	}
	if dir == 0 {
		return
	}
	ctrl := h.controls[h.selected]
	value, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	value += dir * ctrl.Step
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	h.floatSetter.SetFloatParameter(ctrl.Key, value)
}

func (h *HUD) currentValue(key string) (float64, bool) {
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.Scale(0.07, 0.07, 0.09, 1)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	x := offsetX + 10
	y := 18

	text.Draw(screen, h.sim.Name(), face, x, y, color.White)
	y += 20

	for _, line := range h.stats {
		text.Draw(screen, line, face, x, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += 14
	}
	y += 8

	for _, group := range h.snapshot.Groups {
		text.Draw(screen, group.Name, face, x, y, color.RGBA{R: 150, G: 180, B: 255, A: 255})
		y += 15
		for _, p := range group.Params {
			line := fmt.Sprintf("%s: %s", p.Label, p.Value)
			text.Draw(screen, line, face, x+6, y, color.RGBA{R: 190, G: 190, B: 190, A: 255})
			y += 13
		}
		y += 6
	}

	if len(h.controls) > 0 {
		y += 4
		text.Draw(screen, "Tab select, -/+ adjust", face, x, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += 15
		for i, ctrl := range h.controls {
			marker := "  "
			if i == h.selected {
				marker = "> "
			}
			value := "--"
			if v, ok := h.currentValue(ctrl.Key); ok {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
			text.Draw(screen, marker+ctrl.Label+": "+value, face, x, y, color.White)
			y += 13
		}
	}
}
