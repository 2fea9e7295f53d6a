//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"spatial-pd/internal/app"
	"spatial-pd/internal/presets"
	"spatial-pd/internal/sims/dilemma"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	preset, err := presets.ByName(cfg.Preset)
	if err != nil {
		names, _ := presets.Names()
		log.Fatalf("%v (available: %s)", err, strings.Join(names, ", "))
	}

	world, err := dilemma.NewWithConfig(preset.Config())
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.TPS, cfg.Seed, cfg.Panel)
	size := world.Size()

	ebiten.SetWindowTitle("spatial-pd: " + preset.Name)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.Panel, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
