//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"regiongrow/internal/app"
	_ "regiongrow/internal/sims/regions"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if e, ok := sim.(interface{ Err() error }); ok && e.Err() != nil {
		log.Printf("invalid parameters, using defaults: %v", e.Err())
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("regions - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
