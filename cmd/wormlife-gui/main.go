//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wormlife/internal/app"
	"wormlife/pkg/engine"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ecfg, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := engine.New(ecfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("wormlife — %dx%d %s, %d wormholes",
		size.W, size.H, ecfg.Boundary, sim.Wormholes().Len()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
