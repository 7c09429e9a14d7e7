//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/random"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/briansbrain"
	_ "lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	sim, err := core.New(cfg.Sim, cfg.SimConfig(seed))
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("lifegrid: " + sim.Name())
	ebiten.SetTPS(max(cfg.TPS, ebiten.DefaultTPS))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
