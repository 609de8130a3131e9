//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	if sink, ok := sim.(interface{ SetLogger(core.Logger) }); ok {
		sink.SetLogger(log.Default())
	}
	if cfg.Pattern != "" {
		stamper, ok := sim.(interface {
			Clear()
			SetPattern(name string, startRow, startCol uint32)
		})
		if !ok {
			log.Fatalf("sim %q does not support patterns", cfg.Sim)
		}
		stamper.Clear()
		stamper.SetPattern(cfg.Pattern, 0, 0)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
