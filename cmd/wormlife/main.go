package main

import (
	"context"
	"flag"
	"fmt"

	"wormlife/internal/app"
	"wormlife/internal/pattern"
	"wormlife/internal/platform/logger"
	"wormlife/internal/store"
	"wormlife/pkg/engine"
)

func main() {
	log := logger.New("wormlife")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ecfg, err := cfg.Engine()
	if err != nil {
		log.Fatal("%v", err)
	}
	sim, err := engine.New(ecfg)
	if err != nil {
		log.Fatal("%v", err)
	}
	checkpoints, err := cfg.CheckpointSteps()
	if err != nil {
		log.Fatal("%v", err)
	}

	ctx := context.Background()
	var repo *store.RunRepository
	var runID int64
	if cfg.DB != "" {
		db, err := store.Open(cfg.DB)
		if err != nil {
			log.Fatal("open archive: %v", err)
		}
		defer db.Close()
		repo = store.NewRunRepository(db)
		if runID, err = repo.Create(ctx, ecfg); err != nil {
			log.Fatal("archive run: %v", err)
		}
	}

	log.Info("%dx%d %s grid, %d wormholes, %d workers, max %d steps",
		ecfg.Size.W, ecfg.Size.H, ecfg.Boundary, len(ecfg.Wormholes), ecfg.Workers, cfg.Steps)

	report := func(g *engine.Generation) {
		fmt.Printf("step %d, population %d\n%s", g.Step(), g.Population(), pattern.Render(g))
		if repo != nil {
			if err := repo.Checkpoint(ctx, runID, g); err != nil {
				log.Warn("archive checkpoint: %v", err)
			}
		}
	}

	for _, cp := range checkpoints {
		for sim.Steps() < cp && !sim.Halted() {
			sim.Step()
		}
		report(sim.Current())
		if sim.Halted() {
			break
		}
	}
	if !sim.Halted() {
		sim.Run(cfg.Steps - sim.Steps())
	}

	outcome := "step limit"
	if sim.IsStable() {
		outcome = "stable"
	} else if p := sim.Period(); p > 0 {
		outcome = fmt.Sprintf("oscillating (period %d)", p)
	}
	log.Info("finished after %d steps: %s, population %d", sim.Steps(), outcome, sim.Current().Population())

	if repo != nil {
		if err := repo.Finish(ctx, runID, outcome, sim.Steps()); err != nil {
			log.Warn("archive outcome: %v", err)
		}
	}
}
