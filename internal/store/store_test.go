package store

import (
	"context"
	"path/filepath"
	"testing"

	"wormlife/pkg/core"
	"wormlife/pkg/engine"
)

func testGeneration(t *testing.T, alive ...core.Coord) *engine.Generation {
	t.Helper()
	g, err := engine.NewGeneration(core.Size{W: 5, H: 5}, alive)
	if err != nil {
		t.Fatalf("NewGeneration: %v", err)
	}
	return g
}

func TestArchiveRun(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewRunRepository(db)

	cfg := engine.DefaultConfig()
	cfg.Size = core.Size{W: 5, H: 5}
	cfg.Alive = []core.Coord{{Row: 2, Col: 2}}
	cfg.Wormholes = [][2]core.Coord{{{Row: 0, Col: 0}, {Row: 4, Col: 4}}}

	sim, err := engine.New(cfg)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	runID, err := repo.Create(ctx, cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Checkpoint(ctx, runID, sim.Current()); err != nil {
		t.Fatalf("Checkpoint: %v", err)
	}
	// A lone cell dies in one step.
	if err := repo.Checkpoint(ctx, runID, sim.Step()); err != nil {
		t.Fatalf("Checkpoint: %v", err)
	}
	if err := repo.Finish(ctx, runID, "stable", 1); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	cps, err := repo.Checkpoints(ctx, runID)
	if err != nil {
		t.Fatalf("Checkpoints: %v", err)
	}
	if len(cps) != 2 {
		t.Fatalf("got %d checkpoints, expected 2", len(cps))
	}
	if cps[0].Population != 1 || cps[1].Population != 0 {
		t.Fatalf("populations = %d, %d", cps[0].Population, cps[1].Population)
	}
	if cps[0].Digest == cps[1].Digest {
		t.Fatal("different boards must not share a digest")
	}
}

func TestDigestIgnoresStepIndex(t *testing.T) {
	a := testGeneration(t, core.Coord{Row: 1, Col: 1})
	b := testGeneration(t, core.Coord{Row: 1, Col: 1})
	if Digest(a) != Digest(b) {
		t.Fatal("equal boards must share a digest")
	}
	c := testGeneration(t, core.Coord{Row: 1, Col: 2})
	if Digest(a) == Digest(c) {
		t.Fatal("different boards must not share a digest")
	}
}
