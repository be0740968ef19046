package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"wormlife/pkg/engine"
)

// Checkpoint is one archived generation summary.
type Checkpoint struct {
	Step       int
	Population int
	Digest     string
}

// RunRepository persists runs and their checkpoints.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository wraps an open store database.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run row and returns its id.
func (r *RunRepository) Create(ctx context.Context, cfg engine.Config) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (started, width, height, boundary, wormholes, workers) VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now(), cfg.Size.W, cfg.Size.H, cfg.Boundary.String(), len(cfg.Wormholes), cfg.Workers,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// Checkpoint archives a generation summary for the run.
func (r *RunRepository) Checkpoint(ctx context.Context, runID int64, g *engine.Generation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checkpoints (run_id, step, population, digest) VALUES (?, ?, ?, ?)`,
		runID, g.Step(), g.Population(), Digest(g),
	)
	if err != nil {
		return fmt.Errorf("insert checkpoint for step %d: %w", g.Step(), err)
	}
	return nil
}

// Finish records the run outcome and total steps taken.
func (r *RunRepository) Finish(ctx context.Context, runID int64, outcome string, steps int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE runs SET outcome = ?, steps = ?, finished = ? WHERE run_id = ?`,
		outcome, steps, time.Now(), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", runID, err)
	}
	return nil
}

// Checkpoints returns the archived summaries for a run in step order.
func (r *RunRepository) Checkpoints(ctx context.Context, runID int64) ([]Checkpoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT step, population, digest FROM checkpoints WHERE run_id = ? ORDER BY step ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Checkpoint
	for rows.Next() {
		var cp Checkpoint
		if err := rows.Scan(&cp.Step, &cp.Population, &cp.Digest); err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

// Digest returns a hex fingerprint of a generation's cell states. Two
// generations with equal boards share a digest regardless of step index.
func Digest(g *engine.Generation) string {
	h := sha256.New()
	size := g.Size()
	fmt.Fprintf(h, "%dx%d:", size.W, size.H)
	h.Write(g.Cells())
	return hex.EncodeToString(h.Sum(nil))
}
