// Package store archives simulation runs in a local SQLite database so
// checkpoint boards can be compared across invocations.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Open initializes the SQLite database at path and creates the schema.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id INTEGER PRIMARY KEY AUTOINCREMENT,
			started DATETIME NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			boundary TEXT NOT NULL,
			wormholes INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			outcome TEXT,
			steps INTEGER,
			finished DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS checkpoints (
			run_id INTEGER NOT NULL,
			step INTEGER NOT NULL,
			population INTEGER NOT NULL,
			digest TEXT NOT NULL,
			PRIMARY KEY (run_id, step),
			FOREIGN KEY (run_id) REFERENCES runs(run_id)
		);`,
	}
	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}
