package app

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"wormlife/internal/pattern"
	"wormlife/pkg/core"
	"wormlife/pkg/engine"
)

// Config represents the command-line parameters shared by the wormlife
// binaries.
type Config struct {
	Width    int
	Height   int
	Boundary string

	Pattern      string
	BoardFile    string
	WormholeFile string

	Seed    int64
	Workers int

	Steps       int
	Checkpoints string
	DB          string

	Scale int
	TPS   int
	Addr  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       64,
		Height:      64,
		Boundary:    "bounded",
		Pattern:     "soup",
		Seed:        42,
		Workers:     1,
		Steps:       1000,
		Checkpoints: "1,10,100,1000",
		Scale:       8,
		TPS:         10,
		Addr:        ":8080",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width (ignored with -board)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (ignored with -board)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary mode: bounded or toroidal")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: "+strings.Join(pattern.Names(), ", "))
	fs.StringVar(&c.BoardFile, "board", c.BoardFile, "board file ('#'/'.' lines); overrides -pattern and dimensions")
	fs.StringVar(&c.WormholeFile, "wormholes", c.WormholeFile, "wormhole pair file ('r1,c1 r2,c2' lines)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel step workers")
	fs.IntVar(&c.Steps, "steps", c.Steps, "maximum steps to run")
	fs.StringVar(&c.Checkpoints, "checkpoints", c.Checkpoints, "comma-separated steps to report")
	fs.StringVar(&c.DB, "db", c.DB, "sqlite file to archive the run in (optional)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "steps per second (GUI and serve)")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address (serve)")
}

// Engine translates the flag values into a validated engine configuration,
// loading board and wormhole files when given.
func (c *Config) Engine() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.Workers = c.Workers

	boundary, err := engine.ParseBoundary(c.Boundary)
	if err != nil {
		return engine.Config{}, err
	}
	cfg.Boundary = boundary

	if c.BoardFile != "" {
		f, err := os.Open(c.BoardFile)
		if err != nil {
			return engine.Config{}, err
		}
		size, alive, err := pattern.ParseGrid(f)
		f.Close()
		if err != nil {
			return engine.Config{}, fmt.Errorf("board %s: %w", c.BoardFile, err)
		}
		cfg.Size, cfg.Alive = size, alive
	} else {
		cfg.Size = core.Size{W: c.Width, H: c.Height}
		alive, err := pattern.Seed(c.Pattern, cfg.Size, c.Seed)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.Alive = alive
	}

	if c.WormholeFile != "" {
		f, err := os.Open(c.WormholeFile)
		if err != nil {
			return engine.Config{}, err
		}
		pairs, err := pattern.ParseWormholes(f)
		f.Close()
		if err != nil {
			return engine.Config{}, fmt.Errorf("wormholes %s: %w", c.WormholeFile, err)
		}
		cfg.Wormholes = pairs
	}
	return cfg, nil
}

// CheckpointSteps parses the -checkpoints flag into a sorted, deduplicated
// list clipped to -steps.
func (c *Config) CheckpointSteps() ([]int, error) {
	if strings.TrimSpace(c.Checkpoints) == "" {
		return nil, nil
	}
	seen := map[int]bool{}
	var steps []int
	for _, field := range strings.Split(c.Checkpoints, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad checkpoint %q", field)
		}
		if n > c.Steps || seen[n] {
			continue
		}
		seen[n] = true
		steps = append(steps, n)
	}
	sort.Ints(steps)
	return steps, nil
}
