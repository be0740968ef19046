package engine

import (
	"fmt"

	"wormlife/pkg/core"
)

// Config describes one simulation run: grid shape, boundary mode, the
// initial alive set and the wormhole pairs. Topology and wormholes are
// fixed for the lifetime of the run.
type Config struct {
	Size      core.Size
	Boundary  Boundary
	Alive     []core.Coord
	Wormholes [][2]core.Coord

	// Workers splits each step across row bands; 0 or 1 is serial.
	Workers int
	// HistoryDepth bounds how many prior generations are retained for
	// stability and oscillation checks. Minimum 2.
	HistoryDepth int
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		Size:         core.Size{W: 64, H: 64},
		Boundary:     Bounded,
		Workers:      1,
		HistoryDepth: 16,
	}
}

// Simulation owns the current generation and a bounded history, drives the
// step engine and detects termination. Topology and the wormhole registry
// are read-only once construction succeeds.
type Simulation struct {
	cfg     Config
	topo    *Topology
	holes   *Wormholes
	stepper *Stepper

	cur     *Generation
	history []*Generation
	halted  bool
}

// New validates the whole configuration and returns a ready simulation. Any
// invalid dimension, alive cell or wormhole pair aborts construction; a
// simulation never starts in a partially-invalid state.
func New(cfg Config) (*Simulation, error) {
	if cfg.HistoryDepth < 2 {
		cfg.HistoryDepth = 16
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	topo, err := NewTopology(cfg.Size, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	holes := NewWormholes(topo)
	for i, pair := range cfg.Wormholes {
		if err := holes.Add(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("wormhole %d: %w", i, err)
		}
	}
	gen, err := NewGeneration(cfg.Size, cfg.Alive)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:     cfg,
		topo:    topo,
		holes:   holes,
		stepper: NewStepper(NewResolver(topo, holes), cfg.Workers),
		cur:     gen,
	}, nil
}

// Name identifies the automaton.
func (s *Simulation) Name() string { return "wormlife" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.cfg.Size }

// Topology exposes the static grid topology.
func (s *Simulation) Topology() *Topology { return s.topo }

// Wormholes exposes the static wormhole registry.
func (s *Simulation) Wormholes() *Wormholes { return s.holes }

// Current returns the current generation.
func (s *Simulation) Current() *Generation { return s.cur }

// Cells exposes the current generation's byte grid for rendering.
func (s *Simulation) Cells() []uint8 { return s.cur.Cells() }

// Steps reports how many steps have been taken since construction or the
// last Reset.
func (s *Simulation) Steps() int { return s.cur.step }

// Halted reports whether the controller has stopped advancing.
func (s *Simulation) Halted() bool { return s.halted }

// Step advances one generation and returns it. The prior generation moves
// into the history ring. Once halted, Step is a no-op returning the current
// generation unchanged. Reaching a fixed point halts the controller.
func (s *Simulation) Step() *Generation {
	if s.halted {
		return s.cur
	}
	next := s.stepper.Next(s.cur)
	s.pushHistory(s.cur)
	s.cur = next
	if s.IsStable() {
		s.halted = true
	}
	return s.cur
}

// Run steps until maxSteps have been taken or the simulation reaches a
// fixed point, whichever comes first, and reports the final generation and
// the number of steps actually taken. Either way the controller is halted
// afterwards.
func (s *Simulation) Run(maxSteps int) (*Generation, int) {
	steps := 0
	for steps < maxSteps && !s.halted {
		s.Step()
		steps++
	}
	s.halted = true
	return s.cur, steps
}

// IsStable reports whether the current generation is identical to its
// immediate predecessor.
func (s *Simulation) IsStable() bool {
	if len(s.history) == 0 {
		return false
	}
	return s.cur.Equal(s.history[len(s.history)-1])
}

// IsOscillating reports whether the current generation equals any of the
// last maxPeriod generations, indicating a repeating cycle. A fixed point
// oscillates with period 1. Periods beyond the retained history cannot be
// detected.
func (s *Simulation) IsOscillating(maxPeriod int) bool {
	if maxPeriod > len(s.history) {
		maxPeriod = len(s.history)
	}
	for i := 0; i < maxPeriod; i++ {
		if s.cur.Equal(s.history[len(s.history)-1-i]) {
			return true
		}
	}
	return false
}

// Period returns the shortest detectable cycle length of the current
// generation, or 0 if none is visible in the retained history.
func (s *Simulation) Period() int {
	for i := 0; i < len(s.history); i++ {
		if s.cur.Equal(s.history[len(s.history)-1-i]) {
			return i + 1
		}
	}
	return 0
}

// Reset rewinds to step zero and clears the history and the halted state.
// Seed zero restores the configured initial pattern; any other seed fills
// the board with a deterministic random soup. Wormholes and topology are
// untouched.
func (s *Simulation) Reset(seed int64) {
	alive := s.cfg.Alive
	if seed != 0 {
		alive = core.NewRNG(seed).Soup(s.cfg.Size, 0.5)
	}
	gen, err := NewGeneration(s.cfg.Size, alive)
	if err != nil {
		// cfg.Alive was validated at construction and soup cells are
		// generated in bounds.
		panic(err)
	}
	s.cur = gen
	s.history = nil
	s.halted = false
}

func (s *Simulation) pushHistory(g *Generation) {
	if len(s.history) == s.cfg.HistoryDepth {
		copy(s.history, s.history[1:])
		s.history[len(s.history)-1] = g
		return
	}
	s.history = append(s.history, g)
}
