package engine

import (
	"bytes"
	"fmt"

	"wormlife/pkg/core"
)

// Generation is a snapshot of every cell state at one time step, stored as
// a dense row-major byte grid. A Generation is never mutated after
// construction; stepping always produces a new one.
type Generation struct {
	step  int
	size  core.Size
	cells []uint8
}

// NewGeneration builds the step-zero snapshot from a set of alive
// coordinates. Any out-of-bounds coordinate aborts construction.
func NewGeneration(size core.Size, alive []core.Coord) (*Generation, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", size.W, size.H)
	}
	g := &Generation{size: size, cells: make([]uint8, size.Area())}
	for _, c := range alive {
		if c.Row < 0 || c.Row >= size.H || c.Col < 0 || c.Col >= size.W {
			return nil, fmt.Errorf("alive cell (%d,%d): %w", c.Row, c.Col, ErrOutOfBounds)
		}
		g.cells[g.index(c)] = 1
	}
	return g, nil
}

func (g *Generation) index(c core.Coord) int { return c.Row*g.size.W + c.Col }

// Step returns the time-step index of this snapshot.
func (g *Generation) Step() int { return g.step }

// Size reports the grid dimensions.
func (g *Generation) Size() core.Size { return g.size }

// Alive reports whether the cell at c is alive. Out-of-bounds coordinates
// are dead by definition.
func (g *Generation) Alive(c core.Coord) bool {
	if c.Row < 0 || c.Row >= g.size.H || c.Col < 0 || c.Col >= g.size.W {
		return false
	}
	return g.cells[g.index(c)] == 1
}

// Population returns the number of alive cells.
func (g *Generation) Population() int {
	n := 0
	for _, v := range g.cells {
		if v == 1 {
			n++
		}
	}
	return n
}

// AliveCells enumerates the alive coordinates in row-major order.
func (g *Generation) AliveCells() []core.Coord {
	var out []core.Coord
	for i, v := range g.cells {
		if v == 1 {
			out = append(out, core.Coord{Row: i / g.size.W, Col: i % g.size.W})
		}
	}
	return out
}

// Cells exposes the backing byte grid for rendering. Callers must treat it
// as read-only.
func (g *Generation) Cells() []uint8 { return g.cells }

// Equal reports whether two snapshots hold identical cell states. The step
// index is deliberately ignored so history comparisons detect cycles.
func (g *Generation) Equal(o *Generation) bool {
	if o == nil || g.size != o.size {
		return false
	}
	return bytes.Equal(g.cells, o.cells)
}
