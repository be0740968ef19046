package engine

import (
	"fmt"

	"wormlife/pkg/core"
)

// Boundary selects how the grid treats coordinates beyond its edges.
type Boundary uint8

const (
	// Bounded grids have hard edges; cells outside the grid do not exist.
	Bounded Boundary = iota
	// Toroidal grids wrap each axis modulo its dimension.
	Toroidal
)

// String returns the flag-friendly name of the boundary mode.
func (b Boundary) String() string {
	if b == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParseBoundary converts a flag value into a Boundary mode.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "bounded":
		return Bounded, nil
	case "toroidal", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown boundary mode %q", s)
}

// Topology answers local adjacency questions for a fixed-size grid under a
// boundary mode. It is static for the lifetime of a simulation run.
type Topology struct {
	size     core.Size
	boundary Boundary
}

// NewTopology validates the dimensions and returns a Topology.
func NewTopology(size core.Size, boundary Boundary) (*Topology, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", size.W, size.H)
	}
	return &Topology{size: size, boundary: boundary}, nil
}

// Size reports the grid dimensions.
func (t *Topology) Size() core.Size { return t.size }

// Boundary reports the configured boundary mode.
func (t *Topology) Boundary() Boundary { return t.boundary }

// InBounds reports whether the coordinate lies inside the grid.
func (t *Topology) InBounds(c core.Coord) bool {
	return c.Row >= 0 && c.Row < t.size.H && c.Col >= 0 && c.Col < t.size.W
}

// LocalNeighbors returns the Moore-neighborhood coordinates of c. Bounded
// grids yield fewer than 8 at edges; toroidal grids wrap. Out-of-bounds
// input is a contract violation reported as ErrOutOfBounds, never clamped.
func (t *Topology) LocalNeighbors(c core.Coord) ([]core.Coord, error) {
	if !t.InBounds(c) {
		return nil, fmt.Errorf("local neighbors of (%d,%d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	return t.appendLocal(make([]core.Coord, 0, 8), c), nil
}

// appendLocal appends the local neighbors of an in-bounds c to buf. Wrapped
// coordinates are deduplicated so degenerate grids (a dimension below 3)
// keep set semantics, and a cell never neighbors itself.
func (t *Topology) appendLocal(buf []core.Coord, c core.Coord) []core.Coord {
	w, h := t.size.W, t.size.H
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := core.Coord{Row: c.Row + dr, Col: c.Col + dc}
			if t.boundary == Toroidal {
				n.Row = (n.Row + h) % h
				n.Col = (n.Col + w) % w
			} else if !t.InBounds(n) {
				continue
			}
			if n == c || containsCoord(buf, n) {
				continue
			}
			buf = append(buf, n)
		}
	}
	return buf
}

func containsCoord(s []core.Coord, c core.Coord) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}
