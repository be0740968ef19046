package engine

import (
	"fmt"

	"wormlife/pkg/core"
)

// Wormholes is the registry of non-local neighbor links: an adjacency map
// over unordered pairs of distinct in-bounds coordinates. It is topology,
// not cell state, and persists unchanged across generations.
type Wormholes struct {
	topo  *Topology
	links map[core.Coord][]core.Coord
	n     int
}

// NewWormholes returns an empty registry bound to the given topology, which
// it uses to validate endpoints.
func NewWormholes(topo *Topology) *Wormholes {
	return &Wormholes{topo: topo, links: make(map[core.Coord][]core.Coord)}
}

// Add registers the unordered pair {a,b}. Both endpoints become linked to
// each other. Self-loops, out-of-bounds endpoints and duplicate pairs (in
// either order) are rejected.
func (w *Wormholes) Add(a, b core.Coord) error {
	if !w.topo.InBounds(a) {
		return fmt.Errorf("wormhole endpoint (%d,%d): %w", a.Row, a.Col, ErrOutOfBounds)
	}
	if !w.topo.InBounds(b) {
		return fmt.Errorf("wormhole endpoint (%d,%d): %w", b.Row, b.Col, ErrOutOfBounds)
	}
	if a == b {
		return fmt.Errorf("self-loop at (%d,%d): %w", a.Row, a.Col, ErrInvalidWormhole)
	}
	if containsCoord(w.links[a], b) {
		return fmt.Errorf("duplicate pair (%d,%d)-(%d,%d): %w", a.Row, a.Col, b.Row, b.Col, ErrInvalidWormhole)
	}
	w.links[a] = append(w.links[a], b)
	w.links[b] = append(w.links[b], a)
	w.n++
	return nil
}

// Remove deletes the unordered pair {a,b} in both directions.
func (w *Wormholes) Remove(a, b core.Coord) error {
	if !containsCoord(w.links[a], b) {
		return fmt.Errorf("pair (%d,%d)-(%d,%d): %w", a.Row, a.Col, b.Row, b.Col, ErrWormholeNotFound)
	}
	w.links[a] = deleteCoord(w.links[a], b)
	w.links[b] = deleteCoord(w.links[b], a)
	if len(w.links[a]) == 0 {
		delete(w.links, a)
	}
	if len(w.links[b]) == 0 {
		delete(w.links, b)
	}
	w.n--
	return nil
}

// Linked returns a copy of the coordinates wormhole-linked to c, empty if
// none. Multiple wormholes may share an endpoint.
func (w *Wormholes) Linked(c core.Coord) []core.Coord {
	return append([]core.Coord(nil), w.links[c]...)
}

// Len reports the number of registered pairs.
func (w *Wormholes) Len() int { return w.n }

// Pairs lists each registered pair exactly once.
func (w *Wormholes) Pairs() [][2]core.Coord {
	out := make([][2]core.Coord, 0, w.n)
	for a, linked := range w.links {
		for _, b := range linked {
			if less(a, b) {
				out = append(out, [2]core.Coord{a, b})
			}
		}
	}
	return out
}

// Endpoints lists every coordinate that participates in at least one pair.
func (w *Wormholes) Endpoints() []core.Coord {
	out := make([]core.Coord, 0, len(w.links))
	for c := range w.links {
		out = append(out, c)
	}
	return out
}

func less(a, b core.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func deleteCoord(s []core.Coord, c core.Coord) []core.Coord {
	for i, x := range s {
		if x == c {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
