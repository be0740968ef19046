package engine

import (
	"wormlife/pkg/core"
)

// Resolver combines grid adjacency and wormhole links into the full set of
// coordinates that count toward a cell's live-neighbor total. It is a pure
// view over a Topology and a Wormholes registry and holds no state of its
// own.
type Resolver struct {
	topo  *Topology
	holes *Wormholes
}

// NewResolver returns a Resolver over the given topology and registry. A
// nil registry behaves as an empty one, which reduces the automaton to
// classical Game of Life adjacency.
func NewResolver(topo *Topology, holes *Wormholes) *Resolver {
	return &Resolver{topo: topo, holes: holes}
}

// NeighborsOf returns the union of c's local Moore neighbors and its
// wormhole links. A coordinate appearing in both contributes once.
func (r *Resolver) NeighborsOf(c core.Coord) ([]core.Coord, error) {
	if !r.topo.InBounds(c) {
		return r.topo.LocalNeighbors(c)
	}
	return r.appendNeighbors(make([]core.Coord, 0, 8), c), nil
}

// appendNeighbors appends the full neighbor set of an in-bounds c to buf.
// Used on the stepping hot path with a reused buffer.
func (r *Resolver) appendNeighbors(buf []core.Coord, c core.Coord) []core.Coord {
	buf = r.topo.appendLocal(buf, c)
	if r.holes == nil {
		return buf
	}
	for _, linked := range r.holes.links[c] {
		if !containsCoord(buf, linked) {
			buf = append(buf, linked)
		}
	}
	return buf
}
