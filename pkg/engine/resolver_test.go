package engine

import (
	"errors"
	"testing"

	"wormlife/pkg/core"
)

func TestResolverWormholeSymmetry(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)
	holes := NewWormholes(topo)
	if err := holes.Add(at(0, 0), at(4, 4)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	res := NewResolver(topo, holes)

	a, err := res.NeighborsOf(at(0, 0))
	if err != nil {
		t.Fatalf("NeighborsOf: %v", err)
	}
	if !containsCoord(a, at(4, 4)) {
		t.Fatalf("neighbors of (0,0) = %v, missing wormhole link (4,4)", a)
	}
	b, err := res.NeighborsOf(at(4, 4))
	if err != nil {
		t.Fatalf("NeighborsOf: %v", err)
	}
	if !containsCoord(b, at(0, 0)) {
		t.Fatalf("neighbors of (4,4) = %v, missing wormhole link (0,0)", b)
	}

	// 3 local corner neighbors plus the wormhole link.
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("corner neighbor counts = %d and %d, expected 4", len(a), len(b))
	}
}

func TestResolverDeduplicatesLocalWormhole(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)
	holes := NewWormholes(topo)
	// (2,3) is already a local neighbor of (2,2).
	if err := holes.Add(at(2, 2), at(2, 3)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	res := NewResolver(topo, holes)

	got, err := res.NeighborsOf(at(2, 2))
	if err != nil {
		t.Fatalf("NeighborsOf: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("neighbors of (2,2) = %v, expected the 8 local cells only", got)
	}
	seen := 0
	for _, n := range got {
		if n == at(2, 3) {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("(2,3) appears %d times in neighbor set, expected once", seen)
	}
}

func TestResolverNilRegistryIsLocalOnly(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)
	res := NewResolver(topo, nil)

	got, err := res.NeighborsOf(at(2, 2))
	if err != nil {
		t.Fatalf("NeighborsOf: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("neighbors of (2,2) = %v, expected 8", got)
	}
}

func TestResolverPropagatesOutOfBounds(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)
	res := NewResolver(topo, NewWormholes(topo))

	if _, err := res.NeighborsOf(core.Coord{Row: 9, Col: 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}
