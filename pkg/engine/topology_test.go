package engine

import (
	"errors"
	"testing"

	"wormlife/pkg/core"
)

func at(r, c int) core.Coord { return core.Coord{Row: r, Col: c} }

func mustTopology(t *testing.T, w, h int, b Boundary) *Topology {
	t.Helper()
	topo, err := NewTopology(core.Size{W: w, H: h}, b)
	if err != nil {
		t.Fatalf("NewTopology: %v", err)
	}
	return topo
}

func TestNewTopologyRejectsBadDimensions(t *testing.T) {
	for _, size := range []core.Size{{W: 0, H: 5}, {W: 5, H: 0}, {W: -1, H: -1}} {
		if _, err := NewTopology(size, Bounded); err == nil {
			t.Fatalf("expected error for size %+v", size)
		}
	}
}

func TestBoundedLocalNeighbors(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)

	cases := []struct {
		cell core.Coord
		want int
	}{
		{at(2, 2), 8},
		{at(0, 0), 3},
		{at(4, 4), 3},
		{at(0, 2), 5},
		{at(2, 0), 5},
	}
	for _, tc := range cases {
		got, err := topo.LocalNeighbors(tc.cell)
		if err != nil {
			t.Fatalf("LocalNeighbors(%v): %v", tc.cell, err)
		}
		if len(got) != tc.want {
			t.Fatalf("cell %v has %d local neighbors, expected %d", tc.cell, len(got), tc.want)
		}
		for _, n := range got {
			if !topo.InBounds(n) {
				t.Fatalf("cell %v yielded out-of-bounds neighbor %v", tc.cell, n)
			}
		}
	}
}

func TestToroidalLocalNeighborsWrap(t *testing.T) {
	topo := mustTopology(t, 5, 5, Toroidal)

	got, err := topo.LocalNeighbors(at(0, 0))
	if err != nil {
		t.Fatalf("LocalNeighbors: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("toroidal corner has %d neighbors, expected 8", len(got))
	}

	wrapped := map[core.Coord]bool{}
	for _, n := range got {
		wrapped[n] = true
	}
	for _, want := range []core.Coord{at(4, 4), at(4, 0), at(4, 1), at(0, 4), at(1, 4)} {
		if !wrapped[want] {
			t.Fatalf("toroidal corner missing wrapped neighbor %v", want)
		}
	}
}

func TestToroidalDegenerateGridKeepsSetSemantics(t *testing.T) {
	topo := mustTopology(t, 2, 2, Toroidal)

	got, err := topo.LocalNeighbors(at(0, 0))
	if err != nil {
		t.Fatalf("LocalNeighbors: %v", err)
	}
	// Only 3 other cells exist; wrapping must not invent duplicates or make
	// a cell its own neighbor.
	if len(got) != 3 {
		t.Fatalf("2x2 torus cell has %d neighbors, expected 3", len(got))
	}
	for _, n := range got {
		if n == at(0, 0) {
			t.Fatal("cell listed as its own neighbor")
		}
	}
}

func TestLocalNeighborsOutOfBounds(t *testing.T) {
	topo := mustTopology(t, 5, 5, Bounded)

	for _, bad := range []core.Coord{at(-1, 0), at(0, -1), at(5, 0), at(0, 5)} {
		if _, err := topo.LocalNeighbors(bad); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("LocalNeighbors(%v): expected ErrOutOfBounds, got %v", bad, err)
		}
	}
}

func TestParseBoundary(t *testing.T) {
	if b, err := ParseBoundary("toroidal"); err != nil || b != Toroidal {
		t.Fatalf("ParseBoundary(toroidal) = %v, %v", b, err)
	}
	if b, err := ParseBoundary("bounded"); err != nil || b != Bounded {
		t.Fatalf("ParseBoundary(bounded) = %v, %v", b, err)
	}
	if _, err := ParseBoundary("klein-bottle"); err == nil {
		t.Fatal("expected error for unknown boundary mode")
	}
}
