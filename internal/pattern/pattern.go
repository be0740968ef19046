// Package pattern is the thin glue between text input and the engine's
// coordinate sets: named seed patterns, board and wormhole-list parsing,
// and board rendering for terminal output. No format here is part of the
// engine itself.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"wormlife/pkg/core"
	"wormlife/pkg/engine"
)

// Factory produces the initial alive set for a grid of the given size. The
// seed only matters for randomized patterns.
type Factory func(size core.Size, seed int64) []core.Coord

var patterns = map[string]Factory{}

// Register adds a named seed pattern.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	out := make([]string, 0, len(patterns))
	for name := range patterns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Seed builds the initial alive set for a named pattern.
func Seed(name string, size core.Size, seed int64) ([]core.Coord, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f(size, seed), nil
}

func init() {
	Register("block", func(size core.Size, _ int64) []core.Coord {
		r, c := size.H/2-1, size.W/2-1
		return []core.Coord{{Row: r, Col: c}, {Row: r, Col: c + 1}, {Row: r + 1, Col: c}, {Row: r + 1, Col: c + 1}}
	})
	Register("blinker", func(size core.Size, _ int64) []core.Coord {
		r, c := size.H/2, size.W/2-1
		return []core.Coord{{Row: r, Col: c}, {Row: r, Col: c + 1}, {Row: r, Col: c + 2}}
	})
	Register("glider", func(size core.Size, _ int64) []core.Coord {
		r, c := size.H/2-1, size.W/2-1
		return []core.Coord{
			{Row: r, Col: c + 1},
			{Row: r + 1, Col: c + 2},
			{Row: r + 2, Col: c}, {Row: r + 2, Col: c + 1}, {Row: r + 2, Col: c + 2},
		}
	})
	Register("soup", func(size core.Size, seed int64) []core.Coord {
		return core.NewRNG(seed).Soup(size, 0.5)
	})
}

// Render draws a generation as '#'/'.' rows, one line per grid row.
func Render(g *engine.Generation) string {
	size := g.Size()
	cells := g.Cells()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
