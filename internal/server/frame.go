package server

import (
	"wormlife/pkg/engine"
)

// Frame is the per-step payload pushed to websocket clients. Alive cells
// are [row, col] pairs, enough for any renderer to draw the board.
type Frame struct {
	Step       int      `json:"step"`
	Population int      `json:"population"`
	Alive      [][2]int `json:"alive"`
	Stable     bool     `json:"stable"`
}

// NewFrame summarizes a generation for broadcast.
func NewFrame(g *engine.Generation, stable bool) Frame {
	cells := g.AliveCells()
	alive := make([][2]int, len(cells))
	for i, c := range cells {
		alive[i] = [2]int{c.Row, c.Col}
	}
	return Frame{
		Step:       g.Step(),
		Population: len(cells),
		Alive:      alive,
		Stable:     stable,
	}
}
