package engine

import (
	"sync"

	"wormlife/pkg/core"
)

// Stepper computes generation t+1 from generation t under the B3/S23 rule
// with the resolver's composed neighbor set. It reads only the prior
// generation and the static topology, so cells are independent and may be
// evaluated in any order or in parallel.
type Stepper struct {
	res     *Resolver
	workers int
}

// NewStepper returns a Stepper that splits each step across the given
// number of workers. Values below 2 select the serial path. Parallel and
// serial stepping produce byte-identical generations.
func NewStepper(res *Resolver, workers int) *Stepper {
	if workers < 1 {
		workers = 1
	}
	return &Stepper{res: res, workers: workers}
}

// Next produces a wholly new generation; the input is never mutated. The
// new snapshot is complete before Next returns, so the caller's swap is the
// only synchronization point per step.
func (s *Stepper) Next(g *Generation) *Generation {
	next := &Generation{step: g.step + 1, size: g.size, cells: make([]uint8, len(g.cells))}
	rows := g.size.H
	if s.workers == 1 || rows < s.workers {
		s.stepRows(g, next, 0, rows)
		return next
	}

	band := rows / s.workers
	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		start := i * band
		end := start + band
		if i == s.workers-1 {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.stepRows(g, next, start, end)
		}(start, end)
	}
	wg.Wait()
	return next
}

// stepRows writes rows [start,end) of next. Each worker owns a disjoint row
// band of the output buffer and only reads cur.
func (s *Stepper) stepRows(cur, next *Generation, start, end int) {
	w := cur.size.W
	buf := make([]core.Coord, 0, 8)
	for row := start; row < end; row++ {
		for col := 0; col < w; col++ {
			c := core.Coord{Row: row, Col: col}
			buf = s.res.appendNeighbors(buf[:0], c)
			live := 0
			for _, n := range buf {
				if cur.cells[cur.index(n)] == 1 {
					live++
				}
			}
			idx := row*w + col
			alive := cur.cells[idx] == 1
			if (alive && (live == 2 || live == 3)) || (!alive && live == 3) {
				next.cells[idx] = 1
			}
		}
	}
}
