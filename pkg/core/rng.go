package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Soup returns random alive coordinates where each cell is alive with the
// given probability.
func (r *RNG) Soup(size Size, density float64) []Coord {
	var alive []Coord
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if r.r.Float64() < density {
				alive = append(alive, Coord{Row: row, Col: col})
			}
		}
	}
	return alive
}
