package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the total number of cells in a grid of this size.
func (s Size) Area() int { return s.W * s.H }

// Coord identifies a cell position as (row, column). Row zero is the top
// row, column zero the leftmost column.
type Coord struct {
	Row int
	Col int
}
