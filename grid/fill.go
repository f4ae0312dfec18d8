package grid

import "math/rand"

// Blank returns an all-dead row-major cell slice
func Blank(width, height int) []Cell {
	return make([]Cell, width*height)
}

// Random fills a row-major cell slice where each cell is alive with probability density
// The same seed always yields the same slice
func Random(width, height int, density float64, seed int64) []Cell {
	rng := rand.New(rand.NewSource(seed))
	cells := make([]Cell, width*height)
	for i := range cells {
		if rng.Float64() < density {
			cells[i] = Alive
		}
	}
	return cells
}
