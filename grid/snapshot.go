package grid

import "slices"

// Snapshot is an immutable copy of one completed generation
type Snapshot struct {
	Width      int
	Height     int
	Generation uint64
	Cells      []Cell
	Ages       []uint32
}

// Index returns the row-major offset of (x, y); panics outside the grid
func (s Snapshot) Index(x, y int) int {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		panic("grid: snapshot coordinate out of range")
	}
	return y*s.Width + x
}

// Alive reports whether the cell at (x, y) is alive
func (s Snapshot) Alive(x, y int) bool {
	return s.Cells[s.Index(x, y)] != Dead
}

// Age returns the age of the cell at (x, y)
func (s Snapshot) Age(x, y int) uint32 {
	return s.Ages[s.Index(x, y)]
}

// Population counts live cells
func (s Snapshot) Population() int {
	n := 0
	for _, c := range s.Cells {
		if c != Dead {
			n++
		}
	}
	return n
}

// Equal compares dimensions, cells and ages; the generation number is ignored
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Width == other.Width &&
		s.Height == other.Height &&
		slices.Equal(s.Cells, other.Cells) &&
		slices.Equal(s.Ages, other.Ages)
}

// SameCells compares only dimensions and alive/dead states
func (s Snapshot) SameCells(other Snapshot) bool {
	return s.Width == other.Width &&
		s.Height == other.Height &&
		slices.Equal(s.Cells, other.Cells)
}
