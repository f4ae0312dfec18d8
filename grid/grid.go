// Package grid owns the double-buffered cell storage of a simulation.
//
// A Grid is an arena of two cell buffers and two age buffers. The front pair holds
// the last completed generation and is read-only while a step runs; the back pair
// is the write target. Swap promotes the back pair by flipping an index, so no
// cell data is copied between generations.
package grid

import (
	"errors"
	"fmt"
)

// Cell is a per-cell state, 0 is dead and any other value is alive
type Cell = uint32

// Cell states written by the kernel
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// ErrInvalidGridSize is returned for non-positive dimensions or mismatched initial data
var ErrInvalidGridSize = errors.New("invalid grid size")

// Grid stores two generations of cells and ages in row-major order
// Not safe for concurrent mutation; the engine serializes Swap against readers
type Grid struct {
	width  int
	height int

	cells [2][]Cell
	ages  [2][]uint32
	front int

	generation uint64
}

// New allocates both buffers and loads initial into the front pair
// Live cells start at age 1 when lifetime is nonzero, otherwise ages stay 0
func New(width, height int, lifetime uint32, initial []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, width, height)
	}
	size := width * height
	if size/width != height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidGridSize, width, height)
	}
	if len(initial) != size {
		return nil, fmt.Errorf("%w: %d initial cells for %dx%d grid", ErrInvalidGridSize, len(initial), width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
	}
	for i := range g.cells {
		g.cells[i] = make([]Cell, size)
		g.ages[i] = make([]uint32, size)
	}

	var startAge uint32
	if lifetime > 0 {
		startAge = 1
	}
	cells, ages := g.cells[0], g.ages[0]
	for i, c := range initial {
		if c != Dead {
			cells[i] = Alive
			ages[i] = startAge
		}
	}

	return g, nil
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells per buffer
func (g *Grid) Len() int {
	return g.width * g.height
}

// Generation returns the number of completed swaps
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Front returns the current generation buffers; callers must not write to them
func (g *Grid) Front() (cells []Cell, ages []uint32) {
	return g.cells[g.front], g.ages[g.front]
}

// Back returns the write target for the next generation
func (g *Grid) Back() (cells []Cell, ages []uint32) {
	back := g.front ^ 1
	return g.cells[back], g.ages[back]
}

// Swap promotes the back buffers to front and increments the generation
// The old front becomes the next write target
func (g *Grid) Swap() {
	g.front ^= 1
	g.generation++
}

// Snapshot deep-copies the front buffers
func (g *Grid) Snapshot() Snapshot {
	cells, ages := g.Front()
	s := Snapshot{
		Width:      g.width,
		Height:     g.height,
		Generation: g.generation,
		Cells:      make([]Cell, len(cells)),
		Ages:       make([]uint32, len(ages)),
	}
	copy(s.Cells, cells)
	copy(s.Ages, ages)
	return s
}
