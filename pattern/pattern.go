// Package pattern holds seed patterns and their placement on a grid.
package pattern

import (
	"errors"
	"image"
	"slices"

	"github.com/lixenwraith/vi-life/grid"
)

// ErrInvalidPattern is returned for malformed pattern text
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a set of live cells with offsets relative to its origin
type Pattern struct {
	Name   string
	Rule   string // Optional rule from an RLE header
	Cells  []image.Point
	Width  int // Bounding width
	Height int // Bounding height
}

// Bounds returns the bounding rectangle of the live cells
func (p Pattern) Bounds() image.Rectangle {
	if len(p.Cells) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p.Cells[0], Max: p.Cells[0].Add(image.Pt(1, 1))}
	for _, c := range p.Cells[1:] {
		r = r.Union(image.Rectangle{Min: c, Max: c.Add(image.Pt(1, 1))})
	}
	return r
}

// Population returns the number of distinct live cells
func (p Pattern) Population() int {
	return len(p.normalized().Cells)
}

// normalized returns a copy with duplicate cells removed and cells sorted row-major
func (p Pattern) normalized() Pattern {
	cells := slices.Clone(p.Cells)
	slices.SortFunc(cells, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	p.Cells = slices.Compact(cells)
	return p
}

// Stamp sets the pattern's cells alive in a row-major buffer, clipping cells outside it
// Returns the number of cells written
func (p Pattern) Stamp(cells []grid.Cell, width, height int) int {
	n := 0
	area := image.Rect(0, 0, width, height)
	for _, c := range p.Cells {
		if !c.In(area) {
			continue
		}
		cells[c.Y*width+c.X] = grid.Alive
		n++
	}
	return n
}

// Seed returns a fresh blank buffer with the pattern centered on it
func (p Pattern) Seed(width, height int) []grid.Cell {
	cells := grid.Blank(width, height)
	p.Center(width, height).Stamp(cells, width, height)
	return cells
}
