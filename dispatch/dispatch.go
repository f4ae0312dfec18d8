// Package dispatch runs a per-cell function over every coordinate of a grid.
//
// A Dispatcher is the execution substrate for the kernel: it must call fn exactly
// once per (x, y), may do so concurrently and in any order, and returns only after
// every call completed. Sequential and Pool satisfy the same contract, so results
// never depend on which one is used.
package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the substrate cannot complete a dispatch
var ErrUnavailable = errors.New("dispatch unavailable")

// CellFunc is invoked once per grid coordinate
type CellFunc func(x, y int)

// Dispatcher is a parallel-map capability over grid coordinates
type Dispatcher interface {
	// Dispatch calls fn for every (x, y) in [0,width)x[0,height) and blocks until done
	Dispatch(width, height int, fn CellFunc) error
	// Close releases substrate resources; later dispatches fail with ErrUnavailable
	Close() error
}

// Tile is a rectangular batch of cells, half-open on Max
type Tile struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Cells returns the number of cells in the tile
func (t Tile) Cells() int {
	return (t.MaxX - t.MinX) * (t.MaxY - t.MinY)
}

// Tiles partitions a width x height grid into tw x th tiles, clipping the last row and column
func Tiles(width, height, tw, th int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tw <= 0 {
		tw = width
	}
	if th <= 0 {
		th = height
	}

	cols := (width + tw - 1) / tw
	rows := (height + th - 1) / th
	tiles := make([]Tile, 0, cols*rows)
	for y := 0; y < height; y += th {
		for x := 0; x < width; x += tw {
			tiles = append(tiles, Tile{
				MinX: x,
				MinY: y,
				MaxX: min(x+tw, width),
				MaxY: min(y+th, height),
			})
		}
	}
	return tiles
}

// runTile calls fn over one tile in row-major order
func runTile(t Tile, fn CellFunc) {
	for y := t.MinY; y < t.MaxY; y++ {
		for x := t.MinX; x < t.MaxX; x++ {
			fn(x, y)
		}
	}
}

// Sequential runs every cell on the calling goroutine
type Sequential struct{}

// Dispatch implements Dispatcher
func (Sequential) Dispatch(width, height int, fn CellFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: cell function panicked: %v", ErrUnavailable, r)
		}
	}()
	runTile(Tile{MaxX: width, MaxY: height}, fn)
	return nil
}

// Close implements Dispatcher
func (Sequential) Close() error {
	return nil
}
