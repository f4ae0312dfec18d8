// Package kernel is the per-cell transition function.
//
// Every function here is pure over its inputs: it reads the frozen current
// generation and, for Step, writes exactly one index of the next generation.
// That makes any partition of the grid across goroutines produce the same
// result as a row-major loop.
package kernel

import (
	"fmt"

	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/rule"
)

// Params are the read-only inputs shared by every invocation in a step
type Params struct {
	Width    int
	Height   int
	Lifetime uint32 // Age cap, 0 disables age tracking
	Rule     rule.Table
}

// Moore neighborhood offsets
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors counts live cells in the Moore neighborhood of (x, y)
// Positions outside the grid are excluded, edges do not wrap
func Neighbors(cells []grid.Cell, width, height, x, y int) int {
	mustContain(width, height, x, y)

	n := 0
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		if cells[ny*width+nx] != grid.Dead {
			n++
		}
	}
	return n
}

// Evaluate computes the next state and age of (x, y) from the current generation
func Evaluate(p Params, cells []grid.Cell, ages []uint32, x, y int) (grid.Cell, uint32) {
	n := Neighbors(cells, p.Width, p.Height, x, y)
	idx := y*p.Width + x

	if cells[idx] != grid.Dead {
		if !p.Rule.Survives(n) {
			return grid.Dead, 0
		}
		return grid.Alive, nextAge(ages[idx], p.Lifetime)
	}

	if p.Rule.IsBorn(n) {
		return grid.Alive, nextAge(0, p.Lifetime)
	}
	return grid.Dead, 0
}

// Step evaluates (x, y) from src and writes only that index of dst
func Step(p Params, src []grid.Cell, srcAges []uint32, dst []grid.Cell, dstAges []uint32, x, y int) {
	state, age := Evaluate(p, src, srcAges, x, y)
	idx := y*p.Width + x
	dst[idx] = state
	dstAges[idx] = age
}

// nextAge increments toward the cap and saturates there
func nextAge(age, lifetime uint32) uint32 {
	if lifetime == 0 {
		return 0
	}
	if age >= lifetime {
		return lifetime
	}
	return age + 1
}

// mustContain enforces the dispatch precondition; a miss is a programming error
func mustContain(width, height, x, y int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		panic(fmt.Sprintf("kernel: cell (%d,%d) outside %dx%d grid", x, y, width, height))
	}
}
