package engine

import (
	"strings"

	"github.com/lixenwraith/vi-life/dispatch"
	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/rule"
)

// NewTestEngine builds an engine from an ASCII picture for tests
// Rows use 'O' or '#' for live cells and anything else for dead; all rows must share a width
// The engine runs on a Sequential dispatcher unless opts override it
func NewTestEngine(rows []string, lifetime uint32, table rule.Table, opts ...Option) *Engine {
	width, height, cells := ParseRows(rows)
	p := NewParams(width, height, lifetime, table)
	all := append([]Option{WithDispatcher(dispatch.Sequential{})}, opts...)
	e, err := New(p, cells, all...)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseRows converts an ASCII picture into dimensions and row-major cells
func ParseRows(rows []string) (width, height int, cells []uint32) {
	height = len(rows)
	if height > 0 {
		width = len(rows[0])
	}
	cells = make([]uint32, 0, width*height)
	for _, row := range rows {
		for _, r := range row {
			if r == 'O' || r == '#' {
				cells = append(cells, grid.Alive)
			} else {
				cells = append(cells, grid.Dead)
			}
		}
	}
	return width, height, cells
}

// FormatRows renders a snapshot back into the ASCII picture form
func FormatRows(s grid.Snapshot) []string {
	rows := make([]string, s.Height)
	var b strings.Builder
	for y := 0; y < s.Height; y++ {
		b.Reset()
		for x := 0; x < s.Width; x++ {
			if s.Alive(x, y) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}
