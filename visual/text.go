package visual

import (
	"strings"

	"github.com/lixenwraith/vi-life/grid"
)

// Glyphs for the plain text dump, two columns per cell to keep cells square
const (
	TextAlive = "██"
	TextDead  = "__"
)

// Text dumps a snapshot as rows of TextAlive/TextDead, newline terminated
func Text(s grid.Snapshot) string {
	var b strings.Builder
	b.Grow(s.Height * (s.Width*len(TextAlive) + 1))
	for y := 0; y < s.Height; y++ {
		row := s.Cells[y*s.Width : (y+1)*s.Width]
		for _, c := range row {
			if c != grid.Dead {
				b.WriteString(TextAlive)
			} else {
				b.WriteString(TextDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
