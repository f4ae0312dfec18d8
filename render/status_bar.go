package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-life/parameter"
)

// Status is the data shown in the bottom bar
type Status struct {
	Generation uint64
	Population int
	Rule       string
	Rate       float64 // Generations per second
	Paused     bool
	Message    string // Transient, e.g. an engine error
}

// Text formats the bar content without padding
func (s Status) Text() string {
	sep := parameter.StatusSeparator
	text := fmt.Sprintf(" gen %d%spop %d%s%s%s%.1f gen/s", s.Generation, sep, s.Population, sep, s.Rule, sep, s.Rate)
	if s.Paused {
		text += sep + parameter.StatusPaused
	}
	if s.Message != "" {
		text += sep + s.Message
	}
	return text
}

// drawStatus fills the last screen row, truncating by display width
func (p *Presenter) drawStatus(st Status) {
	if p.height <= 0 || p.width <= 0 {
		return
	}
	y := p.height - 1
	style := p.statusStyle(st.Paused)

	text := runewidth.Truncate(st.Text(), p.width, parameter.StatusEllipsis)
	text = runewidth.FillRight(text, p.width)

	x := 0
	for _, r := range text {
		if x >= p.width {
			break
		}
		p.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
