// Package visual turns grid snapshots into colors, images and text.
//
// Mapping is a pure function of (alive, age) and a palette. It never feeds back
// into the simulation.
package visual

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-life/parameter"
	pv "github.com/lixenwraith/vi-life/parameter/visual"
	"github.com/lixenwraith/vi-life/terminal"
)

// Mapper colors cells by state and age
type Mapper struct {
	Off      terminal.RGB
	Young    terminal.RGB
	Old      terminal.RGB
	Lifetime uint32

	// Precomputed ramp, index = saturated age
	ramp []terminal.RGB
}

// NewMapper builds a mapper for palette p; lifetime 0 renders every live cell Young
func NewMapper(p pv.Palette, lifetime uint32) *Mapper {
	m := &Mapper{
		Off:      p.Off,
		Young:    p.Young,
		Old:      p.Old,
		Lifetime: lifetime,
	}
	m.buildRamp()
	return m
}

// buildRamp caches Lab blends for ages 0..Lifetime; larger lifetimes blend per call
func (m *Mapper) buildRamp() {
	if m.Lifetime > parameter.MaxLifetime {
		m.ramp = nil
		return
	}
	m.ramp = make([]terminal.RGB, m.Lifetime+1)
	for age := uint32(0); age <= m.Lifetime; age++ {
		m.ramp[age] = m.blend(age)
	}
}

func (m *Mapper) blend(age uint32) terminal.RGB {
	if m.Lifetime == 0 {
		return m.Young
	}
	switch {
	case age == 0:
		return m.Young
	case age >= m.Lifetime:
		return m.Old
	}
	t := float64(age) / float64(m.Lifetime)
	c := toColorful(m.Young).BlendLab(toColorful(m.Old), t).Clamped()
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

// Color returns the display color of one cell
func (m *Mapper) Color(alive bool, age uint32) terminal.RGB {
	if !alive {
		return m.Off
	}
	if m.Lifetime == 0 {
		return m.Young
	}
	if age > m.Lifetime {
		age = m.Lifetime
	}
	if int(age) < len(m.ramp) {
		return m.ramp[age]
	}
	// Zero-value Mapper built without NewMapper
	return m.blend(age)
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
