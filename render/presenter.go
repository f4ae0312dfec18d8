// Package render draws simulation frames onto a tcell screen.
//
// Each terminal row carries two grid rows through the upper-half-block glyph:
// the foreground paints the top cell, the background the bottom one. The last
// row is reserved for the status bar.
package render

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-life/parameter"
	pv "github.com/lixenwraith/vi-life/parameter/visual"
	"github.com/lixenwraith/vi-life/terminal"
)

// HalfBlock is the glyph used for two vertically stacked cells
const HalfBlock = '▀'

// Presenter owns layout and color conversion for one screen
type Presenter struct {
	screen tcell.Screen
	mode   terminal.ColorMode
	off    terminal.RGB

	width  int
	height int
}

// NewPresenter creates a presenter; off colors area outside the image
func NewPresenter(screen tcell.Screen, mode terminal.ColorMode, off terminal.RGB) *Presenter {
	p := &Presenter{
		screen: screen,
		mode:   mode,
		off:    off,
	}
	p.Resize()
	return p
}

// Resize re-reads the screen size, call on tcell.EventResize
func (p *Presenter) Resize() {
	p.width, p.height = p.screen.Size()
}

// Viewport returns how many grid columns and rows fit above the status bar
func (p *Presenter) Viewport() (cols, rows int) {
	rows = parameter.CellsPerRow * (p.height - parameter.BottomMargin)
	if rows < 0 {
		rows = 0
	}
	return p.width, rows
}

// Present draws img and the status bar, then flushes the screen
func (p *Presenter) Present(img *image.RGBA, st Status) {
	p.drawImage(img)
	p.drawStatus(st)
	p.screen.Show()
}

func (p *Presenter) drawImage(img *image.RGBA) {
	b := img.Bounds()
	for row := 0; row < p.height-parameter.BottomMargin; row++ {
		top := b.Min.Y + parameter.CellsPerRow*row
		bottom := top + 1
		for x := 0; x < p.width; x++ {
			px := b.Min.X + x
			fg := p.pixel(img, px, top)
			bg := p.pixel(img, px, bottom)
			style := tcell.StyleDefault.Foreground(p.color(fg)).Background(p.color(bg))
			p.screen.SetContent(x, row, HalfBlock, nil, style)
		}
	}
}

// pixel returns the image color at (x, y) or the off color outside it
func (p *Presenter) pixel(img *image.RGBA, x, y int) terminal.RGB {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return p.off
	}
	c := img.RGBAAt(x, y)
	return terminal.RGB{R: c.R, G: c.G, B: c.B}
}

// color converts to a tcell color honoring the terminal capability
func (p *Presenter) color(c terminal.RGB) tcell.Color {
	if p.mode == terminal.ColorMode256 {
		return tcell.PaletteColor(int(terminal.RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// statusStyle picks the bar colors, orange while paused
func (p *Presenter) statusStyle(paused bool) tcell.Style {
	bg := pv.RgbStatusBg
	if paused {
		bg = pv.RgbPausedBg
	}
	return tcell.StyleDefault.Foreground(p.color(terminal.RGBBlack)).Background(p.color(bg))
}
