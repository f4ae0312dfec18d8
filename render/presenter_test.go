package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-life/terminal"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func testImage() *image.RGBA {
	// Column 0 top red over bottom blue, column 1 all green
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{0, 255, 0, 255})
	return img
}

func TestPresenter_HalfBlocks(t *testing.T) {
	s := newSimScreen(t, 3, 2)
	off := terminal.RGB{1, 2, 3}
	p := NewPresenter(s, terminal.ColorModeTrueColor, off)

	p.Present(testImage(), Status{})

	r, _, style, _ := s.GetContent(0, 0)
	if r != HalfBlock {
		t.Fatalf("Expected half block, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Expected blue background, got %v", bg)
	}

	// Column 2 lies outside the image
	_, _, style, _ = s.GetContent(2, 0)
	fg, _, _ = style.Decompose()
	if fg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Expected off color outside image, got %v", fg)
	}
}

func TestPresenter_Palette256(t *testing.T) {
	s := newSimScreen(t, 2, 2)
	p := NewPresenter(s, terminal.ColorMode256, terminal.RGBBlack)

	p.Present(testImage(), Status{})

	_, _, style, _ := s.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	want := tcell.PaletteColor(int(terminal.RGBTo256(terminal.RGB{255, 0, 0})))
	if fg != want {
		t.Errorf("Expected palette color %v, got %v", want, fg)
	}
}

func TestPresenter_Viewport(t *testing.T) {
	s := newSimScreen(t, 40, 11)
	p := NewPresenter(s, terminal.ColorModeTrueColor, terminal.RGBBlack)
	if cols, rows := p.Viewport(); cols != 40 || rows != 20 {
		t.Errorf("Expected 40x20 viewport, got %dx%d", cols, rows)
	}

	s.SetSize(10, 1)
	p.Resize()
	if _, rows := p.Viewport(); rows != 0 {
		t.Errorf("Expected no grid rows with only a status line, got %d", rows)
	}
}

func TestPresenter_StatusBar(t *testing.T) {
	s := newSimScreen(t, 60, 3)
	p := NewPresenter(s, terminal.ColorModeTrueColor, terminal.RGBBlack)

	p.Present(testImage(), Status{Generation: 42, Population: 7, Rule: "B3/S23", Paused: true})

	got := rowText(s, 2, 60)
	for _, want := range []string{"gen 42", "pop 7", "B3/S23", "PAUSED"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected status bar to contain %q, got %q", want, got)
		}
	}
}

func TestPresenter_StatusBarTruncates(t *testing.T) {
	s := newSimScreen(t, 10, 2)
	p := NewPresenter(s, terminal.ColorModeTrueColor, terminal.RGBBlack)

	p.Present(testImage(), Status{Generation: 123456789, Rule: "B36/S23"})

	got := rowText(s, 1, 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected truncated status ending in ellipsis, got %q", got)
	}
}
