package pattern

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-life/grid"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		p             Pattern
		width, height int
		population    int
	}{
		{Block, 2, 2, 4},
		{Blinker, 3, 1, 3},
		{Glider, 3, 3, 5},
		{RPentomino, 3, 3, 5},
		{GosperGun, 36, 9, 36},
	}

	for _, tt := range tests {
		t.Run(tt.p.Name, func(t *testing.T) {
			if tt.p.Width != tt.width || tt.p.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, tt.p.Width, tt.p.Height)
			}
			if got := tt.p.Population(); got != tt.population {
				t.Errorf("Expected population %d, got %d", tt.population, got)
			}
		})
	}
}

func TestParsePlaintext(t *testing.T) {
	p, err := ParsePlaintext("!Name: Toad\n!\n.OOO\nOOO.\n")
	if err != nil {
		t.Fatalf("ParsePlaintext failed: %v", err)
	}
	if p.Name != "Toad" || p.Width != 4 || p.Height != 2 || len(p.Cells) != 6 {
		t.Errorf("Expected 4x2 Toad with 6 cells, got %q %dx%d %d", p.Name, p.Width, p.Height, len(p.Cells))
	}

	for _, bad := range []string{"", "...", ".x."} {
		if _, err := ParsePlaintext(bad); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("Input %q: expected ErrInvalidPattern, got %v", bad, err)
		}
	}
}

func TestParseRLE(t *testing.T) {
	src := "#N Glider\n#C comment\nx = 3, y = 3, rule = B3/S23\nbob$2bo$3o!\n"
	p, err := ParseRLE(src)
	if err != nil {
		t.Fatalf("ParseRLE failed: %v", err)
	}
	if p.Name != "Glider" || p.Rule != "B3/S23" {
		t.Errorf("Expected name Glider rule B3/S23, got %q %q", p.Name, p.Rule)
	}
	if !Merge(p).sameCells(Merge(Glider)) {
		t.Errorf("Expected RLE glider to match built-in, got %v", p.Cells)
	}
}

func TestParseRLE_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no header", "bo$o!"},
		{"no terminator", "x = 2, y = 1\n2o"},
		{"bad dimension", "x = two, y = 1\no!"},
		{"exceeds header", "x = 1, y = 1\n2o!"},
		{"bad token", "x = 2, y = 1\no?!"},
		{"run beyond width", "x = 3, y = 1\n4o!"},
		{"row beyond height", "x = 3, y = 1\n$o!"},
		{"oversized header", "x = 99999999, y = 1\no!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRLE(tt.src); !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Expected ErrInvalidPattern, got %v", err)
			}
		})
	}
}

func TestParseRLE_HugeRunRejectedEarly(t *testing.T) {
	// Must fail while reading the count, before any cells are materialized
	_, err := ParseRLE("x = 3, y = 1\n30000000o!")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Expected ErrInvalidPattern, got %v", err)
	}

	// Overflow-sized counts are rejected the same way
	_, err = ParseRLE("x = 3, y = 3\n99999999999999999999999999o!")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern for overflowing run, got %v", err)
	}
}

func TestTranslateAndBounds(t *testing.T) {
	p := Glider.Translate(10, 5)
	want := image.Rect(10, 5, 13, 8)
	if b := p.Bounds(); b != want {
		t.Errorf("Expected bounds %v, got %v", want, b)
	}
	if Glider.Bounds().Min != (image.Point{}) {
		t.Error("Expected Translate not to modify the receiver")
	}
}

func TestStamp_Clips(t *testing.T) {
	cells := grid.Blank(4, 4)
	n := Block.Translate(3, 3).Stamp(cells, 4, 4)
	if n != 1 {
		t.Errorf("Expected 1 cell inside the grid, got %d", n)
	}
	if cells[15] != grid.Alive {
		t.Error("Expected bottom-right cell alive")
	}

	if n := Block.Translate(-5, 0).Stamp(cells, 4, 4); n != 0 {
		t.Errorf("Expected fully clipped stamp, got %d", n)
	}
}

func TestSeed_Centers(t *testing.T) {
	cells := Blinker.Seed(5, 5)
	for x := 1; x <= 3; x++ {
		if cells[2*5+x] != grid.Alive {
			t.Errorf("Expected (%d,2) alive", x)
		}
	}
	alive := 0
	for _, c := range cells {
		if c == grid.Alive {
			alive++
		}
	}
	if alive != 3 {
		t.Errorf("Expected 3 live cells, got %d", alive)
	}
}

func TestMaskAndTile(t *testing.T) {
	tiled := Block.Tile(7, 3, 1)
	// Blocks at x=0 and x=3 fit, x=6 is clipped to one column
	if got := tiled.Population(); got != 4+4+2 {
		t.Errorf("Expected 10 tiled cells, got %d", got)
	}

	masked := tiled.Mask(image.Rect(0, 0, 3, 3))
	if got := masked.Population(); got != 4 {
		t.Errorf("Expected 4 cells after mask, got %d", got)
	}
}

func TestMerge_Deduplicates(t *testing.T) {
	m := Merge(Block, Block.Translate(1, 0))
	if got := m.Population(); got != 6 {
		t.Errorf("Expected 6 distinct cells, got %d", got)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Errorf("Expected 3x2 merged bounds, got %dx%d", m.Width, m.Height)
	}
}

func TestLookup(t *testing.T) {
	if p, err := Lookup("GLIDER"); err != nil || p.Name != "glider" {
		t.Errorf("Expected built-in glider, got %v %v", p.Name, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.cells")
	if err := os.WriteFile(path, []byte("OO..\nOO..\n..OO\n..OO\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Lookup(path)
	if err != nil {
		t.Fatalf("Lookup file failed: %v", err)
	}
	if p.Name != "beacon" || p.Population() != 8 {
		t.Errorf("Expected beacon with 8 cells, got %q %d", p.Name, p.Population())
	}

	if _, err := Lookup("no-such-pattern"); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern, got %v", err)
	}
}

func (p Pattern) sameCells(other Pattern) bool {
	if len(p.Cells) != len(other.Cells) {
		return false
	}
	for i := range p.Cells {
		if p.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}
