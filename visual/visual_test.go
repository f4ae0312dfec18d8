package visual

import (
	"testing"

	"github.com/lixenwraith/vi-life/grid"
	pv "github.com/lixenwraith/vi-life/parameter/visual"
	"github.com/lixenwraith/vi-life/terminal"
)

func TestMapper_Endpoints(t *testing.T) {
	m := NewMapper(pv.Ember, 5)

	if got := m.Color(false, 3); !got.Equal(pv.Ember.Off) {
		t.Errorf("Expected dead cell Off %v, got %v", pv.Ember.Off, got)
	}
	if got := m.Color(true, 0); !got.Equal(pv.Ember.Young) {
		t.Errorf("Expected age 0 Young %v, got %v", pv.Ember.Young, got)
	}
	if got := m.Color(true, 5); !got.Equal(pv.Ember.Old) {
		t.Errorf("Expected age 5 Old %v, got %v", pv.Ember.Old, got)
	}
	if got := m.Color(true, 500); !got.Equal(pv.Ember.Old) {
		t.Errorf("Expected saturated age Old %v, got %v", pv.Ember.Old, got)
	}
}

func TestMapper_NoLifetime(t *testing.T) {
	m := NewMapper(pv.Ocean, 0)
	for _, age := range []uint32{0, 1, 100} {
		if got := m.Color(true, age); !got.Equal(pv.Ocean.Young) {
			t.Errorf("Age %d: expected Young without lifetime, got %v", age, got)
		}
	}
}

func TestMapper_HugeLifetimeSkipsRamp(t *testing.T) {
	m := NewMapper(pv.Ember, 4_000_000_000)
	if len(m.ramp) != 0 {
		t.Errorf("Expected no ramp above the lifetime cap, got %d entries", len(m.ramp))
	}
	if got := m.Color(true, 0); !got.Equal(pv.Ember.Young) {
		t.Errorf("Expected age 0 Young %v, got %v", pv.Ember.Young, got)
	}
	if got := m.Color(true, 4_000_000_000); !got.Equal(pv.Ember.Old) {
		t.Errorf("Expected saturated age Old %v, got %v", pv.Ember.Old, got)
	}
}

func TestMapper_ZeroValueMatchesNew(t *testing.T) {
	built := NewMapper(pv.Mono, 8)
	bare := &Mapper{Off: pv.Mono.Off, Young: pv.Mono.Young, Old: pv.Mono.Old, Lifetime: 8}
	for age := uint32(0); age <= 8; age++ {
		if a, b := built.Color(true, age), bare.Color(true, age); !a.Equal(b) {
			t.Errorf("Age %d: expected %v, got %v", age, a, b)
		}
	}
}

func TestMapper_MidpointBetweenStops(t *testing.T) {
	m := NewMapper(pv.Palette{Young: terminal.RGB{255, 255, 255}, Old: terminal.RGB{0, 0, 0}}, 2)
	mid := m.Color(true, 1)
	if mid.R <= 10 || mid.R >= 245 {
		t.Errorf("Expected gray strictly between stops, got %v", mid)
	}
}

func TestImage(t *testing.T) {
	s := grid.Snapshot{
		Width:  2,
		Height: 1,
		Cells:  []grid.Cell{grid.Alive, grid.Dead},
		Ages:   []uint32{0, 0},
	}
	img := NewMapper(pv.Ember, 0).Image(s)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", img.Bounds())
	}
	px := img.RGBAAt(0, 0)
	if px.R != pv.Ember.Young.R || px.G != pv.Ember.Young.G || px.A != 0xff {
		t.Errorf("Expected Young pixel, got %v", px)
	}
	px = img.RGBAAt(1, 0)
	if px.R != pv.Ember.Off.R || px.B != pv.Ember.Off.B {
		t.Errorf("Expected Off pixel, got %v", px)
	}

	big := Scale(img, 3)
	if big.Bounds().Dx() != 6 || big.RGBAAt(5, 2) != img.RGBAAt(1, 0) {
		t.Error("Expected nearest-neighbor 3x scale")
	}
}

func TestText(t *testing.T) {
	s := grid.Snapshot{
		Width:  2,
		Height: 2,
		Cells:  []grid.Cell{grid.Alive, grid.Dead, grid.Dead, grid.Alive},
		Ages:   make([]uint32, 4),
	}
	want := "██__\n__██\n"
	if got := Text(s); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPaletteByName(t *testing.T) {
	if p, ok := pv.PaletteByName("OCEAN"); !ok || p.Name != "ocean" {
		t.Errorf("Expected case-insensitive lookup, got %v %v", p, ok)
	}
	if _, ok := pv.PaletteByName("nope"); ok {
		t.Error("Expected unknown palette to miss")
	}
}
