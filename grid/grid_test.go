package grid

import (
	"errors"
	"testing"
)

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		initial       []Cell
	}{
		{"zero width", 0, 4, nil},
		{"zero height", 4, 0, nil},
		{"negative", -1, 4, nil},
		{"short initial", 3, 3, make([]Cell, 8)},
		{"long initial", 3, 3, make([]Cell, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, 0, tt.initial)
			if !errors.Is(err, ErrInvalidGridSize) {
				t.Errorf("Expected ErrInvalidGridSize, got %v", err)
			}
		})
	}
}

func TestNew_NormalizesCells(t *testing.T) {
	g, err := New(3, 1, 0, []Cell{0, 5, 0xffffffff})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cells, ages := g.Front()
	want := []Cell{Dead, Alive, Alive}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("Cell %d: expected %d, got %d", i, want[i], cells[i])
		}
		if ages[i] != 0 {
			t.Errorf("Age %d: expected 0 without lifetime, got %d", i, ages[i])
		}
	}
}

func TestNew_InitialAges(t *testing.T) {
	g, err := New(2, 1, 5, []Cell{1, 0})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, ages := g.Front()
	if ages[0] != 1 || ages[1] != 0 {
		t.Errorf("Expected ages [1 0], got %v", ages)
	}
}

func TestSwap_FlipsWithoutCopy(t *testing.T) {
	g, err := New(2, 2, 0, Blank(2, 2))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	front, _ := g.Front()
	back, _ := g.Back()
	if &front[0] == &back[0] {
		t.Fatal("Expected front and back to be distinct buffers")
	}

	back[3] = Alive
	g.Swap()

	newFront, _ := g.Front()
	newBack, _ := g.Back()
	if &newFront[0] != &back[0] {
		t.Error("Expected old back buffer to become front")
	}
	if &newBack[0] != &front[0] {
		t.Error("Expected old front buffer to be recycled as back")
	}
	if newFront[3] != Alive {
		t.Error("Expected written cell to be visible after swap")
	}
	if g.Generation() != 1 {
		t.Errorf("Expected generation 1, got %d", g.Generation())
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	g, err := New(2, 2, 3, []Cell{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := g.Snapshot()
	cells, _ := g.Front()
	cells[0] = Dead

	if !s.Alive(0, 0) {
		t.Error("Expected snapshot to be unaffected by later buffer writes")
	}
	if s.Population() != 2 {
		t.Errorf("Expected population 2, got %d", s.Population())
	}
	if s.Age(1, 1) != 1 {
		t.Errorf("Expected age 1, got %d", s.Age(1, 1))
	}
	if s.Equal(g.Snapshot()) {
		t.Error("Expected fresh snapshot to reflect the modified buffer")
	}
}

func TestSnapshot_IndexPanics(t *testing.T) {
	s := Snapshot{Width: 2, Height: 2, Cells: make([]Cell, 4), Ages: make([]uint32, 4)}
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for out-of-range coordinate")
		}
	}()
	s.Alive(2, 0)
}

func TestRandom_Deterministic(t *testing.T) {
	a := Random(16, 16, 0.5, 42)
	b := Random(16, 16, 0.5, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical fills for the same seed, differ at %d", i)
		}
	}

	if n := countAlive(Random(8, 8, 0, 1)); n != 0 {
		t.Errorf("Expected empty fill at density 0, got %d", n)
	}
	if n := countAlive(Random(8, 8, 1, 1)); n != 64 {
		t.Errorf("Expected full fill at density 1, got %d", n)
	}
}

func countAlive(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c != Dead {
			n++
		}
	}
	return n
}
