package kernel

import (
	"testing"

	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/rule"
)

func full(width, height int) []grid.Cell {
	cells := make([]grid.Cell, width*height)
	for i := range cells {
		cells[i] = grid.Alive
	}
	return cells
}

func TestNeighbors_Boundary(t *testing.T) {
	cells := full(5, 5)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"corner top-left", 0, 0, 3},
		{"corner bottom-right", 4, 4, 3},
		{"edge top", 2, 0, 5},
		{"edge left", 0, 2, 5},
		{"interior", 2, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Neighbors(cells, 5, 5, tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %d neighbors, got %d", tt.want, got)
			}
		})
	}
}

func TestNeighbors_ExcludesSelf(t *testing.T) {
	cells := make([]grid.Cell, 9)
	cells[4] = grid.Alive
	if got := Neighbors(cells, 3, 3, 1, 1); got != 0 {
		t.Errorf("Expected center cell not to count itself, got %d", got)
	}
	if got := Neighbors(cells, 3, 3, 0, 0); got != 1 {
		t.Errorf("Expected corner to see center, got %d", got)
	}
}

func TestNeighbors_NoWrap(t *testing.T) {
	// Alive only in the right column; left column must not see it
	cells := make([]grid.Cell, 4*3)
	for y := 0; y < 3; y++ {
		cells[y*4+3] = grid.Alive
	}
	if got := Neighbors(cells, 4, 3, 0, 1); got != 0 {
		t.Errorf("Expected no wraparound neighbors, got %d", got)
	}
}

func TestNeighbors_OutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for coordinate outside the grid")
		}
	}()
	Neighbors(make([]grid.Cell, 4), 2, 2, 2, 0)
}

func TestEvaluate_ClassicTransitions(t *testing.T) {
	p := Params{Width: 3, Height: 3, Rule: rule.Conway}
	ages := make([]uint32, 9)

	tests := []struct {
		name  string
		cells []grid.Cell
		want  grid.Cell
	}{
		{"dead with three is born", []grid.Cell{1, 1, 1, 0, 0, 0, 0, 0, 0}, grid.Alive},
		{"dead with two stays dead", []grid.Cell{1, 1, 0, 0, 0, 0, 0, 0, 0}, grid.Dead},
		{"alive with two survives", []grid.Cell{1, 1, 0, 0, 1, 0, 0, 0, 0}, grid.Alive},
		{"alive with one dies", []grid.Cell{1, 0, 0, 0, 1, 0, 0, 0, 0}, grid.Dead},
		{"alive with four dies", []grid.Cell{1, 1, 1, 1, 1, 0, 0, 0, 0}, grid.Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := Evaluate(p, tt.cells, ages, 1, 1)
			if state != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, state)
			}
		})
	}
}

func TestEvaluate_AgeSaturation(t *testing.T) {
	// A lone cell under "survive on 0" lives forever
	table := rule.MustParse("B/S0")
	p := Params{Width: 1, Height: 1, Lifetime: 5, Rule: table}

	cells := []grid.Cell{grid.Alive}
	ages := []uint32{1}
	for i := 0; i < 10; i++ {
		cells[0], ages[0] = Evaluate(p, cells, ages, 0, 0)
	}
	if ages[0] != 5 {
		t.Errorf("Expected age to saturate at 5, got %d", ages[0])
	}
}

func TestEvaluate_AgeResetOnDeath(t *testing.T) {
	p := Params{Width: 1, Height: 1, Lifetime: 5, Rule: rule.Conway}
	state, age := Evaluate(p, []grid.Cell{grid.Alive}, []uint32{4}, 0, 0)
	if state != grid.Dead || age != 0 {
		t.Errorf("Expected dead cell with age 0, got state=%d age=%d", state, age)
	}
}

func TestEvaluate_AgeIgnoredByRule(t *testing.T) {
	// Display-only aging: identical states with different ages evolve identically
	p := Params{Width: 3, Height: 3, Lifetime: 3, Rule: rule.Conway}
	cells := []grid.Cell{0, 1, 0, 0, 1, 0, 0, 1, 0}
	young := make([]uint32, 9)
	old := []uint32{0, 3, 0, 0, 3, 0, 0, 3, 0}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			s1, _ := Evaluate(p, cells, young, x, y)
			s2, _ := Evaluate(p, cells, old, x, y)
			if s1 != s2 {
				t.Errorf("Expected age-independent state at (%d,%d)", x, y)
			}
		}
	}
}

func TestEvaluate_NoAgeWithoutLifetime(t *testing.T) {
	p := Params{Width: 1, Height: 1, Rule: rule.MustParse("B/S0")}
	_, age := Evaluate(p, []grid.Cell{grid.Alive}, []uint32{0}, 0, 0)
	if age != 0 {
		t.Errorf("Expected age 0 with lifetime disabled, got %d", age)
	}
}

func TestStep_WritesOnlyOwnIndex(t *testing.T) {
	p := Params{Width: 3, Height: 3, Rule: rule.Conway}
	src := []grid.Cell{0, 1, 0, 0, 1, 0, 0, 1, 0}
	srcAges := make([]uint32, 9)
	dst := []grid.Cell{7, 7, 7, 7, 7, 7, 7, 7, 7}
	dstAges := make([]uint32, 9)

	Step(p, src, srcAges, dst, dstAges, 0, 1)

	for i, c := range dst {
		if i == 3 {
			if c != grid.Alive {
				t.Errorf("Expected (0,1) to be born, got %d", c)
			}
			continue
		}
		if c != 7 {
			t.Errorf("Expected index %d untouched, got %d", i, c)
		}
	}
}
