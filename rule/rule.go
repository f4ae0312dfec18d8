// Package rule holds the birth/survival tables of Life-like automata.
//
// A Table answers two questions for a neighbor count n in 0..8: does a live cell
// with n live neighbors survive, and is a dead cell with n live neighbors born.
// Tables are values and never change after construction.
package rule

import (
	"errors"
	"fmt"
)

// Size is the number of entries per table, one per possible Moore neighbor count
const Size = 9

var (
	// ErrInvalidRuleTableSize is returned when a rule array does not have exactly Size entries
	ErrInvalidRuleTableSize = errors.New("invalid rule table size")

	// ErrInvalidRuleString is returned for unparseable rule notation
	ErrInvalidRuleString = errors.New("invalid rule string")
)

// Table is an immutable birth/survival lookup
type Table struct {
	alive [Size]bool // alive[n]: live cell with n neighbors survives
	dead  [Size]bool // dead[n]: dead cell with n neighbors is born
}

// New builds a table from 0/1 flag arrays as uploaded by rendering collaborators
// Any nonzero entry counts as set
func New(alive, dead []uint32) (Table, error) {
	if len(alive) != Size || len(dead) != Size {
		return Table{}, fmt.Errorf("%w: alive=%d dead=%d, want %d each",
			ErrInvalidRuleTableSize, len(alive), len(dead), Size)
	}

	var t Table
	for i := 0; i < Size; i++ {
		t.alive[i] = alive[i] != 0
		t.dead[i] = dead[i] != 0
	}
	return t, nil
}

// FromFlags builds a table from boolean arrays
func FromFlags(alive, dead [Size]bool) Table {
	return Table{alive: alive, dead: dead}
}

// Survives reports whether a live cell with n live neighbors stays alive
func (t Table) Survives(n int) bool {
	mustCount(n)
	return t.alive[n]
}

// IsBorn reports whether a dead cell with n live neighbors becomes alive
func (t Table) IsBorn(n int) bool {
	mustCount(n)
	return t.dead[n]
}

// AliveFlags returns the survival table as 0/1 values
func (t Table) AliveFlags() []uint32 {
	return flags(t.alive)
}

// DeadFlags returns the birth table as 0/1 values
func (t Table) DeadFlags() []uint32 {
	return flags(t.dead)
}

// Equal reports whether two tables hold identical entries
func (t Table) Equal(other Table) bool {
	return t.alive == other.alive && t.dead == other.dead
}

// String renders the table in B/S notation, e.g. "B3/S23"
func (t Table) String() string {
	buf := make([]byte, 0, 2*Size+4)
	buf = append(buf, 'B')
	for n := 0; n < Size; n++ {
		if t.dead[n] {
			buf = append(buf, byte('0'+n))
		}
	}
	buf = append(buf, '/', 'S')
	for n := 0; n < Size; n++ {
		if t.alive[n] {
			buf = append(buf, byte('0'+n))
		}
	}
	return string(buf)
}

func flags(src [Size]bool) []uint32 {
	out := make([]uint32, Size)
	for i, set := range src {
		if set {
			out[i] = 1
		}
	}
	return out
}

// mustCount panics on counts that cannot occur in an 8-connected grid
func mustCount(n int) {
	if n < 0 || n >= Size {
		panic(fmt.Sprintf("rule: neighbor count %d out of range [0,%d]", n, Size-1))
	}
}
