package pattern

import (
	"fmt"
	"os"
	"strings"
)

// Built-in patterns
var (
	Block = mustPlaintext("block", `
OO
OO`)

	Blinker = mustPlaintext("blinker", `
OOO`)

	Glider = mustPlaintext("glider", `
.O.
..O
OOO`)

	RPentomino = mustPlaintext("r-pentomino", `
.OO
OO.
.O.`)

	GosperGun = mustRLE("gosper-gun", `x = 36, y = 9, rule = B3/S23
24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4b
obo$10bo5bo7bo$11bo3bo$12b2o!`)
)

// Builtins lists the built-in patterns by name
var Builtins = []Pattern{Block, Blinker, Glider, RPentomino, GosperGun}

// Lookup resolves a built-in name, or failing that a pattern file path
func Lookup(name string) (Pattern, error) {
	for _, p := range Builtins {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	if _, err := os.Stat(name); err == nil {
		return Load(name)
	}
	return Pattern{}, fmt.Errorf("%w: unknown pattern %q", ErrInvalidPattern, name)
}

func mustPlaintext(name, src string) Pattern {
	p, err := ParsePlaintext(strings.TrimPrefix(src, "\n"))
	if err != nil {
		panic(err)
	}
	p.Name = name
	return p
}

func mustRLE(name, src string) Pattern {
	p, err := ParseRLE(src)
	if err != nil {
		panic(err)
	}
	p.Name = name
	return p
}
