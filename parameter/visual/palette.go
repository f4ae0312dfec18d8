package visual

import (
	"strings"

	"github.com/lixenwraith/vi-life/terminal"
)

// Palette is the three-stop color scheme for cell rendering
type Palette struct {
	Name  string
	Off   terminal.RGB // Dead cells and background
	Young terminal.RGB // Newborn cells
	Old   terminal.RGB // Cells at the lifetime cap
}

// Keyframe colors
var (
	RgbBackground = terminal.RGB{26, 27, 38} // Tokyo Night background
	RgbStatusBar  = terminal.RGB{255, 255, 255}
	RgbStatusBg   = terminal.RGB{135, 206, 250} // Light sky blue
	RgbPausedBg   = terminal.RGB{255, 165, 0}   // Orange

	RgbEmberYoung = terminal.RGB{255, 215, 0} // Yellow
	RgbEmberOld   = terminal.RGB{139, 0, 0}   // Deep red
	RgbOceanYoung = terminal.RGB{0, 206, 209} // Cyan
	RgbOceanOld   = terminal.RGB{65, 105, 225}
	RgbMonoYoung  = terminal.RGB{255, 255, 255}
	RgbMonoOld    = terminal.RGB{60, 60, 60}
)

// Built-in palettes
var (
	Ember = Palette{Name: "ember", Off: RgbBackground, Young: RgbEmberYoung, Old: RgbEmberOld}
	Ocean = Palette{Name: "ocean", Off: RgbBackground, Young: RgbOceanYoung, Old: RgbOceanOld}
	Mono  = Palette{Name: "mono", Off: terminal.RGBBlack, Young: RgbMonoYoung, Old: RgbMonoOld}
)

// Palettes lists the built-ins in display order
var Palettes = []Palette{Ember, Ocean, Mono}

// DefaultPalette is used when no palette is configured
const DefaultPalette = "ember"

// PaletteByName looks up a built-in palette, case-insensitive
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Palette{}, false
}
