package rule

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known Life-like rules
var (
	Conway           = MustParse("B3/S23")
	HighLife         = MustParse("B36/S23")
	Seeds            = MustParse("B2/S")
	DayAndNight      = MustParse("B3678/S34678")
	Maze             = MustParse("B3/S12345")
	Replicator       = MustParse("B1357/S1357")
	LifeWithoutDeath = MustParse("B3/S012345678")
)

var presets = map[string]Table{
	"conway":           Conway,
	"life":             Conway,
	"highlife":         HighLife,
	"seeds":            Seeds,
	"daynight":         DayAndNight,
	"maze":             Maze,
	"replicator":       Replicator,
	"lifewithoutdeath": LifeWithoutDeath,
}

// Lookup resolves a preset name (case-insensitive) or falls back to parsing s as notation
func Lookup(s string) (Table, error) {
	if t, ok := presets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	t, err := Parse(s)
	if err != nil {
		return Table{}, fmt.Errorf("unknown rule %q (presets: %s): %w", s, strings.Join(Presets(), ", "), err)
	}
	return t, nil
}

// Presets returns the sorted preset names
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
