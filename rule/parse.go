package rule

import (
	"fmt"
	"strings"
)

// Parse reads a rule in B/S notation ("B3/S23", "s23/b3") or the legacy
// survival/birth form ("23/3")
func Parse(s string) (Table, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return Table{}, fmt.Errorf("%w: empty", ErrInvalidRuleString)
	}

	parts := strings.Split(src, "/")
	if len(parts) != 2 {
		return Table{}, fmt.Errorf("%w: %q needs exactly one '/'", ErrInvalidRuleString, s)
	}

	var t Table
	var sawB, sawS bool

	for i, part := range parts {
		part = strings.TrimSpace(part)
		var target *[Size]bool

		switch {
		case len(part) > 0 && (part[0] == 'B' || part[0] == 'b'):
			if sawB {
				return Table{}, fmt.Errorf("%w: %q repeats B", ErrInvalidRuleString, s)
			}
			sawB = true
			target = &t.dead
			part = part[1:]
		case len(part) > 0 && (part[0] == 'S' || part[0] == 's'):
			if sawS {
				return Table{}, fmt.Errorf("%w: %q repeats S", ErrInvalidRuleString, s)
			}
			sawS = true
			target = &t.alive
			part = part[1:]
		case i == 0:
			// Legacy "survive/born"
			sawS = true
			target = &t.alive
		case sawB:
			sawS = true
			target = &t.alive
		default:
			sawB = true
			target = &t.dead
		}

		for _, r := range part {
			if r < '0' || r > '8' {
				return Table{}, fmt.Errorf("%w: %q has bad digit %q", ErrInvalidRuleString, s, r)
			}
			target[r-'0'] = true
		}
	}

	if !sawB || !sawS {
		return Table{}, fmt.Errorf("%w: %q must name both B and S", ErrInvalidRuleString, s)
	}
	return t, nil
}

// MustParse is Parse for package-level presets; panics on error
func MustParse(s string) Table {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}
