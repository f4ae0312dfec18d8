package pattern

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-life/parameter"
)

// ParsePlaintext reads the .cells format: '.' dead, 'O' or '*' alive, '!' comment lines
func ParsePlaintext(src string) (Pattern, error) {
	var p Pattern
	y := 0
	for _, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		line = strings.TrimRight(line, " \t")
		for x, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, image.Pt(x, y))
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidPattern, y+1, r)
			}
		}
		p.Width = max(p.Width, len(line))
		y++
	}

	// Trailing blank lines do not count toward height
	b := p.Bounds()
	p.Height = b.Max.Y
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: no live cells", ErrInvalidPattern)
	}
	return p, nil
}

// ParseRLE reads run-length encoded patterns:
// '#' comment lines, an "x = W, y = H[, rule = R]" header, then b/o/$ runs ending in '!'
func ParseRLE(src string) (Pattern, error) {
	var p Pattern
	var body strings.Builder
	header := false

	for _, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if name, ok := strings.CutPrefix(line, "#N"); ok {
				p.Name = strings.TrimSpace(name)
			}
		case !header && strings.HasPrefix(line, "x"):
			if err := parseRLEHeader(line, &p); err != nil {
				return Pattern{}, err
			}
			header = true
		default:
			if !header {
				return Pattern{}, fmt.Errorf("%w: missing header", ErrInvalidPattern)
			}
			body.WriteString(line)
		}
	}
	if !header {
		return Pattern{}, fmt.Errorf("%w: missing header", ErrInvalidPattern)
	}

	// No run can legitimately exceed the larger header dimension
	maxRun := max(p.Width, p.Height)
	x, y, run := 0, 0, 0
	ended := false
loop:
	for _, r := range body.String() {
		switch {
		case r >= '0' && r <= '9':
			run = run*10 + int(r-'0')
			if run > maxRun {
				return Pattern{}, fmt.Errorf("%w: run exceeds header %dx%d", ErrInvalidPattern, p.Width, p.Height)
			}
			continue
		case r == '!':
			ended = true
			break loop
		}

		n := max(run, 1)
		run = 0
		switch {
		case r == 'b' || r == '.':
			x += n
		case r == '$':
			y += n
			x = 0
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			if x+n > p.Width || y >= p.Height {
				return Pattern{}, fmt.Errorf("%w: cells exceed header %dx%d", ErrInvalidPattern, p.Width, p.Height)
			}
			// Any non-b state letter is a live cell
			for i := 0; i < n; i++ {
				p.Cells = append(p.Cells, image.Pt(x+i, y))
			}
			x += n
		default:
			return Pattern{}, fmt.Errorf("%w: unexpected %q", ErrInvalidPattern, r)
		}
	}
	if !ended {
		return Pattern{}, fmt.Errorf("%w: missing '!' terminator", ErrInvalidPattern)
	}

	b := p.Bounds()
	if b.Max.X > p.Width || b.Max.Y > p.Height {
		return Pattern{}, fmt.Errorf("%w: cells exceed header %dx%d", ErrInvalidPattern, p.Width, p.Height)
	}
	return p, nil
}

func parseRLEHeader(line string, p *Pattern) error {
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: header field %q", ErrInvalidPattern, field)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 || n > parameter.MaxPatternSize {
				return fmt.Errorf("%w: header %s = %q", ErrInvalidPattern, key, value)
			}
			if key == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			p.Rule = value
		}
	}
	return nil
}

// Load reads a pattern file, choosing the parser by extension (.rle, otherwise plaintext)
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, err
	}

	var p Pattern
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		p, err = ParseRLE(string(data))
	} else {
		p, err = ParsePlaintext(string(data))
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
