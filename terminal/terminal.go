package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// IsTerminal reports whether fd refers to an interactive terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. COLORTERM is set by most modern emulators
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Terminal-specific variables
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. TERM suffix hints
	t := os.Getenv("TERM")
	if strings.Contains(t, "truecolor") ||
		strings.Contains(t, "24bit") ||
		strings.Contains(t, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a -color flag value, "auto" defers to DetectColorMode
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}
