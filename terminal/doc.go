// Package terminal probes the controlling terminal for the viewer.
//
// Features:
//   - True color (24-bit) and 256-color capability detection
//   - RGB to xterm-256 palette quantization
//   - Window size lookup via TIOCGWINSZ
//   - TTY detection for choosing between interactive and headless output
//
// Drawing itself is left to tcell; this package only answers questions about the terminal.
package terminal
