//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// Size returns the terminal dimensions in cells for the given fd
// Falls back to 80x24 when the fd is not a terminal
func Size(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}
