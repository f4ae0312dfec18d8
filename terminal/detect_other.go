//go:build !unix

package terminal

// Size returns the fallback dimensions; window size ioctls are unix-only
func Size(fd int) (int, int) {
	return fallbackWidth, fallbackHeight
}
