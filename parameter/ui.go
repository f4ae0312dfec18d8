package parameter

// Layout
const (
	// BottomMargin reserves the status bar line
	BottomMargin = 1

	// CellsPerRow is how many grid rows one terminal row shows with half blocks
	CellsPerRow = 2
)

// Status Bar
const (
	StatusSeparator = " │ "
	StatusPaused    = "PAUSED"
	StatusEllipsis  = "…"
)

// Output
const (
	// DefaultHeadlessGenerations is printed when -generations is unset in headless mode
	DefaultHeadlessGenerations = 10

	// DefaultPNGScale is pixels per cell for -png
	DefaultPNGScale = 4

	// PNGCaptionHeight is the strip below the image holding the caption
	PNGCaptionHeight = 16
)
