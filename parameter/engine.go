package parameter

import "time"

// Simulation Loop Timing
const (
	// SimulationInterval is the default generation advance interval (clock tick)
	SimulationInterval = 100 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	// Display cadence is independent of simulation cadence
	FrameUpdateInterval = 33 * time.Millisecond

	// MinSimulationInterval bounds the -interval flag to keep the viewer responsive
	MinSimulationInterval = 1 * time.Millisecond
)

// Grid Defaults
const (
	// DefaultWidth is the grid width when neither config nor terminal size apply
	DefaultWidth = 80

	// DefaultHeight is the grid height when neither config nor terminal size apply
	DefaultHeight = 55

	// DefaultDensity is the initial live probability of a random fill
	DefaultDensity = 0.5

	// DefaultLifetime is the age cap used for visualization intensity
	DefaultLifetime = 32

	// DefaultRule is Conway's Life
	DefaultRule = "B3/S23"

	// MaxLifetime bounds the age cap; the color ramp holds MaxLifetime+1 entries
	MaxLifetime = 1 << 16

	// MaxPatternSize bounds each dimension of a pattern file header
	MaxPatternSize = 1 << 16
)

// Dispatch Defaults
const (
	// DefaultTileSize is the square work-group edge handed to a worker per job
	// Matches a 16x16 compute work-group
	DefaultTileSize = 16

	// MaxTileSize caps configurable tiles
	MaxTileSize = 1024
)

// Status metric keys
const (
	MetricGeneration  = "engine.generation"
	MetricPopulation  = "engine.population"
	MetricStepMicros  = "engine.step_us"
	MetricClockTicks  = "clock.ticks"
	MetricStepsPerSec = "clock.steps_per_sec"
)
