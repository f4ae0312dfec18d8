package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Population Pulse
const (
	// PulseMinPitch and PulseMaxPitch bound the density-to-pitch map, two octaves
	PulseMinPitch = 220.0
	PulseMaxPitch = 880.0

	PulseDuration  = 60 * time.Millisecond
	PulseAttack    = 5 * time.Millisecond
	PulseAmplitude = 0.2

	// PulseGap is the minimum spacing between pulses; faster clocks drop pulses
	PulseGap = 80 * time.Millisecond
)
