// Package audio renders population changes as short tones.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-life/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Pitch range for density 0..1
const (
	MinPitch = parameter.PulseMinPitch
	MaxPitch = parameter.PulseMaxPitch
)

// Sonifier plays one pulse per generation through a shared mixer
type Sonifier struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastPulse   time.Time
	pulses      uint64
}

// NewSonifier creates a sonifier; no device is opened until Start
func NewSonifier() *Sonifier {
	return &Sonifier{
		mixer: &beep.Mixer{},
	}
}

// Start opens the audio device and begins playing the mixer
func (s *Sonifier) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Stop silences pending pulses; the device stays open for a later Start
func (s *Sonifier) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	s.initialized = false
}

// Pulse queues a tone pitched by population density
// Pulses closer than parameter.PulseGap are dropped, as are pulses for an extinct grid
func (s *Sonifier) Pulse(population, cells int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || population <= 0 {
		return
	}
	now := time.Now()
	if now.Sub(s.lastPulse) < parameter.PulseGap {
		return
	}
	s.lastPulse = now
	s.pulses++

	tone := NewTone(sampleRate, PitchFor(population, cells), parameter.PulseDuration)
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Pulses returns how many tones were queued
func (s *Sonifier) Pulses() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pulses
}

// PitchFor maps density population/cells onto MinPitch..MaxPitch exponentially
func PitchFor(population, cells int) float64 {
	if cells <= 0 {
		return MinPitch
	}
	density := float64(population) / float64(cells)
	density = math.Max(0, math.Min(1, density))
	return MinPitch * math.Pow(MaxPitch/MinPitch, density)
}
