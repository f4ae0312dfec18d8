package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-life/parameter"
)

// Tone is a finite sine streamer with a linear attack/release envelope
type Tone struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
	total     int
	attack    int
	release   int
}

// NewTone creates a tone of the given frequency and duration
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) *Tone {
	total := sr.N(d)
	edge := sr.N(parameter.PulseAttack)
	if 2*edge > total {
		edge = total / 2
	}
	return &Tone{
		sr:        sr,
		freq:      freq,
		amplitude: parameter.PulseAmplitude,
		total:     total,
		attack:    edge,
		release:   edge,
	}
}

// Len returns the tone length in samples
func (t *Tone) Len() int {
	return t.total
}

// envelope returns the gain at sample index i
func (t *Tone) envelope(i int) float64 {
	switch {
	case t.attack > 0 && i < t.attack:
		return float64(i) / float64(t.attack)
	case t.release > 0 && i >= t.total-t.release:
		return float64(t.total-i) / float64(t.release)
	}
	return 1
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		sec := float64(t.pos) / float64(t.sr)
		v := t.amplitude * t.envelope(t.pos) * math.Sin(2*math.Pi*t.freq*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error {
	return nil
}
