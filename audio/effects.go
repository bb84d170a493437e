package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ascii-clock/parameter"
)

// tone is a finite sine wave
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	rate     beep.SampleRate
}

// NewTone creates a sine streamer of the given frequency and duration
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(duration),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v

		// Phase wraps in [0, 1)
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay shapes a stream with a linear attack followed by a sustain and a linear release
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewDecay wraps s in an attack/release envelope over duration
func NewDecay(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &decay{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	n, ok = d.streamer.Stream(samples)

	releaseStart := d.total - d.release
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, true
		}

		gain := 1.0
		switch {
		case d.position < d.attack:
			gain = float64(d.position) / float64(d.attack)
		case d.position >= releaseStart && d.release > 0:
			gain = float64(d.total-d.position) / float64(d.release)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateChime builds the hourly bell: a fundamental with a shorter octave overtone
func CreateChime(rate beep.SampleRate) beep.Streamer {
	fund := NewDecay(
		NewTone(parameter.ChimeFundamentalHz, parameter.ChimeDuration, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeFundamentalRelease, rate,
	)
	over := NewDecay(
		NewTone(parameter.ChimeOvertoneHz, parameter.ChimeDuration, rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeOvertoneRelease, rate,
	)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, parameter.ChimeVolume)
}
