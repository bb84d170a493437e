package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond
)

// Hourly Chime
const (
	// ChimeEnabled strikes the bell when the displayed hour changes
	ChimeEnabled = true

	ChimeFundamentalHz = 880.0  // A5
	ChimeOvertoneHz    = 1760.0 // octave up
	ChimeVolume        = 0.4

	ChimeDuration           = 600 * time.Millisecond
	ChimeAttack             = 5 * time.Millisecond
	ChimeFundamentalRelease = 550 * time.Millisecond
	ChimeOvertoneRelease    = 200 * time.Millisecond
)
