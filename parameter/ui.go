package parameter

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Render Loop Timing
const (
	// PollTimeout bounds the per-tick wait for input, which is also the worst-case quit latency
	PollTimeout = 200 * time.Millisecond

	// FrameSleep is the fixed pause after each tick, capping redraw rate independent of input
	FrameSleep = 100 * time.Millisecond

	// QuitRune is the only key with an effect
	QuitRune = 'q'

	// EventBufferSize is the capacity of the session event pump channel
	EventBufferSize = 64
)

// Clock Style
var (
	// AccentColor is the fixed foreground of the digits
	AccentColor = tcell.NewRGBColor(0, 255, 150)

	// ClockStyle is bold accent on the default background
	ClockStyle = tcell.StyleDefault.Foreground(AccentColor).Bold(true)
)
