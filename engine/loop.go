package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-clock/parameter"
	"github.com/lixenwraith/ascii-clock/render"
	"github.com/lixenwraith/ascii-clock/terminal"
)

// State is the render loop state
type State uint8

const (
	StateRunning State = iota
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Chimer strikes an audible signal when the displayed hour changes
type Chimer interface {
	Chime()
}

// Loop redraws the clock face each tick until quit
// Owns no goroutines; the only suspension points are the input poll and the frame sleep
type Loop struct {
	session *terminal.Session
	font    *render.Font
	clock   TimeSource
	logger  *log.Logger
	chimer  Chimer

	pollTimeout time.Duration
	frameSleep  time.Duration
	measure     bool

	state    State
	lastTick time.Time
}

// NewLoop creates a loop in StateRunning
// The font is borrowed for the loop's lifetime; the session stays owned by the caller
func NewLoop(session *terminal.Session, font *render.Font, clock TimeSource, logger *log.Logger) *Loop {
	return &Loop{
		session:     session,
		font:        font,
		clock:       clock,
		logger:      logger,
		pollTimeout: parameter.PollTimeout,
		frameSleep:  parameter.FrameSleep,
		measure:     parameter.MeasureFootprint,
		state:       StateRunning,
	}
}

// SetChimer enables the hourly chime; nil disables it
func (l *Loop) SetChimer(c Chimer) {
	l.chimer = c
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// Run ticks until the quit key, context cancellation or a fatal terminal error
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateRunning {
		if ctx.Err() != nil {
			l.state = StateExiting
			break
		}

		if err := l.Tick(); err != nil {
			return err
		}
		if l.state != StateRunning {
			break
		}

		select {
		case <-ctx.Done():
			l.state = StateExiting
		case <-time.After(l.frameSleep):
		}
	}

	l.logger.Debug("render loop stopped", "state", l.state)
	return nil
}

// Tick runs one frame: viewport, time, glyphs, layout, draw, input poll
// A glyph conversion failure skips the draw; only terminal errors are returned
func (l *Loop) Tick() error {
	width, height := l.session.Size()
	vp := render.Viewport{Width: width, Height: height}

	now := l.clock.Now()
	l.strike(now)

	text := FormatClock(now)
	block, err := l.font.Render(text)
	if err != nil {
		l.logger.Error("skip frame", "text", text, "err", err)
	} else {
		l.draw(vp, block)
	}

	return l.pollQuit()
}

// Footprint returns the block height and width used for layout
func (l *Loop) Footprint(block render.GlyphBlock) (height, width int) {
	if l.measure {
		return block.Height(), block.Width()
	}
	return parameter.NominalHeight, parameter.NominalWidth
}

func (l *Loop) draw(vp render.Viewport, block render.GlyphBlock) {
	height, width := l.Footprint(block)
	region := render.ComputeRegion(vp, height, width)

	scr := l.session.Screen()
	scr.Clear()

	for row, line := range block.Lines {
		x, y, visible := region.CenterLine(row, render.LineWidth(line))
		if !visible {
			break
		}
		// Block runes are single-cell
		for _, r := range line {
			if region.Contains(x, y) {
				scr.SetContent(x, y, r, nil, parameter.ClockStyle)
			}
			x++
		}
	}

	scr.Show()
}

func (l *Loop) pollQuit() error {
	events, err := l.session.Poll(l.pollTimeout)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}

	for _, ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				l.state = StateExiting
				return nil
			}
		case *tcell.EventResize:
			// Size is re-read next tick, Sync discards stale cells from the old geometry
			l.session.Screen().Sync()
		}
	}
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune &&
		ev.Rune() == parameter.QuitRune &&
		ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0
}

// strike chimes once per hour change; the first observed tick never chimes
func (l *Loop) strike(now time.Time) {
	if l.chimer != nil && chimeDue(l.lastTick, now) {
		l.chimer.Chime()
	}
	l.lastTick = now
}

func chimeDue(prev, now time.Time) bool {
	if prev.IsZero() {
		return false
	}
	py, pm, pd := prev.Date()
	ny, nm, nd := now.Date()
	return prev.Hour() != now.Hour() || py != ny || pm != nm || pd != nd
}
