package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-clock/parameter"
)

// ErrTerminalClosed is returned by Poll once the screen stops delivering events
var ErrTerminalClosed = errors.New("terminal event stream closed")

// Session is exclusive control of the terminal: raw mode, alternate screen, hidden cursor, mouse capture
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// Begin initializes screen and starts forwarding its events
// On error the terminal is left untouched and no session exists
func Begin(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &Session{
		screen: screen,
		events: make(chan tcell.Event, parameter.EventBufferSize),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// End restores the terminal to its original mode. Safe to call multiple times
func (s *Session) End() {
	s.once.Do(func() {
		close(s.done)
		s.screen.DisableMouse()
		// Fini leaves the alternate screen, restores cooked mode and the cursor
		s.screen.Fini()
	})
}

// With acquires a session on the screen from open, runs fn and releases the session
// Release happens on normal return, on error and while a panic unwinds
func With(open func() (tcell.Screen, error), fn func(*Session) error) error {
	screen, err := open()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	s, err := Begin(screen)
	if err != nil {
		return err
	}
	defer s.End()

	return fn(s)
}

// Screen returns the underlying screen for drawing
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Size returns the current viewport in cells
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// Poll waits up to timeout for input
// Returns the first event plus any already queued behind it, or nil on timeout
func (s *Session) Poll(timeout time.Duration) ([]tcell.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var batch []tcell.Event
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, ErrTerminalClosed
		}
		batch = append(batch, ev)
	case <-timer.C:
		return nil, nil
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return batch, checkEvents(batch)
			}
			batch = append(batch, ev)
		default:
			return batch, checkEvents(batch)
		}
	}
}

// checkEvents surfaces backend errors reported through the event stream
func checkEvents(batch []tcell.Event) error {
	for _, ev := range batch {
		if e, ok := ev.(*tcell.EventError); ok {
			return fmt.Errorf("terminal: %w", e)
		}
	}
	return nil
}

// pump forwards screen events until the session ends
// PollEvent returns nil once the screen is finalized
func (s *Session) pump() {
	defer close(s.events)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}
