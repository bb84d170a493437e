package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// TestScreen wraps a tcell simulation screen and records lifecycle calls
// Used by tests in this and dependent packages
type TestScreen struct {
	tcell.SimulationScreen

	width, height int

	// FailInit, if set, is returned by Init before the simulation is initialized
	FailInit error
	// OnInit runs after a successful Init, e.g. to queue input
	OnInit func(s *TestScreen)

	inits     atomic.Int32
	finis     atomic.Int32
	mouseOn   atomic.Bool
	cursorOff atomic.Bool
}

// NewTestScreen creates a simulation screen that sizes itself to width x height on Init
func NewTestScreen(width, height int) *TestScreen {
	return &TestScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		width:            width,
		height:           height,
	}
}

func (s *TestScreen) Init() error {
	if s.FailInit != nil {
		return s.FailInit
	}
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SimulationScreen.SetSize(s.width, s.height)
	s.inits.Add(1)
	if s.OnInit != nil {
		s.OnInit(s)
	}
	return nil
}

func (s *TestScreen) Fini() {
	s.finis.Add(1)
	s.mouseOn.Store(false)
	s.cursorOff.Store(false)
	s.SimulationScreen.Fini()
}

func (s *TestScreen) EnableMouse(flags ...tcell.MouseFlags) {
	s.mouseOn.Store(true)
	s.SimulationScreen.EnableMouse(flags...)
}

func (s *TestScreen) DisableMouse() {
	s.mouseOn.Store(false)
	s.SimulationScreen.DisableMouse()
}

func (s *TestScreen) HideCursor() {
	s.cursorOff.Store(true)
	s.SimulationScreen.HideCursor()
}

// Inits returns the number of successful Init calls
func (s *TestScreen) Inits() int { return int(s.inits.Load()) }

// Finis returns the number of Fini calls
func (s *TestScreen) Finis() int { return int(s.finis.Load()) }

// MouseEnabled reports whether mouse capture is on
func (s *TestScreen) MouseEnabled() bool { return s.mouseOn.Load() }

// CursorHidden reports whether the cursor is hidden by the session
func (s *TestScreen) CursorHidden() bool { return s.cursorOff.Load() }

// Restored reports whether the screen was finalized exactly once and released all modes
func (s *TestScreen) Restored() bool {
	return s.Finis() == 1 && !s.MouseEnabled() && !s.CursorHidden()
}

// PressRune queues a key press for the rune
func (s *TestScreen) PressRune(r rune) {
	s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
}

// Row returns the visible text of one row after the last Show
func (s *TestScreen) Row(y int) []rune {
	cells, w, h := s.GetContents()
	if y < 0 || y >= h {
		return nil
	}

	row := make([]rune, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			row[x] = ' '
		} else {
			row[x] = c.Runes[0]
		}
	}
	return row
}

// StyleAt returns the style of one cell after the last Show
func (s *TestScreen) StyleAt(x, y int) tcell.Style {
	cells, w, h := s.GetContents()
	if x < 0 || x >= w || y < 0 || y >= h {
		return tcell.StyleDefault
	}
	return cells[y*w+x].Style
}
