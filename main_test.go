package main

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ascii-clock/asset"
	"github.com/lixenwraith/ascii-clock/terminal"
)

type fakeChimer struct {
	chimes   atomic.Int32
	cleanups atomic.Int32
}

func (f *fakeChimer) Chime()   { f.chimes.Add(1) }
func (f *fakeChimer) Cleanup() { f.cleanups.Add(1) }

func TestRun_FontFailureNeverOpensTerminal(t *testing.T) {
	var stderr bytes.Buffer
	opened := false

	code := run(deps{
		sheet: []byte("width 6\n"),
		open: func() (tcell.Screen, error) {
			opened = true
			return nil, errors.New("unreachable")
		},
		stderr: &stderr,
	})

	assert.Equal(t, exitFont, code)
	assert.False(t, opened)
	assert.Contains(t, stderr.String(), "malformed font sheet")
}

func TestRun_OpenFailure(t *testing.T) {
	var stderr bytes.Buffer

	code := run(deps{
		sheet:  asset.BlockFont,
		open:   func() (tcell.Screen, error) { return nil, errors.New("no tty") },
		stderr: &stderr,
	})

	assert.Equal(t, exitTerminal, code)
	assert.Contains(t, stderr.String(), "no tty")
}

func TestRun_InitFailureRestoresNothing(t *testing.T) {
	var stderr bytes.Buffer
	scr := terminal.NewTestScreen(80, 24)
	scr.FailInit = errors.New("raw mode refused")

	code := run(deps{
		sheet:  asset.BlockFont,
		open:   func() (tcell.Screen, error) { return scr, nil },
		stderr: &stderr,
	})

	assert.Equal(t, exitTerminal, code)
	assert.Zero(t, scr.Inits())
	assert.Contains(t, stderr.String(), "raw mode refused")
}

func TestRun_QuitKeyExitsCleanly(t *testing.T) {
	var stderr bytes.Buffer
	scr := terminal.NewTestScreen(80, 24)
	scr.OnInit = func(s *terminal.TestScreen) { s.PressRune('q') }
	chimer := &fakeChimer{}

	code := run(deps{
		sheet:  asset.BlockFont,
		open:   func() (tcell.Screen, error) { return scr, nil },
		chimer: func() (Chimer, error) { return chimer, nil },
		stderr: &stderr,
	})

	require.Equal(t, exitOK, code, stderr.String())
	assert.True(t, scr.Restored())
	assert.EqualValues(t, 1, chimer.cleanups.Load())
}

func TestRun_AudioFailureIsNotFatal(t *testing.T) {
	var stderr bytes.Buffer
	scr := terminal.NewTestScreen(80, 24)
	scr.OnInit = func(s *terminal.TestScreen) { s.PressRune('q') }

	code := run(deps{
		sheet:  asset.BlockFont,
		open:   func() (tcell.Screen, error) { return scr, nil },
		chimer: func() (Chimer, error) { return nil, errors.New("no device") },
		stderr: &stderr,
	})

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "audio unavailable")
}

func TestNewLogger_CRLF(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf).Info("tick")

	assert.Contains(t, buf.String(), "clock")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\r\n")))
}

func TestRun_PartialFontWarns(t *testing.T) {
	var stderr bytes.Buffer
	scr := terminal.NewTestScreen(80, 24)
	scr.OnInit = func(s *terminal.TestScreen) { s.PressRune('q') }

	code := run(deps{
		sheet:  []byte("height 1\nwidth 1\nglyph 0\n#\nglyph :\n#\n"),
		open:   func() (tcell.Screen, error) { return scr, nil },
		stderr: &stderr,
	})

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "font lacks clock glyphs")
	assert.Contains(t, stderr.String(), "123456789")
}
