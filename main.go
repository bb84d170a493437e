package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii-clock/asset"
	"github.com/lixenwraith/ascii-clock/audio"
	"github.com/lixenwraith/ascii-clock/engine"
	"github.com/lixenwraith/ascii-clock/render"
	"github.com/lixenwraith/ascii-clock/terminal"
)

const (
	exitOK       = 0
	exitTerminal = 1
	exitFont     = 2
)

// Chimer is the audio side of the clock, nil when no device is available
type Chimer interface {
	engine.Chimer
	Cleanup()
}

// deps are the process boundaries main wires to real resources
type deps struct {
	sheet  []byte
	open   func() (tcell.Screen, error)
	chimer func() (Chimer, error)
	stderr io.Writer
}

func main() {
	os.Exit(run(deps{
		sheet:  asset.BlockFont,
		open:   tcell.NewScreen,
		chimer: openSpeaker,
		stderr: os.Stderr,
	}))
}

func openSpeaker() (Chimer, error) {
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		return nil, err
	}
	return sm, nil
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(terminal.NewCRLFWriter(w), log.Options{
		Prefix:          "clock",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	})

	// Prefix in the clock face accent; colors only apply when stderr is a tty
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF96"))
	logger.SetStyles(styles)
	return logger
}

func run(d deps) int {
	logger := newLogger(d.stderr)

	font, err := render.LoadFont(d.sheet)
	if err != nil {
		logger.Error("load font", "err", err)
		return exitFont
	}
	if missing := missingClockGlyphs(font); missing != "" {
		// Frames containing these runes are skipped
		logger.Warn("font lacks clock glyphs", "missing", missing)
	}

	var chimer Chimer
	if d.chimer != nil {
		c, err := d.chimer()
		if err != nil {
			// Non-fatal, the clock runs silent
			logger.Warn("audio unavailable", "err", err)
		} else {
			chimer = c
			defer chimer.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.With(d.open, func(s *terminal.Session) error {
		loop := engine.NewLoop(s, font, engine.NewTimeProvider(), logger)
		if chimer != nil {
			loop.SetChimer(chimer)
		}
		return loop.Run(ctx)
	})
	if err != nil {
		logger.Error("terminal", "err", err)
		return exitTerminal
	}
	return exitOK
}

// missingClockGlyphs lists the runes of an HH:MM:SS face the font cannot draw
func missingClockGlyphs(font *render.Font) string {
	var missing []rune
	for _, r := range "0123456789:" {
		if !font.Has(r) {
			missing = append(missing, r)
		}
	}
	return string(missing)
}
