package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("tui: input is not a terminal")

// Terminal is the acquired terminal: raw input, alternate screen and a
// hidden cursor. Release undoes all three.
type Terminal struct {
	fd      int
	out     *termenv.Output
	sink    *errWriter
	state   *term.State
	release sync.Once
}

// errWriter keeps the first write error, since termenv's screen helpers
// discard it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// AcquireTerminal switches in to raw mode and out to the alternate screen.
func AcquireTerminal(in *os.File, out io.Writer, logger *log.Logger) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	if w, h, err := term.GetSize(fd); err == nil && (w < core.FrameWidth || h < core.FrameHeight) {
		logger.Warn("terminal is smaller than the playfield",
			"width", w, "height", h, "need_width", core.FrameWidth, "need_height", core.FrameHeight)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot enable raw mode: %w", err)
	}
	sink := &errWriter{w: out}
	output := termenv.NewOutput(sink, termenv.WithProfile(termenv.ANSI256))
	output.AltScreen()
	output.HideCursor()
	if sink.err != nil {
		term.Restore(fd, state)
		return nil, fmt.Errorf("tui: cannot enter alternate screen: %w", sink.err)
	}

	return &Terminal{fd: fd, out: output, sink: sink, state: state}, nil
}

// Release restores the terminal. It is safe to call more than once.
func (t *Terminal) Release() error {
	var err error
	t.release.Do(func() {
		t.sink.err = nil
		t.out.ShowCursor()
		t.out.ExitAltScreen()
		werr := t.sink.err
		rerr := term.Restore(t.fd, t.state)
		if werr != nil {
			err = fmt.Errorf("tui: cannot leave alternate screen: %w", werr)
		} else if rerr != nil {
			err = fmt.Errorf("tui: cannot restore terminal: %w", rerr)
		}
	})
	return err
}
