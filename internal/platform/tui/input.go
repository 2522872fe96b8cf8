package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInputClosed is returned once the key source has stopped.
var ErrInputClosed = errors.New("tui: input closed")

const keyBuffer = 256

// KeySource decodes terminal input into key names. Bubble Tea does the
// decoding in its own goroutine with its renderer disabled, since the frame
// renderer owns the screen.
type KeySource struct {
	program  *tea.Program
	keys     chan core.Key
	stopping chan struct{}
	done     chan struct{}
	err      error // Set before done is closed
	stop     sync.Once
}

// keyModel forwards key presses and renders nothing. When the buffer is
// full it waits for the game to catch up, so no key is lost, until the
// source is stopped.
type keyModel struct {
	keys     chan<- core.Key
	stopping <-chan struct{}
}

func (m keyModel) Init() tea.Cmd { return nil }

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		select {
		case m.keys <- core.Key(k.String()):
		case <-m.stopping:
		}
	}
	return m, nil
}

func (m keyModel) View() string { return "" }

// NewKeySource starts reading keys from in.
func NewKeySource(in io.Reader) *KeySource {
	s := &KeySource{
		keys:     make(chan core.Key, keyBuffer),
		stopping: make(chan struct{}),
		done:     make(chan struct{}),
	}
	s.program = tea.NewProgram(
		keyModel{keys: s.keys, stopping: s.stopping},
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	go func() {
		defer close(s.done)
		if _, err := s.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			s.err = fmt.Errorf("tui: cannot read input: %w", err)
		}
	}()
	return s
}

// Poll returns a pending key without blocking.
func (s *KeySource) Poll() (core.Key, bool, error) {
	select {
	case k := <-s.keys:
		return k, true, nil
	default:
	}
	select {
	case <-s.done:
		return "", false, s.closedErr()
	default:
		return "", false, nil
	}
}

// Wait blocks until a key arrives, the source stops or ctx is done.
func (s *KeySource) Wait(ctx context.Context) (core.Key, error) {
	select {
	case k := <-s.keys:
		return k, nil
	case <-s.done:
		select {
		case k := <-s.keys:
			return k, nil
		default:
		}
		return "", s.closedErr()
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Stop ends the input program and waits for it to restore the terminal.
func (s *KeySource) Stop() {
	s.stop.Do(func() {
		close(s.stopping)
		s.program.Quit()
	})
	<-s.done
}

func (s *KeySource) closedErr() error {
	if s.err != nil {
		return s.err
	}
	return ErrInputClosed
}
