package invaders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Input is a source of raw key events.
type Input interface {
	// Poll returns the next pending key without waiting. ok is false when
	// nothing is pending.
	Poll() (k core.Key, ok bool, err error)
	// Wait blocks until a key arrives or ctx is done.
	Wait(ctx context.Context) (core.Key, error)
}

// Mapper translates raw keys into actions. Unknown keys map to
// core.ActionNone.
type Mapper interface {
	Map(k core.Key) core.Action
}

// FrameSink takes ownership of each submitted frame.
type FrameSink interface {
	Submit(f *core.Frame) error
}

// Loop drives a Game: it polls input, advances the simulation and hands one
// frame per tick to the sink.
type Loop struct {
	game   *Game
	input  Input
	mapper Mapper
	sink   FrameSink
	timing config.TimingConfig

	// Replaceable in tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLoop wires a game to its input, key mapper and frame sink.
func NewLoop(game *Game, input Input, mapper Mapper, sink FrameSink, timing config.TimingConfig) *Loop {
	return &Loop{
		game:   game,
		input:  input,
		mapper: mapper,
		sink:   sink,
		timing: timing,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Run ticks until the player quits or ctx is cancelled. Input and frame
// sink failures end the loop with an error.
func (l *Loop) Run(ctx context.Context) error {
	last := l.now()
	for {
		if ctx.Err() != nil {
			return nil
		}

		now := l.now()
		elapsed := now.Sub(last)
		last = now

		exit, err := l.drainInput()
		if err != nil || exit {
			return err
		}

		if l.game.Step(elapsed) {
			if err := l.submit(); err != nil {
				return err
			}
			exit, err := l.awaitRetry(ctx)
			if err != nil || exit {
				return err
			}
			last = l.now()
			continue
		}

		if err := l.submit(); err != nil {
			return err
		}

		if l.game.State() == StatePlaying {
			l.sleep(l.timing.ActiveInterval())
		} else {
			l.sleep(l.timing.IdleInterval())
		}
	}
}

func (l *Loop) drainInput() (bool, error) {
	for {
		k, ok, err := l.input.Poll()
		if err != nil {
			return true, fmt.Errorf("invaders: cannot read input: %w", err)
		}
		if !ok {
			return false, nil
		}
		if l.game.Apply(l.mapper.Map(k)) {
			return true, nil
		}
	}
}

// awaitRetry blocks on input after a round has ended. Only Fire (play
// again) and Quit are accepted; nothing is redrawn while waiting.
func (l *Loop) awaitRetry(ctx context.Context) (bool, error) {
	for {
		k, err := l.input.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true, nil
			}
			return true, fmt.Errorf("invaders: cannot read input: %w", err)
		}
		switch a := l.mapper.Map(k); a {
		case core.ActionFire, core.ActionQuit:
			return l.game.Apply(a), nil
		}
	}
}

func (l *Loop) submit() error {
	if err := l.sink.Submit(l.game.Frame()); err != nil {
		return fmt.Errorf("invaders: cannot submit frame: %w", err)
	}
	return nil
}
