// Package tui connects the game to a real terminal: raw mode and the
// alternate screen, key decoding, styled printing and the Run entry point.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/render"
	"github.com/vovakirdan/tui-invaders/internal/sound"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config config.InvadersConfig
	Mute   bool
	Logger *log.Logger

	In   *os.File  // Defaults to os.Stdin
	Out  io.Writer // Defaults to os.Stdout
	Warn io.Writer // Warnings printed before the screen is taken over; defaults to os.Stderr
}

// Run plays one session until the player quits or ctx is cancelled.
//
// Shutdown order: the loop stops, input stops, every submitted frame is
// painted, pending sounds finish, scores are saved, and the terminal is
// restored last on every path.
func Run(ctx context.Context, opts Options) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	in, out, warn := opts.In, opts.Out, opts.Warn
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if warn == nil {
		warn = os.Stderr
	}
	cfg := opts.Config

	sink, serr := sound.New(cfg.Sound, opts.Mute, logger)
	if serr != nil {
		fmt.Fprintln(warn, "Warning: audio initialization failed; continuing without sound. Pass --mute to silence this message.")
	}
	defer sink.Close()

	scores := storage.NewHighScoreFile(cfg.Paths.HighScore)
	var history *storage.Store
	if cfg.Paths.History != "" {
		store, herr := storage.Open(cfg.Paths.History)
		if herr != nil {
			fmt.Fprintf(warn, "Warning: could not open run history: %v\n", herr)
		} else {
			history = store
			defer history.Close()
			if best, berr := history.HighScore(); berr == nil {
				logger.Debug("run history opened", "path", cfg.Paths.History, "best", best)
			}
		}
	}

	terminal, err := AcquireTerminal(in, out, logger)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := terminal.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	keys := NewKeySource(in)
	pipeline := render.NewPipeline(out, logger)
	defer func() {
		if r := recover(); r != nil {
			keys.Stop()
			pipeline.Close()
			err = fmt.Errorf("tui: game panicked: %v", r)
		}
	}()

	game := invaders.NewGame(cfg, scores.Load(), sink, logger)
	loop := invaders.NewLoop(game, keys, NewKeyMap(cfg.Input), pipeline, cfg.Timing)

	logger.Info("session started", "high", game.Score().High)
	loopErr := loop.Run(ctx)

	keys.Stop()
	closeErr := pipeline.Close()
	sink.Wait()

	var recorder runRecorder
	if history != nil {
		recorder = history
	}
	saveResults(game, scores, recorder, logger)
	logger.Info("session finished", "frames", pipeline.Painted(), "rounds", len(game.Rounds()))

	if loopErr != nil {
		return loopErr
	}
	return closeErr
}

type highScoreSaver interface {
	Save(score uint32) error
}

type runRecorder interface {
	SaveRun(score uint32, outcome string) (int64, error)
}

// saveResults writes the high score when this session holds it and records
// every finished round. Failures are logged and otherwise ignored.
func saveResults(game *invaders.Game, scores highScoreSaver, history runRecorder, logger *log.Logger) {
	board := game.Score()
	if board.ShouldPersist() {
		if err := scores.Save(board.High); err != nil {
			logger.Debug("high score not saved", "err", err)
		}
	}

	if history == nil {
		return
	}
	for _, r := range game.Rounds() {
		if _, err := history.SaveRun(r.Score, string(r.Outcome)); err != nil {
			logger.Debug("run not recorded", "err", err)
			return
		}
	}
}
