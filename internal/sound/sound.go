// Package sound plays the game's sound effects. Audio is optional: when the
// device cannot be opened the game runs with a silent sink.
package sound

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Sink plays named sound effects.
type Sink interface {
	// Play starts the named effect and returns immediately. Unknown names
	// are ignored.
	Play(name string)
	// Wait blocks until every started effect has finished.
	Wait()
	// Close releases the audio device.
	Close()
}

// Silent is a Sink that plays nothing.
type Silent struct{}

func (Silent) Play(string) {}
func (Silent) Wait()       {}
func (Silent) Close()      {}

// New returns the sink for the given settings. When sound is muted or
// disabled it returns Silent. When the audio device fails it returns
// Silent together with the error, which callers report as a warning.
func New(cfg config.SoundConfig, mute bool, logger *log.Logger) (Sink, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if mute || !cfg.Enabled {
		logger.Debug("sound disabled", "mute", mute)
		return Silent{}, nil
	}

	b, err := NewBeep(cfg.Dir, logger)
	if err != nil {
		logger.Warn("audio initialization failed", "err", err)
		return Silent{}, err
	}
	return b, nil
}
