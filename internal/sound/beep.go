package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

var clipFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

type note struct {
	freq float64
	dur  time.Duration
}

// melodies are played when no WAV file exists for a sound.
var melodies = map[string][]note{
	"pew":     {{1320, 30 * time.Millisecond}, {990, 40 * time.Millisecond}},
	"explode": {{140, 80 * time.Millisecond}, {100, 90 * time.Millisecond}, {70, 120 * time.Millisecond}},
	"win":     {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1047, 240 * time.Millisecond}},
	"lose":    {{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {262, 400 * time.Millisecond}},
	"move":    {{82, 60 * time.Millisecond}},
	"startup": {{262, 100 * time.Millisecond}, {330, 100 * time.Millisecond}, {392, 160 * time.Millisecond}},
}

// Beep plays effects through the system speaker.
type Beep struct {
	clips   map[string]*beep.Buffer
	pending sync.WaitGroup
	logger  *log.Logger
}

// NewBeep opens the speaker and prepares every effect: dir/<name>.wav when
// it exists, a synthesized melody otherwise.
func NewBeep(dir string, logger *log.Logger) (*Beep, error) {
	if err := initSpeaker(); err != nil {
		return nil, err
	}

	b := &Beep{
		clips:  make(map[string]*beep.Buffer, len(melodies)),
		logger: logger,
	}
	for name, tune := range melodies {
		path := filepath.Join(dir, name+".wav")
		clip, err := loadWAV(path)
		if err != nil {
			logger.Debug("using synthesized sound", "name", name, "reason", err)
			if clip, err = synthesize(tune); err != nil {
				speaker.Close()
				return nil, fmt.Errorf("sound: cannot synthesize %s: %w", name, err)
			}
		}
		b.clips[name] = clip
	}
	return b, nil
}

// initSpeaker opens the audio device. Drivers may panic when no device is
// present; that is reported as an error.
func initSpeaker() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sound: speaker panicked: %v", r)
		}
	}()
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("sound: cannot initialize speaker: %w", err)
	}
	return nil
}

// Play starts the named effect.
func (b *Beep) Play(name string) {
	clip, ok := b.clips[name]
	if !ok {
		b.logger.Debug("unknown sound", "name", name)
		return
	}
	b.pending.Add(1)
	speaker.Play(beep.Seq(clip.Streamer(0, clip.Len()), beep.Callback(b.pending.Done)))
}

// Wait blocks until all started effects have finished playing.
func (b *Beep) Wait() {
	b.pending.Wait()
}

// Close shuts the speaker down.
func (b *Beep) Close() {
	speaker.Close()
}

// loadWAV decodes a WAV file into memory at the speaker's sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(clipFormat)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("sound: %s is empty", path)
	}
	return buf, nil
}

// synthesize renders a melody of sine notes into memory.
func synthesize(tune []note) (*beep.Buffer, error) {
	parts := make([]beep.Streamer, 0, len(tune))
	for _, n := range tune {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}

	buf := beep.NewBuffer(clipFormat)
	buf.Append(&effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2})
	return buf, nil
}
