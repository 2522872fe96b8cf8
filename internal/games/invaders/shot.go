package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	// ShotTravelInterval is how long a shot takes to climb one row.
	ShotTravelInterval = 50 * time.Millisecond
	// ShotExplodeDuration is how long an exploding shot stays on screen.
	ShotExplodeDuration = 250 * time.Millisecond
)

// ShotPhase is the sub-state of a Shot.
type ShotPhase int

const (
	ShotTraveling ShotPhase = iota
	ShotExploding
)

// String returns the phase name.
func (p ShotPhase) String() string {
	switch p {
	case ShotTraveling:
		return "Traveling"
	case ShotExploding:
		return "Exploding"
	default:
		return "Unknown"
	}
}

// Shot is a projectile fired by the player. It climbs one row per travel
// interval and, once exploded, lingers for a fixed duration.
//
// Each phase owns its own timer: the travel timer repeats, the explosion
// timer is installed once and never reset.
type Shot struct {
	X, Y  int
	phase ShotPhase
	flip  bool

	travel  core.Timer
	explode core.Timer
}

func newShot(x, y int) *Shot {
	return &Shot{
		X:      x,
		Y:      y,
		phase:  ShotTraveling,
		travel: core.NewTimer(ShotTravelInterval),
	}
}

// Phase returns the current sub-state.
func (s *Shot) Phase() ShotPhase {
	return s.phase
}

// Exploding reports whether the shot has hit something.
func (s *Shot) Exploding() bool {
	return s.phase == ShotExploding
}

// Flipped returns the animation flag, toggled on every travel step.
func (s *Shot) Flipped() bool {
	return s.flip
}

// Update advances the shot. While traveling, every completed interval flips
// the animation and moves the shot one row up; leftover time carries over.
func (s *Shot) Update(elapsed time.Duration) bool {
	if s.phase == ShotExploding {
		wasDead := s.Dead()
		s.explode.Tick(elapsed)
		return s.Dead() != wasDead
	}

	s.travel.Tick(elapsed)
	laps := s.travel.Laps()
	for i := 0; i < laps; i++ {
		s.flip = !s.flip
		s.Y = core.Clamp(s.Y-1, 0, core.FrameHeight-1)
	}
	return laps > 0
}

// Explode switches the shot to its exploding phase. Calling it again has no
// effect.
func (s *Shot) Explode() {
	if s.phase == ShotExploding {
		return
	}
	s.phase = ShotExploding
	s.explode = core.NewTimer(ShotExplodeDuration)
}

// Dead reports whether the explosion has finished or the shot reached the
// top row.
func (s *Shot) Dead() bool {
	return (s.phase == ShotExploding && s.explode.Finished()) || s.Y == 0
}

// Draw paints the shot glyph.
func (s *Shot) Draw(f *core.Frame) {
	switch {
	case s.phase == ShotExploding:
		f.Set(s.X, s.Y, "*")
	case s.flip:
		f.Set(s.X, s.Y, "!")
	default:
		f.Set(s.X, s.Y, "|")
	}
}
