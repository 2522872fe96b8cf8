package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultMaxShots is how many shots may be in flight at once.
const DefaultMaxShots = 2

// Player is the cannon on the bottom row and owner of its shots.
type Player struct {
	X, Y     int
	maxShots int
	shots    []*Shot
}

// NewPlayer places a player in the middle of the bottom row.
// maxShots <= 0 uses DefaultMaxShots.
func NewPlayer(maxShots int) *Player {
	if maxShots <= 0 {
		maxShots = DefaultMaxShots
	}
	return &Player{
		X:        core.FrameWidth / 2,
		Y:        core.FrameHeight - 1,
		maxShots: maxShots,
	}
}

// MoveLeft moves one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	p.X = core.Clamp(p.X-1, 0, core.FrameWidth-1)
}

// MoveRight moves one column right, stopping at the edge.
func (p *Player) MoveRight() {
	p.X = core.Clamp(p.X+1, 0, core.FrameWidth-1)
}

// Shoot fires a shot from just above the cannon. It returns false when the
// maximum number of shots is already in flight.
func (p *Player) Shoot() bool {
	if len(p.shots) >= p.maxShots {
		return false
	}
	p.shots = append(p.shots, newShot(p.X, p.Y-1))
	return true
}

// Shots returns the live shots. The slice must not be retained.
func (p *Player) Shots() []*Shot {
	return p.shots
}

// Update advances every shot and drops the dead ones.
func (p *Player) Update(elapsed time.Duration) bool {
	changed := false
	live := p.shots[:0]
	for _, s := range p.shots {
		if s.Update(elapsed) {
			changed = true
		}
		if s.Dead() {
			changed = true
			continue
		}
		live = append(live, s)
	}
	for i := len(live); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = live
	return changed
}

// Draw paints the shots, then the cannon.
func (p *Player) Draw(f *core.Frame) {
	for _, s := range p.shots {
		s.Draw(f)
	}
	f.Set(p.X, p.Y, "A")
}

// Dead is always false; the player is never removed.
func (p *Player) Dead() bool {
	return false
}
