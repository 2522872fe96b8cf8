package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Invader is one member of the formation.
type Invader struct {
	X, Y int
}

// Army is the invader formation. It marches sideways on a repeating timer,
// and each time it hits a wall it reverses, drops one row and speeds up.
type Army struct {
	invaders  []Invader
	direction int
	descents  int
	pace      config.FormationConfig
	move      core.Timer
}

// NewArmy builds the starting formation: an invader on every even cell of
// the upper band, away from the side walls.
func NewArmy(pace config.FormationConfig) *Army {
	a := &Army{
		direction: 1,
		pace:      pace,
		move:      core.NewTimer(pace.Initial()),
	}
	for x := 0; x < core.FrameWidth; x++ {
		for y := 0; y < core.FrameHeight; y++ {
			if x > 1 && x < core.FrameWidth-2 && y > 0 && y < 9 && x%2 == 0 && y%2 == 0 {
				a.invaders = append(a.invaders, Invader{X: x, Y: y})
			}
		}
	}
	return a
}

// Invaders returns the live invaders. The slice must not be retained.
func (a *Army) Invaders() []Invader {
	return a.invaders
}

// Len returns the number of live invaders.
func (a *Army) Len() int {
	return len(a.invaders)
}

// Descents returns how many times the formation has dropped a row.
func (a *Army) Descents() int {
	return a.descents
}

// Interval returns the current move interval.
func (a *Army) Interval() time.Duration {
	return a.move.Period()
}

// Update advances the move timer and performs one step per completed
// interval. It reports whether the formation moved.
func (a *Army) Update(elapsed time.Duration) bool {
	a.move.Tick(elapsed)
	laps := a.move.Laps()
	for i := 0; i < laps; i++ {
		a.step()
	}
	return laps > 0
}

func (a *Army) step() {
	if len(a.invaders) == 0 {
		return
	}

	descend := false
	if a.direction < 0 {
		minX := a.invaders[0].X
		for _, inv := range a.invaders {
			minX = min(minX, inv.X)
		}
		if minX == 0 {
			a.direction = 1
			descend = true
		}
	} else {
		maxX := a.invaders[0].X
		for _, inv := range a.invaders {
			maxX = max(maxX, inv.X)
		}
		if maxX == core.FrameWidth-1 {
			a.direction = -1
			descend = true
		}
	}

	if descend {
		a.descents++
		a.move.SetPeriod(a.pace.Interval(a.descents))
		for i := range a.invaders {
			a.invaders[i].Y++
		}
		return
	}
	for i := range a.invaders {
		a.invaders[i].X += a.direction
	}
}

// KillAt removes the invader at (x, y) and reports whether one was there.
func (a *Army) KillAt(x, y int) bool {
	for i, inv := range a.invaders {
		if inv.X == x && inv.Y == y {
			a.invaders = append(a.invaders[:i], a.invaders[i+1:]...)
			return true
		}
	}
	return false
}

// AllKilled reports whether the formation is empty.
func (a *Army) AllKilled() bool {
	return len(a.invaders) == 0
}

// ReachedBottom reports whether any invader got down to the player's row.
func (a *Army) ReachedBottom() bool {
	for _, inv := range a.invaders {
		if inv.Y >= core.FrameHeight-1 {
			return true
		}
	}
	return false
}

// Draw paints every invader. The glyph changes halfway through each move
// interval.
func (a *Army) Draw(f *core.Frame) {
	glyph := core.Cell("x")
	if a.move.Progress() >= 0.5 {
		glyph = "+"
	}
	for _, inv := range a.invaders {
		f.Set(inv.X, inv.Y, glyph)
	}
}

// Dead reports whether every invader has been destroyed.
func (a *Army) Dead() bool {
	return a.AllKilled()
}

// ChangeSound names the sound played when the formation moves.
func (a *Army) ChangeSound() string {
	return SoundMove
}
