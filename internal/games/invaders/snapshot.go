package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot captures the game state for tests and debug logging.
type Snapshot struct {
	Tick     uint64
	State    State
	Score    uint32
	High     uint32
	PlayerX  int
	Shots    int
	Invaders int
	Descents int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Score:    g.score.Score,
		High:     g.score.High,
		PlayerX:  g.player.X,
		Shots:    len(g.player.Shots()),
		Invaders: g.army.Len(),
		Descents: g.army.Descents(),
	}
}

// SampleFrame draws a representative playfield at the given frame counter
// without running a game: a fresh formation, the player and one shot in
// flight. It is used to preview the palette and layout.
func SampleFrame(cfg config.InvadersConfig, tick uint64) *core.Frame {
	cfg.Normalize()

	f := core.NewFrame()
	core.FillStarryBackground(f, tick)

	army := NewArmy(cfg.Formation)
	player := NewPlayer(cfg.Rules.MaxShots)
	player.Shoot()

	army.Draw(f)
	player.Draw(f)
	DrawHUD(f, ScoreBoard{Score: 1200, High: 3400}, army.Len())
	return f
}
