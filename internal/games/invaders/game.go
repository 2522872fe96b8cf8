// Package invaders implements the invaders game: its entities, the state
// machine and the per-tick loop that feeds frames to the renderer.
package invaders

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sound names understood by the sound sink.
const (
	SoundPew     = "pew"
	SoundExplode = "explode"
	SoundWin     = "win"
	SoundLose    = "lose"
	SoundMove    = "move"
	SoundStartup = "startup"
)

// Outcome describes how a round finished.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit"
)

// Round is the result of one finished round.
type Round struct {
	Score   uint32
	Outcome Outcome
}

// SoundPlayer receives sound events. Playback is fire and forget.
type SoundPlayer interface {
	Play(name string)
}

type silence struct{}

func (silence) Play(string) {}

// Game holds the whole game state. It performs no I/O except handing
// sound names to its SoundPlayer; the Loop drives it.
type Game struct {
	cfg    config.InvadersConfig
	sound  SoundPlayer
	logger *log.Logger

	state    State
	score    ScoreBoard
	player   *Player
	army     *Army
	entities []core.Entity
	tick     uint64
	rounds   []Round
}

// NewGame creates a game in the menu state. high is the stored high score.
// A nil sound or logger is replaced by a no-op.
func NewGame(cfg config.InvadersConfig, high uint32, sound SoundPlayer, logger *log.Logger) *Game {
	if sound == nil {
		sound = silence{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Normalize()

	g := &Game{
		cfg:    cfg,
		sound:  sound,
		logger: logger,
		state:  StateMenu,
		score:  NewScoreBoard(high),
	}
	g.reset()
	g.sound.Play(SoundStartup)
	return g
}

// reset starts a new round: fresh entities and a zero score.
func (g *Game) reset() {
	g.score.Reset()
	g.player = NewPlayer(g.cfg.Rules.MaxShots)
	g.army = NewArmy(g.cfg.Formation)
	g.entities = []core.Entity{g.player, g.army}
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Score returns the scoreboard.
func (g *Game) Score() ScoreBoard { return g.score }

// Player returns the player entity.
func (g *Game) Player() *Player { return g.player }

// Army returns the invader formation.
func (g *Game) Army() *Army { return g.army }

// Tick returns the frame counter.
func (g *Game) Tick() uint64 { return g.tick }

// Rounds returns the rounds finished so far, oldest first.
func (g *Game) Rounds() []Round { return g.rounds }

// Apply handles one action and reports whether the game should exit.
func (g *Game) Apply(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}

	prev := g.state
	next := Next(prev, a, g.cfg.Rules.StartOnMove)

	if next == StateExit {
		if !prev.Ended() {
			g.sound.Play(SoundLose)
		}
		if prev == StatePlaying || prev == StatePaused {
			g.finishRound(OutcomeQuit)
		}
		g.state = StateExit
		g.logger.Info("quit", "from", prev, "score", g.score.Score)
		return true
	}

	if next != prev {
		if next == StatePlaying && prev != StatePaused {
			g.reset()
		}
		g.state = next
		g.logger.Debug("state changed", "from", prev, "to", next, "action", a, "snapshot", g.Snapshot())
		return false
	}

	if g.state != StatePlaying {
		return false
	}
	switch a {
	case core.ActionLeft:
		g.player.MoveLeft()
	case core.ActionRight:
		g.player.MoveRight()
	case core.ActionFire:
		if g.player.Shoot() {
			g.sound.Play(SoundPew)
		}
	}
	return false
}

// maxSubstep bounds a single simulation pass. A shot climbs at most one row
// per pass, so no invader is skipped between hit checks.
const maxSubstep = ShotTravelInterval

// Step advances the simulation by elapsed time. It does nothing outside
// gameplay. It reports whether the round just ended in a win or a loss.
// Long steps run as several passes of at most maxSubstep each.
func (g *Game) Step(elapsed time.Duration) bool {
	if g.state != StatePlaying {
		return false
	}
	for {
		d := min(elapsed, maxSubstep)
		elapsed -= d
		if g.advance(d) {
			return true
		}
		if elapsed <= 0 {
			return false
		}
	}
}

// advance runs one pass: update and cull entities, detect hits, then check
// for the end of the round.
func (g *Game) advance(elapsed time.Duration) bool {
	live := g.entities[:0]
	for _, e := range g.entities {
		if e.Update(elapsed) {
			if au, ok := e.(core.Audible); ok {
				g.sound.Play(au.ChangeSound())
			}
		}
		if !e.Dead() {
			live = append(live, e)
		}
	}
	g.entities = live

	if hits := DetectHits(g.player.Shots(), g.army); hits > 0 {
		g.sound.Play(SoundExplode)
		g.score.Add(uint32(hits) * uint32(g.cfg.Rules.PointsPerHit))
	}

	switch {
	case g.army.AllKilled():
		g.sound.Play(SoundWin)
		g.state = StateWon
		g.finishRound(OutcomeWon)
	case g.army.ReachedBottom():
		g.sound.Play(SoundLose)
		g.state = StateLost
		g.finishRound(OutcomeLost)
	default:
		return false
	}
	g.logger.Info("round finished", "outcome", g.state, "score", g.score.Score, "high", g.score.High)
	g.logger.Debug("final state", "snapshot", g.Snapshot())
	return true
}

func (g *Game) finishRound(o Outcome) {
	g.rounds = append(g.rounds, Round{Score: g.score.Score, Outcome: o})
}

// Frame builds a fresh frame for the current state and advances the frame
// counter.
func (g *Game) Frame() *core.Frame {
	f := core.NewFrame()
	core.FillStarryBackground(f, g.tick)
	g.tick++

	switch g.state {
	case StateMenu:
		drawMenu(f)
	case StatePlaying:
		g.drawPlayfield(f)
	case StatePaused:
		g.drawPlayfield(f)
		f.WriteText(12, 9, "[ PAUSED ]")
		f.WriteText(11, 10, "Press P to resume")
	case StateWon, StateLost:
		msg := "YOU WIN!"
		if g.state == StateLost {
			msg = "GAME OVER"
		}
		f.WriteText(10, 8, msg)
		f.WriteText(6, 10, "Press SPACE to retry, ESC to exit")
	}
	return f
}

func drawMenu(f *core.Frame) {
	f.WriteText(8, 8, "INVADERS")
	f.WriteText(4, 10, "+----------------------+")
	f.WriteText(4, 11, "|  Press SPACE/ENTER   |")
	f.WriteText(4, 12, "|        to start      |")
	f.WriteText(4, 13, "|   ESC or Q to exit   |")
	f.WriteText(4, 14, "+----------------------+")
}

func (g *Game) drawPlayfield(f *core.Frame) {
	for _, e := range g.entities {
		e.Draw(f)
	}
	DrawHUD(f, g.score, g.army.Len())
}

// DrawHUD writes the score line and the invader counter on the top row.
func DrawHUD(f *core.Frame, score ScoreBoard, invaders int) {
	f.WriteText(1, 0, fmt.Sprintf("Score: %d  High: %d", score.Score, score.High))
	f.WriteText(26, 0, fmt.Sprintf("Invaders: %02d", invaders))
}
