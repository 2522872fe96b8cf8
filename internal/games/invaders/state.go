package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// State is the game state machine.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
	StateExit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Ended reports whether a round has finished.
func (s State) Ended() bool {
	return s == StateWon || s == StateLost
}

// Next returns the state an action leads to. Actions that do not cause a
// transition return s unchanged. Won and Lost are entered from gameplay
// events, never from an action.
//
// startOnMove lets Left and Right start a game from the menu.
func Next(s State, a core.Action, startOnMove bool) State {
	if a == core.ActionQuit {
		return StateExit
	}

	switch s {
	case StateMenu:
		switch a {
		case core.ActionFire:
			return StatePlaying
		case core.ActionLeft, core.ActionRight:
			if startOnMove {
				return StatePlaying
			}
		}
	case StatePlaying:
		if a == core.ActionPause {
			return StatePaused
		}
	case StatePaused:
		if a == core.ActionPause {
			return StatePlaying
		}
	case StateWon, StateLost:
		if a == core.ActionFire {
			return StatePlaying
		}
	}
	return s
}
