package core

// Action represents a semantic game action, abstracted from physical key presses.
// Several keys may map to the same action; see the platform key map.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - move left / start game
	ActionRight        // Right arrow, D, L - move right / start game
	ActionFire         // Space, Enter, K, W - shoot / start / retry
	ActionQuit         // Esc, Q, Ctrl+C - exit
	ActionPause        // P - pause/unpause while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Key is a raw input event, spelled the way the terminal layer names keys
// ("left", "a", " ", "enter", "esc", "ctrl+c").
type Key string

// String returns the key name.
func (k Key) String() string {
	return string(k)
}
