package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap translates key names into game actions. Several keys may trigger
// the same action.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
	Pause key.Binding
}

// NewKeyMap builds the bindings from configuration.
func NewKeyMap(cfg config.InputConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(cfg.Left...),
			key.WithHelp(helpKeys(cfg.Left), "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys(cfg.Right...),
			key.WithHelp(helpKeys(cfg.Right), "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(cfg.Fire...),
			key.WithHelp(helpKeys(cfg.Fire), "fire / start"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(cfg.Pause...),
			key.WithHelp(helpKeys(cfg.Pause), "pause"),
		),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultInvadersConfig().Input)
}

// Map returns the action bound to k, or core.ActionNone. A key bound to
// several actions resolves in the order Quit, Pause, Fire, Left, Right.
func (km KeyMap) Map(k core.Key) core.Action {
	switch {
	case key.Matches(k, km.Quit):
		return core.ActionQuit
	case key.Matches(k, km.Pause):
		return core.ActionPause
	case key.Matches(k, km.Fire):
		return core.ActionFire
	case key.Matches(k, km.Left):
		return core.ActionLeft
	case key.Matches(k, km.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Fire, km.Pause, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Fire},
		{km.Pause, km.Quit},
	}
}

// HelpText renders the bindings as a single line.
func (km KeyMap) HelpText() string {
	return help.New().ShortHelpView(km.ShortHelp())
}

// helpKeys formats key names for display.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
