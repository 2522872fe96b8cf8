package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      core.Key
		expected core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{" ", core.ActionFire},
		{"enter", core.ActionFire},
		{"k", core.ActionFire},
		{"w", core.ActionFire},
		{"esc", core.ActionQuit},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"p", core.ActionPause},
		{"x", core.ActionNone},
		{"up", core.ActionNone},
		{"", core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.Map(tc.key); got != tc.expected {
			t.Errorf("Map(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Input
	cfg.Fire = []string{"f"}
	km := NewKeyMap(cfg)

	if got := km.Map("f"); got != core.ActionFire {
		t.Errorf("Map(f) = %v, expected Fire", got)
	}
	if got := km.Map(" "); got != core.ActionNone {
		t.Errorf("Map(space) = %v, expected None once rebound", got)
	}
}

func TestKeyMapPriority(t *testing.T) {
	cfg := config.InputConfig{
		Left:  []string{"x"},
		Right: []string{"x", "y"},
		Fire:  []string{"y", "z"},
		Quit:  []string{"z"},
		Pause: []string{"x"},
	}
	km := NewKeyMap(cfg)

	tests := []struct {
		key      core.Key
		expected core.Action
	}{
		{"x", core.ActionPause}, // Pause beats Left and Right
		{"y", core.ActionFire},  // Fire beats Right
		{"z", core.ActionQuit},  // Quit beats Fire
	}
	for _, tc := range tests {
		if got := km.Map(tc.key); got != tc.expected {
			t.Errorf("Map(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestKeyMapHelpText(t *testing.T) {
	text := DefaultKeyMap().HelpText()
	for _, want := range []string{"space", "move left", "quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("HelpText() = %q, missing %q", text, want)
		}
	}
}
