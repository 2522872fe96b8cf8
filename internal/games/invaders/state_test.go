package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var allActions = []core.Action{
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionFire,
	core.ActionQuit,
	core.ActionPause,
}

func TestNextFromMenu(t *testing.T) {
	for _, a := range allActions {
		expected := StateMenu
		switch a {
		case core.ActionFire, core.ActionLeft, core.ActionRight:
			expected = StatePlaying
		case core.ActionQuit:
			expected = StateExit
		}
		if got := Next(StateMenu, a, true); got != expected {
			t.Errorf("Next(Menu, %v) = %v, expected %v", a, got, expected)
		}
	}
}

func TestNextMenuWithoutStartOnMove(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if got := Next(StateMenu, a, false); got != StateMenu {
			t.Errorf("Next(Menu, %v) = %v, expected Menu", a, got)
		}
	}
	if got := Next(StateMenu, core.ActionFire, false); got != StatePlaying {
		t.Errorf("Next(Menu, Fire) = %v, expected Playing", got)
	}
}

func TestNextPauseOnlyTogglesGameplay(t *testing.T) {
	tests := []struct {
		from, expected State
	}{
		{StateMenu, StateMenu},
		{StatePlaying, StatePaused},
		{StatePaused, StatePlaying},
		{StateWon, StateWon},
		{StateLost, StateLost},
	}
	for _, tc := range tests {
		if got := Next(tc.from, core.ActionPause, true); got != tc.expected {
			t.Errorf("Next(%v, Pause) = %v, expected %v", tc.from, got, tc.expected)
		}
	}
}

func TestNextPausedIgnoresGameplayActions(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionNone} {
		if got := Next(StatePaused, a, true); got != StatePaused {
			t.Errorf("Next(Paused, %v) = %v, expected Paused", a, got)
		}
	}
}

func TestNextFromEndScreens(t *testing.T) {
	for _, from := range []State{StateWon, StateLost} {
		for _, a := range allActions {
			expected := from
			switch a {
			case core.ActionFire:
				expected = StatePlaying
			case core.ActionQuit:
				expected = StateExit
			}
			if got := Next(from, a, true); got != expected {
				t.Errorf("Next(%v, %v) = %v, expected %v", from, a, got, expected)
			}
		}
	}
}

func TestNextQuitFromAnywhere(t *testing.T) {
	for _, s := range []State{StateMenu, StatePlaying, StatePaused, StateWon, StateLost} {
		if got := Next(s, core.ActionQuit, true); got != StateExit {
			t.Errorf("Next(%v, Quit) = %v, expected Exit", s, got)
		}
	}
}

func TestNextNeverEntersEndStatesFromActions(t *testing.T) {
	for _, s := range []State{StateMenu, StatePlaying, StatePaused} {
		for _, a := range allActions {
			if got := Next(s, a, true); got.Ended() {
				t.Errorf("Next(%v, %v) = %v; end states are entered only by gameplay", s, a, got)
			}
		}
	}
}
