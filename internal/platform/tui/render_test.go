package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestRenderFramePlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	f := core.NewFrame()
	f.WriteText(1, 0, "Score: 10")
	f.Set(20, 19, "A")
	f.Set(4, 4, "x")

	out := RenderFrame(f)
	if out != f.String() {
		t.Errorf("RenderFrame() without colors should equal Frame.String()\n got: %q\nwant: %q", out, f.String())
	}
	if lines := strings.Split(out, "\n"); len(lines) != core.FrameHeight {
		t.Errorf("RenderFrame() has %d lines, expected %d", len(lines), core.FrameHeight)
	}
}

func TestRenderFrameColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	f := core.NewFrame()
	f.Set(0, 0, "A")

	out := RenderFrame(f)
	if !strings.Contains(out, "\x1b[") {
		t.Error("RenderFrame() with a color profile should emit escape sequences")
	}
	if !strings.Contains(out, "A") {
		t.Error("RenderFrame() lost the glyph")
	}
}

func TestRenderScoreboard(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	empty := RenderScoreboard(nil, storage.Stats{})
	if !strings.Contains(empty, "No runs recorded yet.") {
		t.Errorf("empty scoreboard = %q", empty)
	}

	runs := []storage.Run{
		{Score: 3600, Outcome: "won", CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)},
		{Score: 150, Outcome: "lost", CreatedAt: time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)},
	}
	out := RenderScoreboard(runs, storage.Stats{Runs: 2, Wins: 1, HighScore: 3600, AvgScore: 1875})
	for _, want := range []string{"#1", "3600", "won", "#2", "150", "lost", "Jan 02 15:04", "Best: 3600"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRecentRuns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	runs := []storage.Run{
		{Score: 150, Outcome: "quit", CreatedAt: time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)},
	}
	out := RenderRecentRuns(runs, storage.Stats{Runs: 1, HighScore: 150, AvgScore: 150})
	for _, want := range []string{"Recent Runs", "150", "quit", "Jan 03 09:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("recent runs missing %q:\n%s", want, out)
		}
	}
}
