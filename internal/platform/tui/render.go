package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// categoryStyles maps glyph categories to lipgloss styles, using the same
// palette as the in-game renderer.
var categoryStyles = func() map[core.Category]lipgloss.Style {
	styles := make(map[core.Category]lipgloss.Style)
	for _, c := range []core.Category{
		core.CategoryFallback,
		core.CategoryFriendly,
		core.CategoryHostile,
		core.CategoryProjectile,
		core.CategoryDecorative,
		core.CategoryText,
	} {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c.Color()))))
	}
	return styles
}()

// RenderFrame converts a frame to a styled string for printing.
// Groups adjacent cells of the same category to minimize ANSI escape
// sequences.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	sb.Grow(core.FrameWidth*core.FrameHeight*2 + core.FrameHeight)

	for y := range core.FrameHeight {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < core.FrameWidth {
			start := core.Classify(f.Get(x, y))

			var run strings.Builder
			for x < core.FrameWidth {
				cell := f.Get(x, y)
				if core.Classify(cell) != start {
					break
				}
				run.WriteString(string(cell))
				x++
			}

			style, ok := categoryStyles[start]
			if !ok {
				style = categoryStyles[core.CategoryFallback]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
