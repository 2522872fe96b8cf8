// Package render paints frames onto the terminal. Only cells that differ
// from the previous frame are written, and the foreground color is switched
// only when the glyph category changes.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var defaultFg = ansi.Style{}.DefaultForegroundColor().String()

// Render writes the cells of curr that differ from last. With force every
// cell is written after the screen is cleared to the base background.
// When nothing differs and force is false, nothing is written at all.
func Render(w io.Writer, last, curr *core.Frame, force bool) error {
	bw := bufio.NewWriterSize(w, 16384)

	if force {
		bw.WriteString(background(core.ColorGreen))
		bw.WriteString(ansi.EraseEntireScreen)
		bw.WriteString(background(core.ColorBlack))
	}

	active := core.Category(0)
	activeValid := false
	wrote := false

	for x := 0; x < core.FrameWidth; x++ {
		for y := 0; y < core.FrameHeight; y++ {
			cell := curr.Get(x, y)
			if !force && cell == last.Get(x, y) {
				continue
			}

			if cat := core.Classify(cell); !activeValid || cat != active {
				bw.WriteString(foreground(cat.Color()))
				active = cat
				activeValid = true
			}

			bw.WriteString(ansi.CursorPosition(x+1, y+1))
			bw.WriteString(string(cell))
			wrote = true
		}
	}

	if wrote {
		bw.WriteString(defaultFg)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: cannot write frame: %w", err)
	}
	return nil
}

// foreground returns the 256-color SGR sequence selecting c as foreground.
func foreground(c core.Color) string {
	return ansi.Style{}.ForegroundColor(ansi.ExtendedColor(c)).String()
}

func background(c core.Color) string {
	return ansi.Style{}.BackgroundColor(ansi.ExtendedColor(c)).String()
}
