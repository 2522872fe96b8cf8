package core

import (
	"strings"
)

// Frame dimensions in cells.
const (
	FrameWidth  = 40
	FrameHeight = 20
)

// Cell holds the glyph drawn at one grid position. A glyph may be
// multi-byte but always occupies a single cell.
type Cell string

// Blank is the glyph of an empty cell.
const Blank Cell = " "

// Frame is a fixed-size grid of cells, addressed column-major as (x, y).
// A frame belongs to exactly one stage at a time: the simulation fills it,
// then hands the pointer to the render stage and never touches it again.
type Frame struct {
	cells [FrameWidth][FrameHeight]Cell
}

// NewFrame returns a frame filled with blank cells.
func NewFrame() *Frame {
	f := &Frame{}
	f.Clear()
	return f
}

// Clear fills the entire frame with blanks.
func (f *Frame) Clear() {
	f.Fill(Blank)
}

// Fill fills the entire frame with the given glyph.
func (f *Frame) Fill(c Cell) {
	for x := range f.cells {
		for y := range f.cells[x] {
			f.cells[x][y] = c
		}
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c Cell) {
	if x < 0 || x >= FrameWidth || y < 0 || y >= FrameHeight {
		return
	}
	f.cells[x][y] = c
}

// Get returns the glyph at the given position.
// Returns Blank for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) Cell {
	if x < 0 || x >= FrameWidth || y < 0 || y >= FrameHeight {
		return Blank
	}
	return f.cells[x][y]
}

// WriteText writes a string horizontally starting at (x, y), one glyph
// per rune. Glyphs that fall outside the frame are clipped.
func (f *Frame) WriteText(x, y int, text string) {
	i := 0
	for _, r := range text {
		f.Set(x+i, y, Cell(string(r)))
		i++
	}
}

// FillStarryBackground paints the star field for the given tick.
// The result depends only on cell position and tick, so equal ticks
// always produce equal backgrounds.
func FillStarryBackground(f *Frame, tick uint64) {
	phase := tick / 16
	for x := 0; x < FrameWidth; x++ {
		for y := 0; y < FrameHeight; y++ {
			h := mix(uint64(x)<<32 | uint64(y))
			if h%24 != 0 {
				f.cells[x][y] = Blank
				continue
			}
			if mix(h^phase)%5 == 0 {
				f.cells[x][y] = "'"
			} else {
				f.cells[x][y] = "."
			}
		}
	}
}

// mix is the splitmix64 finalizer.
func mix(v uint64) uint64 {
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// Equal reports whether two frames hold the same glyphs everywhere.
func (f *Frame) Equal(other *Frame) bool {
	return f.cells == other.cells
}

// Row returns the specified row as a string.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= FrameHeight {
		return strings.Repeat(string(Blank), FrameWidth)
	}
	var sb strings.Builder
	for x := 0; x < FrameWidth; x++ {
		sb.WriteString(string(f.cells[x][y]))
	}
	return sb.String()
}

// String converts the frame to text, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(FrameWidth*FrameHeight + FrameHeight)

	for y := 0; y < FrameHeight; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}
