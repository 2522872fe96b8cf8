package core

import "unicode/utf8"

// Category is the color class of a glyph. The renderer maps each
// category to one terminal foreground color.
type Category uint8

// Glyph categories. CategoryFallback catches anything not listed.
const (
	CategoryFallback Category = iota
	CategoryFriendly
	CategoryHostile
	CategoryProjectile
	CategoryDecorative
	CategoryText
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryFriendly:
		return "Friendly"
	case CategoryHostile:
		return "Hostile"
	case CategoryProjectile:
		return "Projectile"
	case CategoryDecorative:
		return "Decorative"
	case CategoryText:
		return "Text"
	default:
		return "Fallback"
	}
}

// Color is an ANSI 256-color palette index.
type Color uint8

// Palette entries used by the renderer.
const (
	ColorBlack    Color = 0
	ColorRed      Color = 1
	ColorGreen    Color = 2
	ColorYellow   Color = 3
	ColorCyan     Color = 6
	ColorGray     Color = 7
	ColorDarkGray Color = 8
)

// Color returns the palette entry for the category.
func (c Category) Color() Color {
	switch c {
	case CategoryFriendly:
		return ColorGreen
	case CategoryHostile:
		return ColorYellow
	case CategoryProjectile:
		return ColorRed
	case CategoryDecorative:
		return ColorDarkGray
	case CategoryText:
		return ColorCyan
	default:
		return ColorGray
	}
}

// Classify returns the category of a glyph. Only the first rune counts;
// an empty cell is treated as a space.
func Classify(c Cell) Category {
	r, _ := utf8.DecodeRuneInString(string(c))
	if r == utf8.RuneError {
		r = ' '
	}

	switch r {
	case 'A':
		return CategoryFriendly
	case 'x', '+':
		return CategoryHostile
	case '|', '!', '*':
		return CategoryProjectile
	case '.', '\'', ' ':
		return CategoryDecorative
	}

	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return CategoryText
	}
	return CategoryFallback
}
