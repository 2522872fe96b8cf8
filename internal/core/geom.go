// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no terminal code) to keep
// game logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
