package invaders

import "math"

// ScoreBoard tracks the current score and the best score seen so far.
type ScoreBoard struct {
	Score uint32
	High  uint32
}

// NewScoreBoard starts at zero with a previously stored high score.
func NewScoreBoard(high uint32) ScoreBoard {
	return ScoreBoard{High: high}
}

// Add awards points, saturating at the maximum value, and raises the high
// score when it is beaten.
func (s *ScoreBoard) Add(points uint32) {
	if points > math.MaxUint32-s.Score {
		s.Score = math.MaxUint32
	} else {
		s.Score += points
	}
	s.High = max(s.High, s.Score)
}

// Reset clears the current score and keeps the high score.
func (s *ScoreBoard) Reset() {
	s.Score = 0
}

// ShouldPersist reports whether the high score belongs to the current run.
func (s *ScoreBoard) ShouldPersist() bool {
	return s.Score >= s.High
}
