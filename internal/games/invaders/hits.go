package invaders

// DetectHits checks every traveling shot against the formation. An invader
// sharing a cell with a shot is removed and the shot starts exploding.
// It returns the number of invaders removed.
func DetectHits(shots []*Shot, army *Army) int {
	hits := 0
	for _, s := range shots {
		if s.Exploding() {
			continue
		}
		if army.KillAt(s.X, s.Y) {
			hits++
			s.Explode()
		}
	}
	return hits
}
