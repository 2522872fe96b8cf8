package config

import "time"

// Interval returns the formation move interval after the given number of
// descents. Every descent removes SpeedupMs until MinIntervalMs is reached.
func (f FormationConfig) Interval(descents int) time.Duration {
	if descents < 0 {
		descents = 0
	}
	ms := f.InitialIntervalMs - descents*f.SpeedupMs
	if ms < f.MinIntervalMs {
		ms = f.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Initial returns the formation move interval at the start of a game.
func (f FormationConfig) Initial() time.Duration {
	return f.Interval(0)
}
