package core

import "time"

// Timer accumulates elapsed time against a fixed period.
//
// A repeating timer is drained with Laps, which keeps the remainder so the
// number of completed periods never depends on how the elapsed time was
// split across ticks. A one-shot timer is just ticked and checked with
// Finished.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a timer with the given period.
func NewTimer(period time.Duration) Timer {
	return Timer{period: period}
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// SetPeriod changes the period without touching the accumulated time.
func (t *Timer) SetPeriod(period time.Duration) {
	t.period = period
}

// Tick adds elapsed time. Negative durations are ignored.
func (t *Timer) Tick(elapsed time.Duration) {
	if elapsed > 0 {
		t.elapsed += elapsed
	}
}

// Finished reports whether at least one full period has accumulated.
func (t *Timer) Finished() bool {
	return t.elapsed >= t.period
}

// Laps removes and returns the number of completed periods.
func (t *Timer) Laps() int {
	if t.period <= 0 {
		return 0
	}
	n := t.elapsed / t.period
	t.elapsed -= n * t.period
	return int(n)
}

// Progress returns the fraction of the current period that has elapsed,
// clamped to [0, 1].
func (t *Timer) Progress() float64 {
	if t.period <= 0 || t.elapsed >= t.period {
		return 1
	}
	return float64(t.elapsed) / float64(t.period)
}

// Reset discards accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
