// Package clock provides the pausable stopwatches used by every timer in a game session.
//
// A Stopwatch samples a Source when started, stopped or read. Sessions drive their
// stopwatches from a Manual source that is advanced once per frame, so elapsed time
// is a pure function of the frame deltas the host supplies.
package clock

import "time"

// Source reports the current time.
type Source interface {
	Now() time.Time
}

// System is a Source backed by the wall clock.
type System struct{}

// Now returns the current wall clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a Source that only moves when told to.
type Manual struct {
	now time.Time
}

// NewManual creates a manual source starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the source forward by d. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.now = m.now.Add(d)
}

// Set jumps the source to t.
func (m *Manual) Set(t time.Time) {
	m.now = t
}
