// Package clock abstracts wall-clock access so that the countdown-driven
// state transitions and the end-of-auction cutover are testable without
// sleeping.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// New returns the system clock.
func New() Clock { return realClock{} }

// Manual is a hand-driven clock for tests.
type Manual struct {
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }

func (m *Manual) Set(t time.Time) { m.now = t }
