package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant; used by tests and fixtures.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

func (c *FixedClock) Now() time.Time {
	return c.at
}

func (c *FixedClock) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
