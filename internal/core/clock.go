package core

import "time"

// FrameClock paces a fixed-timestep loop by handing out the delay until the
// next frame deadline. Deadlines advance by exactly one interval per frame,
// so slow frames are absorbed by shorter sleeps rather than drifting.
type FrameClock struct {
	interval time.Duration
	next     time.Time
}

// NewFrameClock creates a clock for the given rate in frames per second.
// Non-positive rates fall back to 60.
func NewFrameClock(rate int) *FrameClock {
	if rate <= 0 {
		rate = 60
	}
	return &FrameClock{interval: time.Second / time.Duration(rate)}
}

// Interval returns the duration of one frame.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Next advances to the next deadline and returns how long to sleep from now.
// If the loop fell more than a full frame behind, the schedule restarts
// from now instead of bursting to catch up.
func (c *FrameClock) Next(now time.Time) time.Duration {
	if c.next.IsZero() || now.Sub(c.next) > c.interval {
		c.next = now
	}
	c.next = c.next.Add(c.interval)

	delay := c.next.Sub(now)
	if delay < 0 {
		return 0
	}
	return delay
}

// Reset forgets the current schedule; the next call to Next starts fresh.
func (c *FrameClock) Reset() {
	c.next = time.Time{}
}
