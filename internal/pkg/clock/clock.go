// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// After delegates to time.After
func (c *Real) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock frozen at a point in time. After fires immediately and
// advances the frozen time by the requested duration.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock frozen at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the frozen time
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After advances the clock by d and returns an already-fired channel
func (c *Fixed) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}
