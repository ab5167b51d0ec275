package timer

import (
	"sync"
	"time"
)

// Clock is the time source for travel and door-hold delays. The simulation
// core never reads the time package directly, so tests can substitute a
// SimClock and run without wall-clock sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock delegates to the time package.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SimClock is a logical time source. Sleep returns immediately and advances
// the internal clock by the requested duration.
type SimClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewSimClock() *SimClock {
	return &SimClock{now: time.Unix(0, 0)}
}

func (c *SimClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *SimClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Elapsed reports how much logical time has passed since the zero point.
func (c *SimClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(time.Unix(0, 0))
}
