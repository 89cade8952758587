package tui

import "time"

// Clock supplies the engine's millisecond timestamps.
// It starts at zero and stops counting while paused, so spawn timers and
// invincibility freeze together with the game.
type Clock struct {
	source      func() time.Time
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
}

// NewClock creates a clock reading from source (time.Now when nil).
func NewClock(source func() time.Time) *Clock {
	if source == nil {
		source = time.Now
	}
	return &Clock{source: source, start: source()}
}

// Now returns the unpaused milliseconds since the clock was created.
func (c *Clock) Now() uint64 {
	ref := c.source()
	if c.paused {
		ref = c.pausedAt
	}
	elapsed := ref.Sub(c.start) - c.pausedTotal
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed.Milliseconds())
}

// Pause stops the clock. Pausing a paused clock does nothing.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.source()
}

// Resume restarts the clock without counting the paused interval.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.source().Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is stopped.
func (c *Clock) Paused() bool {
	return c.paused
}
