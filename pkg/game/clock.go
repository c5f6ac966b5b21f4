package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrBadFrameTime is returned when the measured frame time cannot be fed to
// the simulation. It stops the game loop.
var ErrBadFrameTime = errors.New("bad frame time")

// Clock measures the seconds elapsed between frames
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
	max     float64
}

// NewClock creates a clock that never reports more than maxSeconds per frame,
// so a stalled window does not teleport the car.
func NewClock(maxSeconds float64) *Clock {
	return &Clock{
		now: time.Now,
		max: maxSeconds,
	}
}

// Tick returns the time since the previous tick. The first tick returns 0.
func (c *Clock) Tick() (float64, error) {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0, nil
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return c.clamp(dt)
}

func (c *Clock) clamp(dt float64) (float64, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0, fmt.Errorf("%w: %v", ErrBadFrameTime, dt)
	}
	if dt > c.max {
		dt = c.max
	}
	return dt, nil
}

// Reset makes the next tick behave like the first one
func (c *Clock) Reset() {
	c.started = false
}
