package engine

import "time"

// Clock paces the simulation loop. Each Tick measures the wall time
// since the previous tick and enforces a minimum frame period by
// sleeping, giving the loop a frame-rate ceiling but no floor: slow
// frames are not compensated.
type Clock struct {
	tp   TimeProvider
	last time.Time
}

// NewClock creates a clock driven by the real monotonic wall clock.
func NewClock() *Clock {
	return NewClockWith(NewMonotonicTimeProvider())
}

// NewClockWith creates a clock driven by the given time source.
func NewClockWith(tp TimeProvider) *Clock {
	return &Clock{tp: tp, last: tp.Now()}
}

// Tick returns the elapsed seconds since the previous tick, to be used
// as the caller's integration timestep. When the frame came in under
// the target period (1/fps) it sleeps one full period first and
// re-measures from the original reference, so the returned value
// includes the sleep. The reference instant resets to now on return.
func (c *Clock) Tick(fps float64) float64 {
	period := time.Duration(float64(time.Second) / fps)
	elapsed := c.tp.Now().Sub(c.last)
	if elapsed <= period {
		c.tp.Sleep(period)
		elapsed = c.tp.Now().Sub(c.last)
	}
	c.last = c.tp.Now()
	return elapsed.Seconds()
}
