// Package clock provides the simulated millisecond time used for attack
// cooldowns.
package clock

// Clock returns a non-decreasing timestamp in milliseconds
type Clock interface {
	NowMillis() int64
}

// Frame derives time from the number of simulated ticks.
// It makes cooldowns independent of real time, which keeps replays and
// tests deterministic.
type Frame struct {
	tps   int
	ticks int64
}

// NewFrame creates a frame clock for the given tick rate
func NewFrame(tps int) *Frame {
	if tps <= 0 {
		tps = 60
	}
	return &Frame{tps: tps}
}

// Advance moves the clock forward by one tick
func (c *Frame) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks advanced so far
func (c *Frame) Ticks() int64 {
	return c.ticks
}

// NowMillis returns the elapsed simulated time in milliseconds
func (c *Frame) NowMillis() int64 {
	return c.ticks * 1000 / int64(c.tps)
}
