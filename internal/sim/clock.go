package sim

// Clock converts variable frame times into a whole number of fixed physics
// ticks at TickRate.
type Clock struct {
	acc float64
}

// Advance adds a frame of dt seconds and returns how many ticks to run.
// Owed time, including the leftover from earlier frames, never exceeds
// MaxFrameDt; a stall beyond that is dropped rather than replayed.
func (c *Clock) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	const step = 1.0 / TickRate
	c.acc = min(c.acc+dt, MaxFrameDt)
	n := int(c.acc / step)
	c.acc -= float64(n) * step
	return n
}

// FrameMeter counts frames and reports the rate once per FPSInterval.
type FrameMeter struct {
	frames int
	start  float64
}

// Frame records one frame at time now (seconds). When an interval has
// elapsed it returns the average rate and true.
func (m *FrameMeter) Frame(now float64) (float64, bool) {
	if m.frames == 0 && m.start == 0 {
		m.start = now
	}
	m.frames++
	elapsed := now - m.start
	if elapsed < FPSInterval {
		return 0, false
	}
	fps := float64(m.frames) / elapsed
	m.frames = 0
	m.start = now
	return fps, true
}
