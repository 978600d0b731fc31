package sim

// Controls is the keyboard state sampled once per tick. Frontends translate
// their native key events into this.
type Controls struct {
	Left, Right bool
	Up, Down    bool
	Level       bool // Space: target back to rest gravity
	Shake       bool // R: random impulse to every particle, each tick held
}

// Any reports whether any control is held.
func (c Controls) Any() bool {
	return c.Left || c.Right || c.Up || c.Down || c.Level || c.Shake
}

// Merge returns the union of two control states.
func (c Controls) Merge(o Controls) Controls {
	return Controls{
		Left:  c.Left || o.Left,
		Right: c.Right || o.Right,
		Up:    c.Up || o.Up,
		Down:  c.Down || o.Down,
		Level: c.Level || o.Level,
		Shake: c.Shake || o.Shake,
	}
}
