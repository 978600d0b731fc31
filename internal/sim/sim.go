package sim

import "fmt"

// Simulation owns the particle store, the accelerometer and the RNG for one
// arena. It is not safe for concurrent use; frontends drive it from their
// frame loop.
type Simulation struct {
	Params Params
	Store  *Store
	Accel  *Accelerometer
	Events *EventBus

	rng   *Rand
	seed  uint64
	ticks uint64
	hits  int
}

// New builds a simulation and spawns its particles. events may be nil.
func New(p Params, seed uint64, smoothing Smoothing, events *EventBus) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	s := &Simulation{
		Params: p,
		Store:  NewStore(p.Count),
		Accel:  NewAccelerometer(smoothing),
		Events: events,
		seed:   seed,
	}
	s.Reset()
	return s, nil
}

// Reset respawns the particles and rewinds the RNG to the start seed.
func (s *Simulation) Reset() {
	s.rng = NewRand(s.seed)
	s.ticks = 0
	s.hits = 0
	s.Accel.Reset()
	switch s.Params.Variant {
	case VariantTilt:
		s.Store.SpawnJittered(s.Params.CenterX, s.Params.CenterY, s.Params.Radius, s.rng)
	default:
		s.Store.SpawnGrid(s.Params.CenterX, s.Params.CenterY, s.Params.Radius)
	}
}

// Apply feeds one tick of keyboard state into the accelerometer. The
// gravity variant has no tilt and ignores input.
func (s *Simulation) Apply(c Controls) {
	if s.Params.Variant != VariantTilt {
		return
	}
	a := s.Accel
	if c.Level {
		a.Level()
		s.Events.Emit(Event{Type: EventLevel, X: a.TargetX, Y: a.TargetY})
	}
	if c.Left {
		a.Nudge(-TiltSpeed, 0)
	}
	if c.Right {
		a.Nudge(TiltSpeed, 0)
	}
	if c.Up {
		a.Nudge(0, -TiltSpeed)
	}
	if c.Down {
		a.Nudge(0, TiltSpeed)
	}
	if c.Shake {
		s.Store.Shake(ShakeForce, s.rng)
		s.Events.Emit(Event{Type: EventShake, X: a.TargetX, Y: a.TargetY, Data: len(s.Store.P)})
	}
}

// Tick advances the physics one step and returns the number of wall hits.
func (s *Simulation) Tick() int {
	var hits int
	switch s.Params.Variant {
	case VariantTilt:
		s.Accel.Update()
		hits = StepTilt(s.Store.P, s.Params, s.Accel.X, s.Accel.Y, s.rng)
	default:
		hits = StepGravity(s.Store.P, s.Params)
	}
	s.ticks++
	s.hits = hits
	if hits > 0 {
		s.Events.Emit(Event{Type: EventBoundaryHits, X: s.Accel.TargetX, Y: s.Accel.TargetY, Data: hits})
	}
	return hits
}

// Ticks returns the number of steps taken since the last Reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// LastHits returns the wall hits of the most recent tick.
func (s *Simulation) LastHits() int { return s.hits }

// ShowIndicator reports whether the tilt indicator belongs on screen.
func (s *Simulation) ShowIndicator() bool { return s.Params.Variant == VariantTilt }
