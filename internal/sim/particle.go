package sim

import "math"

type Particle struct {
	X, Y   float64
	VX, VY float64
	AX, AY float64
	Active bool
}

// Speed returns the magnitude of the particle's velocity.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// Store is a fixed-capacity particle array. The slice is allocated once and
// never grows; inactive slots are skipped by the gravity step and revived by
// the tilt step.
type Store struct {
	Max int
	P   []Particle
}

func NewStore(maxParticles int) *Store {
	if maxParticles <= 0 {
		maxParticles = NumParticles
	}
	return &Store{
		Max: maxParticles,
		P:   make([]Particle, maxParticles),
	}
}

func (s *Store) Clear() {
	for i := range s.P {
		s.P[i] = Particle{}
	}
}

// ActiveCount returns the number of active particles.
func (s *Store) ActiveCount() int {
	n := 0
	for i := range s.P {
		if s.P[i].Active {
			n++
		}
	}
	return n
}

func gridSpacing(radius float64, n int) float64 {
	return radius * 2.0 / math.Sqrt(float64(n))
}

// SpawnGrid lays particles out on a square lattice clipped to the arena
// circle, at rest. Slots the lattice cannot fill stay inactive. Returns the
// number placed.
func (s *Store) SpawnGrid(cx, cy, radius float64) int {
	s.Clear()
	spacing := gridSpacing(radius, s.Max)
	idx := 0
	for y := -radius; y < radius && idx < s.Max; y += spacing {
		for x := -radius; x < radius && idx < s.Max; x += spacing {
			if x*x+y*y <= radius*radius {
				s.P[idx] = Particle{X: cx + x, Y: cy + y, Active: true}
				idx++
			}
		}
	}
	return idx
}

// SpawnJittered lays particles out on a lattice kept one spacing away from
// the wall, each with a random initial velocity, then fills any remaining
// slots at random points inside the same inner disc.
func (s *Store) SpawnJittered(cx, cy, radius float64, r *Rand) {
	s.Clear()
	spacing := gridSpacing(radius, s.Max)
	inner := radius - spacing
	idx := 0
	for y := -radius + spacing; y < inner && idx < s.Max; y += spacing {
		for x := -radius + spacing; x < inner && idx < s.Max; x += spacing {
			if x*x+y*y <= inner*inner {
				s.P[idx] = Particle{
					X: cx + x, Y: cy + y,
					VX: r.Centered(SpawnJitter), VY: r.Centered(SpawnJitter),
					Active: true,
				}
				idx++
			}
		}
	}

	for ; idx < s.Max; idx++ {
		ang := r.Angle()
		d := r.Float64() * inner
		s.P[idx] = Particle{
			X: cx + math.Cos(ang)*d, Y: cy + math.Sin(ang)*d,
			VX: r.Centered(SpawnJitter), VY: r.Centered(SpawnJitter),
			Active: true,
		}
	}
}

// Shake adds a random impulse of up to ±force/2 per axis to every particle.
func (s *Store) Shake(force float64, r *Rand) {
	for i := range s.P {
		s.P[i].VX += r.Centered(force)
		s.P[i].VY += r.Centered(force)
	}
}
