package sim

import (
	"math"
	"testing"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore(0)
	if s.Max != NumParticles {
		t.Errorf("Expected default capacity %d, got %d", NumParticles, s.Max)
	}
	if len(s.P) != NumParticles {
		t.Errorf("Expected %d slots, got %d", NumParticles, len(s.P))
	}
	if s.ActiveCount() != 0 {
		t.Errorf("Expected fresh store to have no active particles, got %d", s.ActiveCount())
	}
}

func TestSpawnGrid(t *testing.T) {
	s := NewStore(NumParticles)
	placed := s.SpawnGrid(CenterX, CenterY, Radius)

	// A lattice clipped to a disc fills roughly π/4 of the square.
	want := math.Pi / 4 * NumParticles
	if math.Abs(float64(placed)-want) > 0.1*want {
		t.Errorf("Expected roughly %.0f particles placed, got %d", want, placed)
	}
	if got := s.ActiveCount(); got != placed {
		t.Errorf("Expected %d active, got %d", placed, got)
	}

	for i := range s.P {
		p := &s.P[i]
		if i >= placed {
			if p.Active {
				t.Fatalf("Expected slot %d past the lattice to stay inactive", i)
			}
			continue
		}
		if d := math.Hypot(p.X-CenterX, p.Y-CenterY); d > Radius+eps {
			t.Errorf("particle %d spawned outside arena at distance %v", i, d)
		}
		if p.VX != 0 || p.VY != 0 || p.AX != 0 || p.AY != 0 {
			t.Errorf("particle %d expected at rest, got %+v", i, *p)
		}
	}

	// First lattice point is the top-most row, left-most column inside the disc.
	if s.P[0].Y >= CenterY {
		t.Errorf("Expected lattice to start in the upper half, got Y=%v", s.P[0].Y)
	}
}

func TestSpawnJittered(t *testing.T) {
	s := NewStore(NumParticles)
	s.SpawnJittered(CenterX, CenterY, Radius, NewRand(9))

	if got := s.ActiveCount(); got != NumParticles {
		t.Fatalf("Expected all %d particles active, got %d", NumParticles, got)
	}
	inner := Radius - gridSpacing(Radius, NumParticles)
	for i := range s.P {
		p := &s.P[i]
		if d := math.Hypot(p.X-CenterX, p.Y-CenterY); d > inner+eps {
			t.Errorf("particle %d at distance %v beyond inner radius %v", i, d, inner)
		}
		if p.VX < -SpawnJitter/2 || p.VX >= SpawnJitter/2 || p.VY < -SpawnJitter/2 || p.VY >= SpawnJitter/2 {
			t.Errorf("particle %d velocity (%v, %v) outside jitter range", i, p.VX, p.VY)
		}
	}
}

func TestSpawnJitteredDeterministic(t *testing.T) {
	a := NewStore(NumParticles)
	b := NewStore(NumParticles)
	a.SpawnJittered(CenterX, CenterY, Radius, NewRand(5))
	b.SpawnJittered(CenterX, CenterY, Radius, NewRand(5))

	for i := range a.P {
		if a.P[i] != b.P[i] {
			t.Fatalf("Expected identical spawn for same seed at %d: %+v vs %+v", i, a.P[i], b.P[i])
		}
	}
}

func TestShake(t *testing.T) {
	s := NewStore(64)
	s.Shake(ShakeForce, NewRand(11))

	moved := 0
	for i := range s.P {
		p := &s.P[i]
		if math.Abs(p.VX) > ShakeForce/2 || math.Abs(p.VY) > ShakeForce/2 {
			t.Errorf("particle %d impulse (%v, %v) beyond ±%v", i, p.VX, p.VY, ShakeForce/2)
		}
		if p.VX != 0 || p.VY != 0 {
			moved++
		}
	}
	if moved == 0 {
		t.Error("Expected shake to move particles")
	}
}
