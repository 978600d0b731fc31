package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestStepGravityFreeFall(t *testing.T) {
	p := DefaultParams(VariantGravity)
	ps := []Particle{{X: p.CenterX, Y: p.CenterY, Active: true}}

	StepGravity(ps, p)
	if ps[0].VY != Gravity {
		t.Errorf("Expected VY %v after one tick, got %v", Gravity, ps[0].VY)
	}
	if ps[0].Y != p.CenterY+Gravity {
		t.Errorf("Expected Y %v after one tick, got %v", p.CenterY+Gravity, ps[0].Y)
	}
	if ps[0].AX != 0 || ps[0].AY != 0 {
		t.Errorf("Expected acceleration reset, got (%v, %v)", ps[0].AX, ps[0].AY)
	}

	// Acceleration does not accumulate across ticks.
	StepGravity(ps, p)
	if ps[0].VY != 2*Gravity {
		t.Errorf("Expected VY %v after two ticks, got %v", 2*Gravity, ps[0].VY)
	}
	if ps[0].Y != p.CenterY+3*Gravity {
		t.Errorf("Expected Y %v after two ticks, got %v", p.CenterY+3*Gravity, ps[0].Y)
	}
}

func TestStepGravityBounce(t *testing.T) {
	p := DefaultParams(VariantGravity)
	ps := []Particle{{X: p.CenterX, Y: p.CenterY + p.Radius - 1, VY: 5, Active: true}}

	hits := StepGravity(ps, p)
	if hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	if ps[0].X != p.CenterX {
		t.Errorf("Expected X unchanged at %v, got %v", p.CenterX, ps[0].X)
	}
	if !near(ps[0].Y, p.CenterY+p.Radius, eps) {
		t.Errorf("Expected Y on the wall at %v, got %v", p.CenterY+p.Radius, ps[0].Y)
	}
	// 5 + 0.5 = 5.5 reflected and damped by 0.8.
	if !near(ps[0].VY, -4.4, eps) {
		t.Errorf("Expected VY -4.4, got %v", ps[0].VY)
	}
}

func TestStepGravitySkipsInactive(t *testing.T) {
	p := DefaultParams(VariantGravity)
	ps := []Particle{{X: 10, Y: 10}}

	if hits := StepGravity(ps, p); hits != 0 {
		t.Errorf("Expected no hits for inactive particle, got %d", hits)
	}
	if ps[0] != (Particle{X: 10, Y: 10}) {
		t.Errorf("Expected inactive particle untouched, got %+v", ps[0])
	}
}

func TestStepGravityStaysInside(t *testing.T) {
	p := DefaultParams(VariantGravity)
	s := NewStore(p.Count)
	s.SpawnGrid(p.CenterX, p.CenterY, p.Radius)

	for tick := 0; tick < 600; tick++ {
		StepGravity(s.P, p)
		for i := range s.P {
			q := &s.P[i]
			if !q.Active {
				continue
			}
			d := math.Hypot(q.X-p.CenterX, q.Y-p.CenterY)
			if d > p.Radius+eps {
				t.Fatalf("tick %d: particle %d at distance %v outside radius %v", tick, i, d, p.Radius)
			}
		}
	}
}

func TestStepTiltRevivesInactive(t *testing.T) {
	p := DefaultParams(VariantTilt)
	ps := []Particle{{X: 400, Y: 400, VX: 1}}

	StepTilt(ps, p, 0, BaseGravity, NewRand(1))
	if !ps[0].Active {
		t.Fatal("Expected particle to be reactivated")
	}
	if ps[0].X != 400 || ps[0].Y != 400 || ps[0].VX != 1 {
		t.Errorf("Expected revived particle to sit out the tick, got %+v", ps[0])
	}
}

func TestStepTiltDeterministicBounce(t *testing.T) {
	p := DefaultParams(VariantTilt)
	p.RandomForce = 0
	p.TangentialKick = 0
	ps := []Particle{{X: p.CenterX + p.Radius - 0.5, Y: p.CenterY, VX: 2, Active: true}}

	hits := StepTilt(ps, p, 0, 0, NewRand(7))
	if hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	wantX := p.CenterX + p.Radius - p.BoundaryInset
	if !near(ps[0].X, wantX, eps) {
		t.Errorf("Expected X pulled in to %v, got %v", wantX, ps[0].X)
	}
	// 2*0.99 = 1.98, reflected and damped again: -1.98*0.99.
	if !near(ps[0].VX, -1.9602, eps) {
		t.Errorf("Expected VX -1.9602, got %v", ps[0].VX)
	}
	if !near(ps[0].VY, 0, eps) {
		t.Errorf("Expected VY 0, got %v", ps[0].VY)
	}
}

func TestStepTiltSpeedAndBounds(t *testing.T) {
	p := DefaultParams(VariantTilt)
	s := NewStore(p.Count)
	r := NewRand(42)
	s.SpawnJittered(p.CenterX, p.CenterY, p.Radius, r)

	ax, ay := 1.5, -2.0
	for tick := 0; tick < 400; tick++ {
		if tick%50 == 0 {
			s.Shake(ShakeForce, r)
		}
		StepTilt(s.P, p, ax, ay, r)
		for i := range s.P {
			q := &s.P[i]
			speed := q.Speed()
			if speed < p.MinVelocity*(1-1e-9) {
				t.Fatalf("tick %d: particle %d speed %v below floor %v", tick, i, speed, p.MinVelocity)
			}
			if speed > p.VelocityCap+p.TangentialKick/2+eps {
				t.Fatalf("tick %d: particle %d speed %v above cap %v", tick, i, speed, p.VelocityCap)
			}
			d := math.Hypot(q.X-p.CenterX, q.Y-p.CenterY)
			if d > p.Radius+eps {
				t.Fatalf("tick %d: particle %d at distance %v outside radius %v", tick, i, d, p.Radius)
			}
		}
	}
}

func TestEnforceMinSpeed(t *testing.T) {
	r := NewRand(3)

	q := Particle{VX: 0.1}
	enforceMinSpeed(&q, MinVelocity, r)
	if !near(q.VX, MinVelocity, eps) || q.VY != 0 {
		t.Errorf("Expected (%v, 0), got (%v, %v)", MinVelocity, q.VX, q.VY)
	}

	stalled := Particle{}
	enforceMinSpeed(&stalled, MinVelocity, r)
	if !near(stalled.Speed(), MinVelocity, eps) {
		t.Errorf("Expected stalled particle to get speed %v, got %v", MinVelocity, stalled.Speed())
	}

	fast := Particle{VX: 3, VY: 4}
	enforceMinSpeed(&fast, MinVelocity, r)
	if fast.VX != 3 || fast.VY != 4 {
		t.Errorf("Expected fast particle untouched, got (%v, %v)", fast.VX, fast.VY)
	}

	off := Particle{}
	enforceMinSpeed(&off, 0, r)
	if off.VX != 0 || off.VY != 0 {
		t.Errorf("Expected zero floor to be a no-op, got (%v, %v)", off.VX, off.VY)
	}
}

func TestCapSpeed(t *testing.T) {
	q := Particle{VX: 30, VY: 40}
	capSpeed(&q, VelocityCap)
	if !near(q.VX, 9, eps) || !near(q.VY, 12, eps) {
		t.Errorf("Expected (9, 12), got (%v, %v)", q.VX, q.VY)
	}

	slow := Particle{VX: 1, VY: 1}
	capSpeed(&slow, VelocityCap)
	if slow.VX != 1 || slow.VY != 1 {
		t.Errorf("Expected slow particle untouched, got (%v, %v)", slow.VX, slow.VY)
	}
}
