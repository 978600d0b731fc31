package sim

import "math"

// StepGravity advances every active particle one tick under constant
// downward gravity and resolves wall contacts. Returns the number of
// particles that hit the wall.
func StepGravity(ps []Particle, p Params) int {
	hits := 0
	for i := range ps {
		q := &ps[i]
		if !q.Active {
			continue
		}

		q.AY += p.Gravity

		q.VX += q.AX
		q.VY += q.AY
		q.X += q.VX
		q.Y += q.VY

		q.AX = 0
		q.AY = 0

		if _, _, hit := bounce(q, p); hit {
			hits++
		}
	}
	return hits
}

// StepTilt advances every particle one tick under the shared acceleration
// (ax, ay) plus per-particle jitter, keeps speeds inside
// [MinVelocity, VelocityCap], and resolves wall contacts with a small random
// tangential kick. An inactive particle is revived and sits out this tick.
// Returns the number of wall hits.
func StepTilt(ps []Particle, p Params, ax, ay float64, r *Rand) int {
	hits := 0
	for i := range ps {
		q := &ps[i]
		if !q.Active {
			q.Active = true
			continue
		}

		q.AX = ax + r.Centered(p.RandomForce)
		q.AY = ay + r.Centered(p.RandomForce)

		q.VX = q.VX*p.Damping + q.AX
		q.VY = q.VY*p.Damping + q.AY

		enforceMinSpeed(q, p.MinVelocity, r)
		capSpeed(q, p.VelocityCap)

		q.X += q.VX
		q.Y += q.VY

		nx, ny, hit := bounce(q, p)
		if !hit {
			continue
		}
		hits++

		// Tangent is the wall normal rotated a quarter turn.
		kick := r.Centered(p.TangentialKick)
		q.VX += -ny * kick
		q.VY += nx * kick

		enforceMinSpeed(q, p.MinVelocity, r)
	}
	return hits
}

// bounce pulls a particle that left the arena back to radius
// (Radius - BoundaryInset) along its outward normal and reflects its
// velocity about that normal, scaled by Damping. Returns the unit normal.
func bounce(q *Particle, p Params) (nx, ny float64, hit bool) {
	dx := q.X - p.CenterX
	dy := q.Y - p.CenterY
	d := math.Sqrt(dx*dx + dy*dy)
	if d <= p.Radius {
		return 0, 0, false
	}

	nx = dx / d
	ny = dy / d
	rr := p.Radius - p.BoundaryInset
	q.X = p.CenterX + nx*rr
	q.Y = p.CenterY + ny*rr

	dot := q.VX*nx + q.VY*ny
	q.VX = p.Damping * (q.VX - 2*dot*nx)
	q.VY = p.Damping * (q.VY - 2*dot*ny)
	return nx, ny, true
}

// enforceMinSpeed rescales slow particles up to min. A particle that has
// effectively stopped gets a random heading.
func enforceMinSpeed(q *Particle, min float64, r *Rand) {
	if min <= 0 {
		return
	}
	speed := q.Speed()
	if speed >= min {
		return
	}
	if speed < stallSpeed {
		ang := r.Angle()
		q.VX = math.Cos(ang) * min
		q.VY = math.Sin(ang) * min
		return
	}
	scale := min / speed
	q.VX *= scale
	q.VY *= scale
}

func capSpeed(q *Particle, max float64) {
	if max <= 0 {
		return
	}
	speed := q.Speed()
	if speed > max {
		scale := max / speed
		q.VX *= scale
		q.VY *= scale
	}
}
