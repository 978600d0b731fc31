package sim

import "math"

// Each scene vertex is 8 floats: x, y, size, r, g, b, a, rotation.
const VertexStride = 8

// RingPoints is the number of points used to draw a circle, one per degree.
const RingPoints = 360

// gravitySpeedRef is the speed treated as "fast" when colouring the gravity
// variant, which has no velocity cap.
const gravitySpeedRef = 20.0

// Scene holds the per-frame draw lists in screen pixels. Buffers are reused
// across frames.
type Scene struct {
	Boundary  []float32 // points
	Particles []float32 // points
	Gauge     []float32 // points
	Needle    []float32 // one line segment (2 vertices), empty when hidden
}

func appendVertex(buf []float32, x, y, size float64, c RGB) []float32 {
	r, g, b := c.Floats()
	return append(buf, float32(x), float32(y), float32(size), r, g, b, 1, 0)
}

// RingPoint returns the i-th degree of a circle of radius r around (cx, cy),
// snapped to whole pixels the way integer point drawing does.
func RingPoint(cx, cy, r float64, i int) (float64, float64) {
	ang := float64(i) * math.Pi / 180.0
	return float64(int(cx + r*math.Cos(ang))), float64(int(cy + r*math.Sin(ang)))
}

// AppendRing appends RingPoints points on a circle of radius r around (cx, cy).
func AppendRing(buf []float32, cx, cy, r float64, c RGB) []float32 {
	for i := 0; i < RingPoints; i++ {
		x, y := RingPoint(cx, cy, r, i)
		buf = appendVertex(buf, x, y, 1, c)
	}
	return buf
}

// AppendParticles appends one point per active particle.
func AppendParticles(buf []float32, ps []Particle, mode ColorMode, maxSpeed float64) []float32 {
	for i := range ps {
		p := &ps[i]
		if !p.Active {
			continue
		}
		x := float64(int(p.X))
		y := float64(int(p.Y))
		buf = appendVertex(buf, x, y, 1, ParticleColor(p, mode, maxSpeed))
	}
	return buf
}

// IndicatorCenter returns the screen position of the tilt gauge for a
// surface of the given width.
func IndicatorCenter(width float64) (float64, float64) {
	return width - IndicatorInset, IndicatorInset
}

// AppendNeedle appends the two endpoints of the tilt needle: from the gauge
// centre toward the normalised acceleration, IndicatorRadius long at MaxTilt.
func AppendNeedle(buf []float32, cx, cy, nx, ny float64) []float32 {
	buf = appendVertex(buf, cx, cy, 1, Palette.Needle)
	return appendVertex(buf, cx+nx*IndicatorRadius, cy+ny*IndicatorRadius, 1, Palette.Needle)
}

// SpeedScale returns the speed mapped to the hottest colour.
func (p Params) SpeedScale() float64 {
	if p.VelocityCap > 0 {
		return p.VelocityCap
	}
	return gravitySpeedRef
}

// Build refreshes sc for the current state on a surface width pixels wide.
// The boundary ring is computed once and kept.
func (s *Simulation) Build(sc *Scene, mode ColorMode, width float64) {
	if len(sc.Boundary) == 0 {
		sc.Boundary = AppendRing(sc.Boundary[:0], s.Params.CenterX, s.Params.CenterY, s.Params.Radius, Palette.Boundary)
	}
	sc.Particles = AppendParticles(sc.Particles[:0], s.Store.P, mode, s.Params.SpeedScale())

	sc.Gauge = sc.Gauge[:0]
	sc.Needle = sc.Needle[:0]
	if !s.ShowIndicator() {
		return
	}
	gx, gy := IndicatorCenter(width)
	sc.Gauge = AppendRing(sc.Gauge, gx, gy, IndicatorRadius, Palette.Gauge)
	nx, ny := s.Accel.Normalized()
	sc.Needle = AppendNeedle(sc.Needle, gx, gy, nx, ny)
}
