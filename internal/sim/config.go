package sim

import "fmt"

// Window defaults (in screen pixels).
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "FLIP Fluid Simulator"
)

// Arena.
const (
	NumParticles = 1000
	Radius       = 350.0
	CenterX      = WindowWidth / 2
	CenterY      = WindowHeight / 2
)

// Gravity variant.
const (
	Gravity        = 0.5
	GravityDamping = 0.8
)

// Tilt variant. All quantities are per tick.
const (
	BaseGravity    = 0.5
	TiltDamping    = 0.99 // applied every tick and again on wall bounce
	TiltSpeed      = 0.1
	MaxTilt        = 2.0
	VelocityCap    = 15.0
	MinVelocity    = 0.2
	RandomForce    = 0.05
	TangentialKick = 0.5
	ShakeForce     = 10.0
	SpawnJitter    = 4.0
	AccelSmoothing = 0.1
	BoundaryInset  = 1.0

	stallSpeed = 0.0001
)

// Tilt indicator, top-right corner.
const (
	IndicatorRadius = 50.0
	IndicatorInset  = 70.0
)

// Frame timing.
const (
	TickRate    = 60
	MaxFrameDt  = 0.1
	FPSInterval = 5.0
)

// Variant selects which of the two physics models drives the arena.
type Variant int

const (
	VariantGravity Variant = 1 // constant downward pull, lossy bounce
	VariantTilt    Variant = 2 // tilt-controlled pull, speed floor/cap, jitter
)

func (v Variant) String() string {
	switch v {
	case VariantGravity:
		return "gravity"
	case VariantTilt:
		return "tilt"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant accepts "1"/"gravity" and "2"/"tilt".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "1", "gravity":
		return VariantGravity, nil
	case "2", "tilt":
		return VariantTilt, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want 1|gravity or 2|tilt)", s)
}

// Params holds the tunables of one physics variant. Zero MinVelocity or
// VelocityCap disables the corresponding clamp.
type Params struct {
	Variant Variant

	CenterX, CenterY float64
	Radius           float64
	Count            int

	Gravity        float64
	Damping        float64
	MinVelocity    float64
	VelocityCap    float64
	RandomForce    float64
	TangentialKick float64
	BoundaryInset  float64
}

// DefaultParams returns the stock constants for v.
func DefaultParams(v Variant) Params {
	p := Params{
		Variant: v,
		CenterX: CenterX,
		CenterY: CenterY,
		Radius:  Radius,
		Count:   NumParticles,
	}
	switch v {
	case VariantTilt:
		p.Damping = TiltDamping
		p.MinVelocity = MinVelocity
		p.VelocityCap = VelocityCap
		p.RandomForce = RandomForce
		p.TangentialKick = TangentialKick
		p.BoundaryInset = BoundaryInset
	default:
		p.Variant = VariantGravity
		p.Gravity = Gravity
		p.Damping = GravityDamping
	}
	return p
}

// Validate rejects parameter sets the step functions cannot honour.
func (p Params) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", p.Radius)
	}
	if p.Count <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", p.Count)
	}
	if p.BoundaryInset < 0 || p.BoundaryInset >= p.Radius {
		return fmt.Errorf("boundary inset %v outside [0, radius)", p.BoundaryInset)
	}
	if p.VelocityCap > 0 && p.MinVelocity > p.VelocityCap {
		return fmt.Errorf("min velocity %v exceeds cap %v", p.MinVelocity, p.VelocityCap)
	}
	return nil
}
