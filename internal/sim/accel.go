package sim

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
)

// Smoothing selects how the accelerometer chases its target.
type Smoothing int

const (
	SmoothLerp   Smoothing = iota // fixed-fraction approach each tick
	SmoothSpring                  // critically damped spring
)

func (s Smoothing) String() string {
	switch s {
	case SmoothLerp:
		return "lerp"
	case SmoothSpring:
		return "spring"
	}
	return fmt.Sprintf("smoothing(%d)", int(s))
}

func ParseSmoothing(s string) (Smoothing, error) {
	switch s {
	case "lerp", "":
		return SmoothLerp, nil
	case "spring":
		return SmoothSpring, nil
	}
	return 0, fmt.Errorf("unknown smoothing %q (want lerp or spring)", s)
}

// Spring tuning for SmoothSpring.
const (
	springFrequency = 6.0
	springDamping   = 1.0
)

// Accelerometer is the pseudo tilt sensor of the tilt variant: the keyboard
// moves a target vector, and the applied acceleration (X, Y) follows it.
type Accelerometer struct {
	X, Y             float64
	TargetX, TargetY float64

	mode   Smoothing
	spring harmonica.Spring
	vx, vy float64 // spring velocity
}

func NewAccelerometer(mode Smoothing) *Accelerometer {
	a := &Accelerometer{mode: mode}
	if mode == SmoothSpring {
		a.spring = harmonica.NewSpring(harmonica.FPS(TickRate), springFrequency, springDamping)
	}
	a.Reset()
	return a
}

// Reset puts both the current and target vector at rest gravity.
func (a *Accelerometer) Reset() {
	a.X, a.Y = 0, BaseGravity
	a.TargetX, a.TargetY = 0, BaseGravity
	a.vx, a.vy = 0, 0
}

// Level points the target straight down at rest gravity.
func (a *Accelerometer) Level() {
	a.TargetX = 0
	a.TargetY = BaseGravity
}

// Nudge moves the target by (dx, dy), clamped to ±MaxTilt per axis.
func (a *Accelerometer) Nudge(dx, dy float64) {
	a.TargetX = clampF(a.TargetX+dx, -MaxTilt, MaxTilt)
	a.TargetY = clampF(a.TargetY+dy, -MaxTilt, MaxTilt)
}

// Update moves the applied vector one tick toward the target.
func (a *Accelerometer) Update() {
	if a.mode == SmoothSpring {
		a.X, a.vx = a.spring.Update(a.X, a.vx, a.TargetX)
		a.Y, a.vy = a.spring.Update(a.Y, a.vy, a.TargetY)
		return
	}
	a.X += (a.TargetX - a.X) * AccelSmoothing
	a.Y += (a.TargetY - a.Y) * AccelSmoothing
}

// Normalized returns the applied vector divided by MaxTilt.
func (a *Accelerometer) Normalized() (float64, float64) {
	return a.X / MaxTilt, a.Y / MaxTilt
}
