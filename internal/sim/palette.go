package sim

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the channels scaled to [0, 1].
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend mixes a toward b by t in Lab space, t clamped to [0, 1].
func (c RGB) Blend(o RGB, t float64) RGB {
	return fromColorful(c.colorful().BlendLab(o.colorful(), clampF(t, 0, 1)))
}

var Palette = struct {
	Background RGB
	Boundary   RGB
	Particle   RGB
	Gauge      RGB
	Needle     RGB
	Highlight  RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Boundary:   RGB{R: 100, G: 100, B: 100},
	Particle:   RGB{R: 0, G: 150, B: 255},
	Gauge:      RGB{R: 50, G: 50, B: 50},
	Needle:     RGB{R: 255, G: 0, B: 0},
	Highlight:  RGB{R: 255, G: 255, B: 255},
}

// ColorMode picks how particles are tinted.
type ColorMode int

const (
	ColorSolid ColorMode = iota // one colour for every particle
	ColorSpeed                  // hue from blue at rest to red at the speed cap
)

func (m ColorMode) String() string {
	switch m {
	case ColorSolid:
		return "solid"
	case ColorSpeed:
		return "speed"
	}
	return fmt.Sprintf("color(%d)", int(m))
}

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "solid", "":
		return ColorSolid, nil
	case "speed":
		return ColorSpeed, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want solid or speed)", s)
}

// Hue range for ColorSpeed, in degrees.
const (
	speedHueSlow = 210.0
	speedHueFast = 0.0
)

// SpeedColor maps speed in [0, max] onto the slow→fast hue ramp.
func SpeedColor(speed, max float64) RGB {
	t := 0.0
	if max > 0 {
		t = clampF(speed/max, 0, 1)
	}
	h := speedHueSlow + (speedHueFast-speedHueSlow)*t
	return fromColorful(colorful.Hsv(h, 1, 1))
}

// ParticleColor returns the draw colour of p under mode.
func ParticleColor(p *Particle, mode ColorMode, maxSpeed float64) RGB {
	if mode == ColorSpeed {
		return SpeedColor(p.Speed(), maxSpeed)
	}
	return Palette.Particle
}
