package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"arena/internal/sim"
)

// keyDown reports whether a key is held.
type keyDown func(glfw.Key) bool

func windowKeys(window *glfw.Window) keyDown {
	return func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
}

// pollControls samples the tilt keys. Keys are level-triggered: holding an
// arrow keeps nudging the target every tick, holding R keeps shaking.
func pollControls(down keyDown) sim.Controls {
	return sim.Controls{
		Left:  down(glfw.KeyLeft),
		Right: down(glfw.KeyRight),
		Up:    down(glfw.KeyUp),
		Down:  down(glfw.KeyDown),
		Level: down(glfw.KeySpace),
		Shake: down(glfw.KeyR),
	}
}

// framebufferScale returns framebuffer pixels per window pixel.
func framebufferScale(fbW, winW int) float32 {
	if winW <= 0 || fbW <= 0 {
		return 1
	}
	return float32(fbW) / float32(winW)
}
