package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"arena/internal/sim"
)

// windowHints request a fixed-size OpenGL 4.1 core context, the newest
// profile macOS offers.
var windowHints = []struct {
	hint  glfw.Hint
	value int
}{
	{glfw.ContextVersionMajor, 4},
	{glfw.ContextVersionMinor, 1},
	{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
	{glfw.OpenGLForwardCompatible, glfw.True},
	{glfw.Resizable, glfw.False},
}

// openWindow creates the arena window centred on the primary monitor with
// its context current and vsync on. The caller owns glfw.Terminate.
func openWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for _, h := range windowHints {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(sim.WindowWidth, sim.WindowHeight, sim.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if vm := mon.GetVideoMode(); vm != nil {
			window.SetPos((vm.Width-sim.WindowWidth)/2, (vm.Height-sim.WindowHeight)/2)
		}
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}
