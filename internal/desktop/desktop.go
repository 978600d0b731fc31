// Package desktop runs the arena in a GLFW window with OpenGL point drawing.
package desktop

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"arena/internal/sim"
)

// Options controls presentation; physics choices live in the Simulation.
type Options struct {
	Colors  sim.ColorMode
	ShowFPS bool
}

// GLFW must be driven from the main OS thread.
func init() { runtime.LockOSThread() }

// Run opens the window and drives s until the window is closed or Escape is
// pressed. It must be called from the main goroutine.
func Run(s *sim.Simulation, opts Options) error {
	window, err := openWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var (
		clock sim.Clock
		meter sim.FrameMeter
		scene sim.Scene
		keys  = windowKeys(window)
	)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		controls := pollControls(keys)
		for n := clock.Advance(dt); n > 0; n-- {
			s.Apply(controls)
			s.Tick()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		winW, _ := window.GetSize()

		s.Build(&scene, opts.Colors, sim.WindowWidth)
		rend.BeginFrame(fbW, fbH, framebufferScale(fbW, winW), sim.Palette.Background)
		rend.DrawScene(&scene)
		window.SwapBuffers()

		if opts.ShowFPS {
			if fps, ok := meter.Frame(now); ok {
				fmt.Fprintf(os.Stderr, "%.1f fps, %d active, %d wall hits last tick\n",
					fps, s.Store.ActiveCount(), s.LastHits())
			}
		}
	}
	return nil
}
