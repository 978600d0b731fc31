package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"arena/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws scene buffers as GL points and lines. Positions are in
// window pixels; the framebuffer scale is applied in the vertex shader.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uScale      int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Streaming buffer; each vertex: x, y, size, r, g, b, a, rotation.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(sim.VertexStride * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uScale = gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	gl.Uniform1f(r.uScale, 1.0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// BeginFrame clears to bg and binds the point program for a framebuffer of
// fbW x fbH pixels showing a window scale times smaller.
func (r *Renderer) BeginFrame(fbW, fbH int, scale float32, bg sim.RGB) {
	cr, cg, cb := bg.Floats()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.Uniform1f(r.uScale, scale)
}

func (r *Renderer) draw(mode uint32, buf []float32) {
	count := len(buf) / sim.VertexStride
	if count == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*sim.VertexStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(count))
}

// DrawPoints renders every vertex in buf as a point.
func (r *Renderer) DrawPoints(buf []float32) { r.draw(gl.POINTS, buf) }

// DrawLines renders buf as independent segments, two vertices each.
func (r *Renderer) DrawLines(buf []float32) { r.draw(gl.LINES, buf) }

// DrawScene draws the boundary, the particles and the tilt indicator in
// that order.
func (r *Renderer) DrawScene(sc *sim.Scene) {
	r.DrawPoints(sc.Boundary)
	r.DrawPoints(sc.Particles)
	r.DrawPoints(sc.Gauge)
	r.DrawLines(sc.Needle)
	gl.BindVertexArray(0)
}
