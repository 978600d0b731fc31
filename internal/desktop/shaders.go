package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Point vertex shader: screen-pixel positions with per-vertex size/colour.
// uScale maps window pixels to framebuffer pixels on HiDPI displays.
const pointVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;
uniform float uScale;

out vec4 vColor;

void main() {
    vec2 screenPos = (aPos + 0.5) * uScale;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uScale + 0.5));
    vColor = aColor;
}
` + "\x00"

// Point fragment shader: flat colour, square sprite.
const pointFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// infoLog reads the compile or link log of a shader or program object.
func infoLog(obj uint32, getiv func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	read(obj, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	defer free()
	gl.ShaderSource(sh, 1, src, nil)
	gl.CompileShader(sh)

	var ok int32
	if gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return sh, nil
}

// linkProgram builds a program from vertex and fragment source. The shader
// objects are released once linked.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	var shaders [2]uint32
	for i, st := range []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, vertSrc}, {gl.FRAGMENT_SHADER, fragSrc}} {
		sh, err := compileShader(st.kind, st.src)
		if err != nil {
			for _, prev := range shaders[:i] {
				gl.DeleteShader(prev)
			}
			return 0, err
		}
		shaders[i] = sh
	}

	prog := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	for _, sh := range shaders {
		gl.DetachShader(prog, sh)
		gl.DeleteShader(sh)
	}

	var ok int32
	if gl.GetProgramiv(prog, gl.LINK_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}
