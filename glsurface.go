package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubeview/scene"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		uniform mat4 proj;
		void main() {
			gl_Position = proj * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// glSurface implements scene.Surface with OpenGL. Every Fill and Stroke
// uploads its triangles into one streaming VBO and draws them immediately,
// so draw order on screen is call order.
type glSurface struct {
	scene.Path

	width, height int

	program     uint32
	vao, vbo    uint32
	projUniform int32
	colUniform  int32

	fill      scene.Color
	stroke    scene.Color
	lineWidth float64

	scratch []float32
}

func newGLSurface(width, height int) (*glSurface, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	s := &glSurface{
		program:     program,
		projUniform: gl.GetUniformLocation(program, gl.Str("proj\x00")),
		colUniform:  gl.GetUniformLocation(program, gl.Str("colour\x00")),
		lineWidth:   1,
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	// Faces are translucent and rely on draw order, not depth testing.
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.Resize(width, height)
	return s, nil
}

// Resize sets the logical canvas size. Framebuffer pixels may differ on
// high-DPI displays; the viewport is set by the caller.
func (s *glSurface) Resize(width, height int) {
	s.width, s.height = width, height
	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.projUniform, 1, false, &proj[0])
}

func (s *glSurface) Size() (w, h int) { return s.width, s.height }

func (s *glSurface) Clear(c scene.Color) {
	r, g, b, a := c.Floats()
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *glSurface) SetFillColor(c scene.Color)   { s.fill = c }
func (s *glSurface) SetStrokeColor(c scene.Color) { s.stroke = c }
func (s *glSurface) SetLineWidth(w float64)       { s.lineWidth = w }

// Fill draws each subpath as a triangle fan, which is exact for the convex
// quads and discs the renderer produces.
func (s *glSurface) Fill() {
	for _, sub := range s.Subpaths() {
		s.scratch = s.scratch[:0]
		for _, p := range sub.Points {
			s.scratch = append(s.scratch, float32(p.X), float32(p.Y))
		}
		s.draw(gl.TRIANGLE_FAN, s.fill)
	}
}

// Stroke draws the stroke polygons as fans packed into one triangle list.
// Core profile contexts reject glLineWidth above 1, so wide lines are
// geometry.
func (s *glSurface) Stroke() {
	polys := s.StrokePolygons(s.lineWidth)
	if len(polys) == 0 {
		return
	}
	s.scratch = s.scratch[:0]
	for _, poly := range polys {
		for i := 1; i+1 < len(poly); i++ {
			for _, p := range [3]scene.Point2{poly[0], poly[i], poly[i+1]} {
				s.scratch = append(s.scratch, float32(p.X), float32(p.Y))
			}
		}
	}
	s.draw(gl.TRIANGLES, s.stroke)
}

func (s *glSurface) draw(mode uint32, c scene.Color) {
	n := len(s.scratch) / 2
	if n < 3 {
		return
	}
	r, g, b, a := c.Floats()
	gl.UseProgram(s.program)
	gl.Uniform4f(s.colUniform, r, g, b, a)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.scratch)*4, gl.Ptr(s.scratch), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(n))
}

func (s *glSurface) Delete() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link shader program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile shader %#x: %v", shaderType, log)
	}
	return shader, nil
}
