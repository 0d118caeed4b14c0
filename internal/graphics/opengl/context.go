// Package opengl implements graphics.Context on top of the OpenGL 4.1 core bindings.
package opengl

import (
	"fmt"
	"strings"

	"comanche/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Context issues GL calls on the thread that made the window context current
type Context struct{}

var _ graphics.Context = (*Context)(nil)

// New loads the GL function pointers and applies the fixed render state.
// The window's context must be current on the calling thread.
func New(width, height int) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.LogicOp(gl.INVERT)

	return &Context{}, nil
}

// Version returns the GL version string reported by the driver
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func bufferTarget(t graphics.BufferTarget) uint32 {
	if t == graphics.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func shaderType(s graphics.ShaderStage) uint32 {
	if s == graphics.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
}

func (c *Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *Context) BindBuffer(target graphics.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (c *Context) BufferFloat32(target graphics.BufferTarget, data []float32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) BufferUint32(target graphics.BufferTarget, data []uint32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	if buffer != 0 {
		gl.DeleteBuffers(1, &buffer)
	}
}

func (c *Context) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, normalized, stride, uintptr(offset))
	gl.EnableVertexAttribArray(index)
}

func (c *Context) CreateShader(stage graphics.ShaderStage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (c *Context) CompileShader(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	log := strings.Repeat("\x00", graphics.InfoLogLimit)
	gl.GetShaderInfoLog(shader, graphics.InfoLogLimit, nil, gl.Str(log))
	return trimLog(log)
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	log := strings.Repeat("\x00", graphics.InfoLogLimit)
	gl.GetProgramInfoLog(program, graphics.InfoLogLimit, nil, gl.Str(log))
	return trimLog(log)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *Context) DrawIndexedTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

// trimLog cuts the driver log at its terminating NUL
func trimLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimRight(log, "\n")
}
