// Package graphicstest provides an in-memory graphics.Context that records
// every call and models enough GL state to test resource construction and
// frame submission without a GPU.
package graphicstest

import (
	"fmt"
	"strings"

	"comanche/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// CompileErrorLog is reported for every source the fake refuses to compile
const CompileErrorLog = "0:1(1): error: syntax error, unexpected end of file"

// LinkErrorLog is reported when a program is linked with a broken stage
const LinkErrorLog = "error: linking with uncompiled/unspecialized shader"

// Attrib is a recorded vertex attribute description
type Attrib struct {
	VAO        uint32
	Index      uint32
	Size       int32
	Normalized bool
	Stride     int32
	Offset     int
}

// Upload is a recorded uniform matrix upload
type Upload struct {
	Program  uint32
	Location int32
	Matrix   mgl32.Mat4
}

// Draw is a recorded indexed draw call with the state it was issued under
type Draw struct {
	VAO      uint32
	Element  uint32
	Program  uint32
	Count    int32
	Viewport [4]int32
}

type shaderObject struct {
	stage    graphics.ShaderStage
	source   string
	compiled bool
}

type programObject struct {
	shaders []uint32
	linked  bool
}

// Context is a recording fake of graphics.Context
type Context struct {
	next uint32

	BoundVAO     uint32
	BoundArray   uint32
	BoundElement uint32
	Program      uint32
	ViewportRect [4]int32

	vaoElement map[uint32]uint32
	shaders    map[uint32]*shaderObject
	programs   map[uint32]*programObject

	ArrayData   map[uint32][]float32
	ElementData map[uint32][]uint32
	Attribs     []Attrib
	Uploads     []Upload
	Draws       []Draw
	Clears      int
	Deleted     map[uint32]bool

	// OrphanElementBinds counts element buffer binds made with no vertex
	// array bound, which a core profile rejects
	OrphanElementBinds int

	// Calls lists method names in invocation order
	Calls []string
}

// New returns an empty fake context with an 800x600 viewport
func New() *Context {
	return &Context{
		next:         1,
		ViewportRect: [4]int32{0, 0, 800, 600},
		vaoElement:   make(map[uint32]uint32),
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		ArrayData:    make(map[uint32][]float32),
		ElementData:  make(map[uint32][]uint32),
		Deleted:      make(map[uint32]bool),
	}
}

var _ graphics.Context = (*Context)(nil)

func (c *Context) record(name string) {
	c.Calls = append(c.Calls, name)
}

func (c *Context) handle() uint32 {
	h := c.next
	c.next++
	return h
}

// Count returns how many times the named method was called
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call == name {
			n++
		}
	}
	return n
}

// ResetCalls forgets recorded calls, uploads, draws and clears but keeps object state
func (c *Context) ResetCalls() {
	c.Calls = nil
	c.Uploads = nil
	c.Draws = nil
	c.Clears = 0
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport")
	c.ViewportRect = [4]int32{x, y, width, height}
}

func (c *Context) Clear() {
	c.record("Clear")
	c.Clears++
}

func (c *Context) GenVertexArray() uint32 {
	c.record("GenVertexArray")
	return c.handle()
}

func (c *Context) BindVertexArray(vao uint32) {
	c.record("BindVertexArray")
	c.BoundVAO = vao
	// element array bindings belong to the vertex array
	c.BoundElement = c.vaoElement[vao]
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.record("DeleteVertexArray")
	c.Deleted[vao] = true
}

func (c *Context) GenBuffer() uint32 {
	c.record("GenBuffer")
	return c.handle()
}

func (c *Context) BindBuffer(target graphics.BufferTarget, buffer uint32) {
	c.record("BindBuffer")
	switch target {
	case graphics.ArrayBuffer:
		c.BoundArray = buffer
	case graphics.ElementArrayBuffer:
		if c.BoundVAO == 0 {
			c.OrphanElementBinds++
			return
		}
		c.BoundElement = buffer
		c.vaoElement[c.BoundVAO] = buffer
	}
}

func (c *Context) BufferFloat32(target graphics.BufferTarget, data []float32) {
	c.record("BufferFloat32")
	if target == graphics.ArrayBuffer && c.BoundArray != 0 {
		c.ArrayData[c.BoundArray] = append([]float32(nil), data...)
	}
}

func (c *Context) BufferUint32(target graphics.BufferTarget, data []uint32) {
	c.record("BufferUint32")
	if target == graphics.ElementArrayBuffer && c.BoundElement != 0 {
		c.ElementData[c.BoundElement] = append([]uint32(nil), data...)
	}
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer")
	c.Deleted[buffer] = true
}

func (c *Context) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int) {
	c.record("VertexAttribPointer")
	c.Attribs = append(c.Attribs, Attrib{
		VAO:        c.BoundVAO,
		Index:      index,
		Size:       size,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (c *Context) CreateShader(stage graphics.ShaderStage) uint32 {
	c.record("CreateShader")
	h := c.handle()
	c.shaders[h] = &shaderObject{stage: stage}
	return h
}

// CompileShader accepts any source that declares a main function.
func (c *Context) CompileShader(shader uint32, source string) {
	c.record("CompileShader")
	s, ok := c.shaders[shader]
	if !ok {
		return
	}
	s.source = source
	s.compiled = strings.Contains(source, "void main")
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	c.record("ShaderCompiled")
	s, ok := c.shaders[shader]
	return ok && s.compiled
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	c.record("ShaderInfoLog")
	if s, ok := c.shaders[shader]; !ok || s.compiled {
		return ""
	}
	return truncate(CompileErrorLog)
}

// ShaderStage returns the stage a shader object was created for
func (c *Context) ShaderStage(shader uint32) (graphics.ShaderStage, bool) {
	s, ok := c.shaders[shader]
	if !ok {
		return 0, false
	}
	return s.stage, true
}

// ShaderAttached reports whether shader is attached to program
func (c *Context) ShaderAttached(program, shader uint32) bool {
	p, ok := c.programs[program]
	if !ok {
		return false
	}
	for _, h := range p.shaders {
		if h == shader {
			return true
		}
	}
	return false
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader")
	c.Deleted[shader] = true
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	h := c.handle()
	c.programs[h] = &programObject{}
	return h
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader")
	if p, ok := c.programs[program]; ok {
		p.shaders = append(p.shaders, shader)
	}
}

// LinkProgram succeeds when one compiled vertex and one compiled fragment stage are attached.
func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram")
	p, ok := c.programs[program]
	if !ok {
		return
	}
	var vertex, fragment bool
	for _, h := range p.shaders {
		s, ok := c.shaders[h]
		if !ok || !s.compiled {
			p.linked = false
			return
		}
		switch s.stage {
		case graphics.VertexStage:
			vertex = true
		case graphics.FragmentStage:
			fragment = true
		}
	}
	p.linked = vertex && fragment
}

func (c *Context) ProgramLinked(program uint32) bool {
	c.record("ProgramLinked")
	p, ok := c.programs[program]
	return ok && p.linked
}

func (c *Context) ProgramInfoLog(program uint32) string {
	c.record("ProgramInfoLog")
	if p, ok := c.programs[program]; !ok || p.linked {
		return ""
	}
	return truncate(LinkErrorLog)
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram")
	c.Program = program
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram")
	c.Deleted[program] = true
}

// UniformLocation finds "uniform mat4 <name>" in any attached stage of a linked program.
func (c *Context) UniformLocation(program uint32, name string) int32 {
	c.record("UniformLocation")
	p, ok := c.programs[program]
	if !ok || !p.linked {
		return -1
	}
	decl := fmt.Sprintf("uniform mat4 %s;", name)
	for _, h := range p.shaders {
		if s, ok := c.shaders[h]; ok && strings.Contains(s.source, decl) {
			return 0
		}
	}
	return -1
}

func (c *Context) UniformMatrix4(location int32, m mgl32.Mat4) {
	c.record("UniformMatrix4")
	c.Uploads = append(c.Uploads, Upload{Program: c.Program, Location: location, Matrix: m})
}

func (c *Context) DrawIndexedTriangles(count int32) {
	c.record("DrawIndexedTriangles")
	c.Draws = append(c.Draws, Draw{
		VAO:      c.BoundVAO,
		Element:  c.BoundElement,
		Program:  c.Program,
		Count:    count,
		Viewport: c.ViewportRect,
	})
}

func truncate(s string) string {
	if len(s) > graphics.InfoLogLimit-1 {
		return s[:graphics.InfoLogLimit-1]
	}
	return s
}
