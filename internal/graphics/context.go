package graphics

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects the binding point a buffer object is bound to
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// ShaderStage selects the pipeline stage a shader object is compiled for
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// InfoLogLimit bounds the size of compile and link diagnostics, NUL included.
const InfoLogLimit = 512

// Context is the GPU capability threaded through resource construction and
// drawing. All objects are addressed by opaque handles; 0 means "none".
// Implementations are not safe for concurrent use and must be driven from the
// thread that owns the GL context.
type Context interface {
	Viewport(x, y, width, height int32)
	Clear()

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes float attributes at index and enables them.
	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset int)

	CreateShader(stage ShaderStage) uint32
	CompileShader(shader uint32, source string)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform called name.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)

	// DrawIndexedTriangles draws count uint32 indices from the bound element buffer.
	DrawIndexedTriangles(count int32)
}
