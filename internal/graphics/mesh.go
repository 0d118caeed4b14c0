package graphics

// positionComponents is the number of floats per vertex position
const positionComponents = 3

// Mesh is an indexed triangle mesh uploaded once and drawn every frame
type Mesh struct {
	VAO   uint32
	VBO   uint32
	EBO   uint32
	Count int32
}

// NewMesh uploads tightly packed xyz positions and uint32 triangle indices
// under a single vertex array. Nothing is left bound when it returns.
func NewMesh(ctx Context, vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{Count: int32(len(indices))}

	m.VAO = ctx.GenVertexArray()
	ctx.BindVertexArray(m.VAO)

	m.VBO = ctx.GenBuffer()
	ctx.BindBuffer(ArrayBuffer, m.VBO)
	ctx.BufferFloat32(ArrayBuffer, vertices)

	m.EBO = ctx.GenBuffer()
	ctx.BindBuffer(ElementArrayBuffer, m.EBO)
	ctx.BufferUint32(ElementArrayBuffer, indices)

	// location 0: vec3 position
	ctx.VertexAttribPointer(0, positionComponents, false, positionComponents*4, 0)

	// the element buffer binding belongs to the vertex array and is released
	// with it; core profiles have no default vertex array to bind it on
	ctx.BindVertexArray(0)
	ctx.BindBuffer(ArrayBuffer, 0)

	return m
}

// NewCube uploads the unit cube
func NewCube(ctx Context) *Mesh {
	return NewMesh(ctx, CubeVertices[:], CubeIndices[:])
}

// Draw renders every index of the mesh and unbinds it again
func (m *Mesh) Draw(ctx Context) {
	ctx.BindVertexArray(m.VAO)
	ctx.DrawIndexedTriangles(m.Count)
	ctx.BindVertexArray(0)
}

// Delete releases all resources
func (m *Mesh) Delete(ctx Context) {
	ctx.DeleteVertexArray(m.VAO)
	ctx.DeleteBuffer(m.VBO)
	ctx.DeleteBuffer(m.EBO)
}
