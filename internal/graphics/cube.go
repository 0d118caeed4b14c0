package graphics

// CubeVertices holds the eight corners of a unit cube centred on the origin
var CubeVertices = [24]float32{
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
}

// CubeIndices lists two counter-clockwise triangles per face
var CubeIndices = [36]uint32{
	0, 1, 2, 2, 3, 0, // +z
	5, 6, 7, 7, 4, 5, // -z
	3, 2, 6, 6, 7, 3, // +y
	4, 5, 1, 1, 0, 4, // -y
	1, 5, 6, 6, 2, 1, // +x
	4, 0, 3, 3, 7, 4, // -x
}
