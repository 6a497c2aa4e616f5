package mesh

// emptyBounds is the starting box for accumulation.
var emptyBounds = Bounds{
	Min: [3]float32{1e10, 1e10, 1e10},
	Max: [3]float32{-1e10, -1e10, -1e10},
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy. The copy shares no buffers with m.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:     m.Name,
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint32, len(m.Indices)),
		Bounds:   m.Bounds,
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Indices, m.Indices)
	return c
}

// RecalculateBounds recomputes Bounds from the vertex positions.
// A mesh without vertices gets a zero box.
func (m *Mesh) RecalculateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := emptyBounds
	for i := range m.Vertices {
		updateBounds(&b, m.Vertices[i].Position)
	}
	m.Bounds = b
}

// MinY returns the lowest vertex Y, or 0 for an empty mesh.
func (m *Mesh) MinY() float32 {
	if len(m.Vertices) == 0 {
		return 0
	}
	minY := m.Vertices[0].Position[1]
	for i := range m.Vertices {
		if y := m.Vertices[i].Position[1]; y < minY {
			minY = y
		}
	}
	return minY
}

// Equal reports whether two meshes hold the same vertices and indices.
func (m *Mesh) Equal(other *Mesh) bool {
	if len(m.Vertices) != len(other.Vertices) || len(m.Indices) != len(other.Indices) {
		return false
	}
	for i := range m.Vertices {
		if m.Vertices[i] != other.Vertices[i] {
			return false
		}
	}
	for i := range m.Indices {
		if m.Indices[i] != other.Indices[i] {
			return false
		}
	}
	return true
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
