package mesh

import (
	"fmt"

	"github.com/Faultbox/hexmap/pkg/math"
)

// Part is one mesh placed by a transform, the input to Combine.
type Part struct {
	Mesh      *Mesh
	Transform math.Mat4
}

// Combine bakes parts into a single mesh in the parts' shared space.
// Positions and normals are transformed; indices are rebased onto the
// combined vertex buffer. It fails if the result would exceed MaxVertices.
func Combine(name string, parts []Part) (*Mesh, error) {
	total := 0
	indexTotal := 0
	for _, p := range parts {
		total += p.Mesh.VertexCount()
		indexTotal += len(p.Mesh.Indices)
	}
	if total > MaxVertices {
		return nil, fmt.Errorf("combining %d parts into %q: %d vertices exceeds limit of %d",
			len(parts), name, total, MaxVertices)
	}

	out := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0, total),
		Indices:  make([]uint32, 0, indexTotal),
	}

	for _, p := range parts {
		base := uint32(len(out.Vertices))
		identity := p.Transform.IsIdentity()

		for _, v := range p.Mesh.Vertices {
			if !identity {
				v.Position = p.Transform.TransformPoint(v.Position)
				v.Normal = math.FromArray(p.Transform.TransformDirection(v.Normal)).Normalize().Array()
			}
			out.Vertices = append(out.Vertices, v)
		}
		for _, idx := range p.Mesh.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}

	out.RecalculateBounds()
	return out, nil
}
