// Package tile builds tile entities from prototype meshes, including the
// skirted tiles that reach down to lower neighbours.
package tile

import (
	"errors"

	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/internal/scene"
	"github.com/Faultbox/hexmap/pkg/math"
)

// ErrEmptyMesh is returned when a prototype mesh has no vertices.
var ErrEmptyMesh = errors.New("prototype mesh has no vertices")

// Prototype is a fixed mesh that tiles are instanced or cloned from.
// The mesh is shared by every direct instance and is never modified.
type Prototype struct {
	Name string
	Mesh *mesh.Mesh

	// MinHeight is the lowest vertex Y, computed once when bound.
	MinHeight float32
}

// NewPrototype binds m as a prototype, recomputing its bounds from the
// vertices and its MinHeight.
func NewPrototype(name string, m *mesh.Mesh) (*Prototype, error) {
	if m == nil || m.VertexCount() == 0 {
		return nil, ErrEmptyMesh
	}
	m.RecalculateBounds()
	return &Prototype{
		Name:      name,
		Mesh:      m,
		MinHeight: m.MinY(),
	}, nil
}

// VertexCount returns the number of vertices every tile from this
// prototype carries.
func (p *Prototype) VertexCount() int {
	return p.Mesh.VertexCount()
}

// Bounds returns the prototype mesh bounds.
func (p *Prototype) Bounds() mesh.Bounds {
	return p.Mesh.Bounds
}

// Instantiate places the prototype mesh itself at pos without copying it.
func (p *Prototype) Instantiate(pos math.Vec3) *scene.Entity {
	return &scene.Entity{
		Name:     p.Name,
		Position: pos,
		Mesh:     p.Mesh,
		Shared:   true,
	}
}
