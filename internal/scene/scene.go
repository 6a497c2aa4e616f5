// Package scene holds the generated map hierarchy: one root that owns
// every render entity produced by a generation.
package scene

import (
	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/pkg/math"
)

// Entity is one renderable object under the map root: either a single
// tile or a baked batch of tiles.
type Entity struct {
	Name     string
	Position math.Vec3
	Mesh     *mesh.Mesh
	Material string

	// Region is the index of the terrain region the entity belongs to.
	Region int
	// SameLevel is set on tiles placed from the flat-top prototype.
	SameLevel bool
	// Combined is set on entities baked from several tiles.
	Combined bool
	// Shared is set when Mesh is a prototype's mesh rather than an
	// entity-owned copy. Shared meshes must not be modified.
	Shared bool

	parent *Root
}

// LocalMatrix returns the entity's transform relative to the root.
// Rotation is always identity.
func (e *Entity) LocalMatrix() math.Mat4 {
	return math.Translate(e.Position.X, e.Position.Y, e.Position.Z)
}

// WorldMatrix returns the entity's transform including the root scale.
func (e *Entity) WorldMatrix() math.Mat4 {
	if e.parent == nil {
		return e.LocalMatrix()
	}
	return e.parent.Matrix().Mul(e.LocalMatrix())
}

// release drops the parent link and, unless the mesh is shared with a
// prototype, the mesh buffers.
func (e *Entity) release() {
	e.parent = nil
	if !e.Shared {
		e.Mesh = nil
	}
}

// Parent returns the root the entity is attached to, or nil.
func (e *Entity) Parent() *Root {
	return e.parent
}

// VertexCount returns the number of vertices the entity renders.
func (e *Entity) VertexCount() int {
	if e.Mesh == nil {
		return 0
	}
	return e.Mesh.VertexCount()
}

// Root owns the entities of one generated map.
type Root struct {
	Name  string
	Scale float32

	children []*Entity
}

// NewRoot creates an empty root with unit scale.
func NewRoot(name string) *Root {
	return &Root{Name: name, Scale: 1}
}

// Matrix returns the root transform (uniform scale about the origin).
func (r *Root) Matrix() math.Mat4 {
	return math.Scale(r.Scale, r.Scale, r.Scale)
}

// Attach adds e as a child, detaching it from any previous root.
func (r *Root) Attach(e *Entity) {
	if e.parent == r {
		return
	}
	if e.parent != nil {
		e.parent.Detach(e)
	}
	e.parent = r
	r.children = append(r.children, e)
}

// Detach removes e from the root and releases its mesh when the entity
// owns it. It reports whether e was a child.
func (r *Root) Detach(e *Entity) bool {
	for i, c := range r.children {
		if c != e {
			continue
		}
		r.children = append(r.children[:i], r.children[i+1:]...)
		e.release()
		return true
	}
	return false
}

// DetachAll removes every entity in es, releasing owned meshes as Detach
// does. Order of the remaining children is kept; entities not under r are
// ignored.
func (r *Root) DetachAll(es []*Entity) {
	drop := make(map[*Entity]struct{}, len(es))
	for _, e := range es {
		drop[e] = struct{}{}
	}
	kept := r.children[:0]
	for _, c := range r.children {
		if _, ok := drop[c]; ok {
			c.release()
			continue
		}
		kept = append(kept, c)
	}
	// Clear the tail so dropped entities can be collected
	for i := len(kept); i < len(r.children); i++ {
		r.children[i] = nil
	}
	r.children = kept
}

// Clear removes and releases every child.
func (r *Root) Clear() {
	for _, c := range r.children {
		c.release()
	}
	r.children = nil
}

// Children returns the attached entities in attach order.
// The slice must not be modified.
func (r *Root) Children() []*Entity {
	return r.children
}

// Len returns the number of attached entities.
func (r *Root) Len() int {
	return len(r.children)
}

// Objects returns the root's entities as OBJ export objects with world
// transforms applied.
func (r *Root) Objects() []mesh.Object {
	objs := make([]mesh.Object, 0, len(r.children))
	for _, c := range r.children {
		objs = append(objs, mesh.Object{
			Name:      c.Name,
			Mesh:      c.Mesh,
			Transform: c.WorldMatrix(),
			Material:  c.Material,
		})
	}
	return objs
}
