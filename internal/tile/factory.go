package tile

import (
	"github.com/Faultbox/hexmap/internal/scene"
	"github.com/Faultbox/hexmap/pkg/math"
)

// FactoryOptions tunes how the bottom ring of a prototype is detected.
type FactoryOptions struct {
	// Epsilon is the tolerance for matching a vertex Y against MinHeight.
	// Zero means exact equality, which is correct for authored meshes whose
	// bottom ring sits at one exact value.
	Epsilon float32
}

// Factory produces skirted tiles from one prototype.
type Factory struct {
	proto *Prototype
	opts  FactoryOptions
}

// NewFactory binds a factory to p.
func NewFactory(p *Prototype, opts FactoryOptions) *Factory {
	return &Factory{proto: p, opts: opts}
}

// Prototype returns the bound prototype.
func (f *Factory) Prototype() *Prototype {
	return f.proto
}

// GenerateTile returns a new tile at pos whose bottom ring is pulled down
// by pos.Y, so a tile standing on level n reaches level 0 and closes the
// gap to any lower neighbour. The prototype is cloned, never modified.
func (f *Factory) GenerateTile(pos math.Vec3) *scene.Entity {
	m := f.proto.Mesh.Clone()

	for i := range m.Vertices {
		if f.isBottom(m.Vertices[i].Position[1]) {
			m.Vertices[i].Position[1] -= pos.Y
		}
	}
	m.RecalculateBounds()

	return &scene.Entity{
		Name:     f.proto.Name,
		Position: pos,
		Mesh:     m,
	}
}

func (f *Factory) isBottom(y float32) bool {
	if f.opts.Epsilon == 0 {
		return y == f.proto.MinHeight
	}
	d := y - f.proto.MinHeight
	return d <= f.opts.Epsilon && d >= -f.opts.Epsilon
}
