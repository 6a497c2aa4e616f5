// Package mesh provides the indexed triangle meshes tiles are built from,
// plus cloning, bounds maintenance, baking and export.
package mesh

import (
	"github.com/Faultbox/hexmap/pkg/math"
)

// MaxVertices is the most vertices a single mesh may address with 16-bit
// indices. Combined meshes never exceed it.
const MaxVertices = 65535

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle list with its axis-aligned bounds.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return math.Vec3{
		X: b.Max[0] - b.Min[0],
		Y: b.Max[1] - b.Min[1],
		Z: b.Max[2] - b.Min[2],
	}
}

// Width is the X extent.
func (b Bounds) Width() float32 { return b.Max[0] - b.Min[0] }

// Depth is the Z extent.
func (b Bounds) Depth() float32 { return b.Max[2] - b.Min[2] }
