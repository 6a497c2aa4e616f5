package mesh

import (
	gomath "math"

	"github.com/Faultbox/hexmap/pkg/math"
)

// HexPrism builds a pointy-top hexagonal column centred on the origin.
// The top cap sits at y=height and the side walls run down to y=0, so the
// bottom ring is exactly at y=0. The prism has no bottom cap.
//
// Each side wall has its own four vertices so that walls are flat shaded.
func HexPrism(radius, height float32) *Mesh {
	ring := hexRing(radius)
	m := &Mesh{Name: "hex_prism"}

	addTopCap(m, ring, radius, height)

	for i := 0; i < 6; i++ {
		a := ring[i]
		b := ring[(i+1)%6]

		// Outward normal of the wall between corners a and b
		mid := math.Vec3{X: (a[0] + b[0]) / 2, Z: (a[1] + b[1]) / 2}
		normal := mid.Normalize().Array()

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{a[0], height, a[1]}, Normal: normal, TexCoord: [2]float32{0, 0}},
			Vertex{Position: [3]float32{b[0], height, b[1]}, Normal: normal, TexCoord: [2]float32{1, 0}},
			Vertex{Position: [3]float32{a[0], 0, a[1]}, Normal: normal, TexCoord: [2]float32{0, 1}},
			Vertex{Position: [3]float32{b[0], 0, b[1]}, Normal: normal, TexCoord: [2]float32{1, 1}},
		)
		m.Indices = append(m.Indices,
			base, base+2, base+1,
			base+1, base+2, base+3,
		)
	}

	m.RecalculateBounds()
	return m
}

// HexCap builds only the top cap of a HexPrism: the flat-top variant placed
// where no neighbour is lower and the walls would never be seen.
func HexCap(radius, height float32) *Mesh {
	m := &Mesh{Name: "hex_cap"}
	addTopCap(m, hexRing(radius), radius, height)
	m.RecalculateBounds()
	return m
}

// hexRing returns the six XZ corners of a pointy-top hexagon, starting at
// the top corner and going clockwise when seen from above.
func hexRing(radius float32) [6][2]float32 {
	var ring [6][2]float32
	for i := 0; i < 6; i++ {
		angle := gomath.Pi/2 - float64(i)*gomath.Pi/3
		ring[i] = [2]float32{
			radius * float32(gomath.Cos(angle)),
			radius * float32(gomath.Sin(angle)),
		}
	}
	// cos(pi/2) is not exactly zero in floating point
	ring[0][0], ring[3][0] = 0, 0
	return ring
}

func addTopCap(m *Mesh, ring [6][2]float32, radius, height float32) {
	up := [3]float32{0, 1, 0}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, height, 0}, Normal: up, TexCoord: [2]float32{0.5, 0.5}})
	for _, c := range ring {
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{c[0], height, c[1]},
			Normal:   up,
			TexCoord: [2]float32{0.5 + c[0]/(2*radius), 0.5 + c[1]/(2*radius)},
		})
	}
	for i := uint32(0); i < 6; i++ {
		m.Indices = append(m.Indices, center, center+1+i, center+1+(i+1)%6)
	}
}
