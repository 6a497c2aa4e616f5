package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/hexmap/pkg/math"
)

// Object is a named mesh with its world transform and material, one
// entry of an OBJ export.
type Object struct {
	Name      string
	Mesh      *Mesh
	Transform math.Mat4
	Material  string
}

// WriteOBJ writes objects as a single Wavefront OBJ document. Each object
// becomes an "o" group; positions and normals are written in world space.
func WriteOBJ(w io.Writer, objects []Object) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# hexmap export")

	var offset uint32 = 1 // OBJ indices are 1-based
	for _, obj := range objects {
		if obj.Mesh == nil {
			continue
		}
		fmt.Fprintf(bw, "o %s\n", obj.Name)
		if obj.Material != "" {
			fmt.Fprintf(bw, "usemtl %s\n", obj.Material)
		}

		for _, v := range obj.Mesh.Vertices {
			p := obj.Transform.TransformPoint(v.Position)
			fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
		}
		for _, v := range obj.Mesh.Vertices {
			n := math.FromArray(obj.Transform.TransformDirection(v.Normal)).Normalize()
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for i := 0; i+2 < len(obj.Mesh.Indices); i += 3 {
			a := obj.Mesh.Indices[i] + offset
			b := obj.Mesh.Indices[i+1] + offset
			c := obj.Mesh.Indices[i+2] + offset
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}

		offset += uint32(len(obj.Mesh.Vertices))
	}

	return bw.Flush()
}
