package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Simplex generates octave OpenSimplex noise.
type Simplex struct{}

// HeightField implements HeightSource.
func (Simplex) HeightField(p Params) (*terrain.HeightField, error) {
	n := opensimplex.New(p.Seed)
	return octaveField(p, n.Eval2)
}
