package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Perlin generates octave Perlin noise. Octaves are layered here, so the
// underlying generator runs a single octave per sample.
type Perlin struct{}

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// HeightField implements HeightSource.
func (Perlin) HeightField(p Params) (*terrain.HeightField, error) {
	gen := perlin.NewPerlin(perlinAlpha, perlinBeta, 1, p.Seed)
	return octaveField(p, gen.Noise2D)
}
