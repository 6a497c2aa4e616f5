// Package noise provides the height and region fields a map is classified
// from. Providers are deterministic: identical Params give identical
// fields.
package noise

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Params are the inputs of a field generation.
type Params struct {
	Width       int
	Height      int
	Scale       float64
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Offset      [2]float64
}

// HeightSource produces a continuous height field with values in [0, 1].
type HeightSource interface {
	HeightField(p Params) (*terrain.HeightField, error)
}

// RegionSource produces an already classified region map. falloff is nil
// when falloff blending is disabled; otherwise the source blends it into
// its heights before classifying.
type RegionSource interface {
	RegionMap(p Params, falloff *terrain.HeightField, regions []terrain.Region) (*terrain.RegionMap, error)
}

const (
	minScale    = 0.0001
	offsetRange = 100000
)

// sampler returns raw noise for a point, roughly in [-1, 1].
type sampler func(x, y float64) float64

// octaveField layers octaves of sample over the grid and normalizes the
// result to [0, 1]. Every octave gets its own offset drawn from a PRNG
// seeded with p.Seed, so the same seed always samples the same area.
func octaveField(p Params, sample sampler) (*terrain.HeightField, error) {
	if p.Width < 1 || p.Height < 1 {
		return nil, fmt.Errorf("invalid field size %dx%d", p.Width, p.Height)
	}
	if p.Octaves < 0 {
		return nil, fmt.Errorf("invalid octave count %d", p.Octaves)
	}

	prng := rand.New(rand.NewSource(p.Seed))
	offsets := make([][2]float64, p.Octaves)
	for i := range offsets {
		offsets[i][0] = float64(prng.Intn(2*offsetRange)-offsetRange) + p.Offset[0]
		offsets[i][1] = float64(prng.Intn(2*offsetRange)-offsetRange) - p.Offset[1]
	}

	scale := p.Scale
	if scale <= 0 {
		scale = minScale
	}

	halfW := float64(p.Width) / 2
	halfH := float64(p.Height) / 2

	raw := make([]float64, p.Width*p.Height)
	lo, hi := gomath.Inf(1), gomath.Inf(-1)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			amplitude := 1.0
			frequency := 1.0
			h := 0.0

			for i := 0; i < p.Octaves; i++ {
				sx := (float64(x) - halfW + offsets[i][0]) / scale * frequency
				sy := (float64(y) - halfH + offsets[i][1]) / scale * frequency
				h += sample(sx, sy) * amplitude

				amplitude *= p.Persistence
				frequency *= p.Lacunarity
			}

			raw[y*p.Width+x] = h
			lo = gomath.Min(lo, h)
			hi = gomath.Max(hi, h)
		}
	}

	field := terrain.NewHeightField(p.Width, p.Height)
	if hi > lo {
		for i, h := range raw {
			field.Values[i] = terrain.Clamp01(float32((h - lo) / (hi - lo)))
		}
	}
	return field, nil
}

// New returns the height provider registered under kind.
func New(kind string) (HeightSource, error) {
	switch kind {
	case "simplex", "opensimplex", "":
		return Simplex{}, nil
	case "perlin":
		return Perlin{}, nil
	default:
		return nil, fmt.Errorf("unknown noise provider %q", kind)
	}
}
