// Package falloff generates the edge attenuation field that pushes the
// borders of a map towards the lowest region.
package falloff

import (
	gomath "math"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Options shapes the falloff curve and how the grid is sampled.
type Options struct {
	// A and B shape f(v) = v^A / (v^A + (B - B*v)^A).
	A float64
	B float64

	// Centered samples cell x at 2x/(width-1) - 1 instead of 2x/width - 1,
	// which makes the field exactly mirror-symmetric on both axes.
	Centered bool

	// Workers > 1 computes rows concurrently. Output is identical.
	Workers int
}

// DefaultOptions returns the standard curve (a=3, b=5) with 2x/width - 1
// sampling.
func DefaultOptions() Options {
	return Options{A: 3, B: 5}
}

// Generate returns the falloff field for a width x height grid with the
// default options.
func Generate(width, height int) *terrain.HeightField {
	return GenerateWith(width, height, DefaultOptions())
}

// GenerateWith returns the falloff field using opts.
// width and height must be at least 1.
func GenerateWith(width, height int, opts Options) *terrain.HeightField {
	field := terrain.NewHeightField(width, height)

	if opts.Workers <= 1 {
		for y := 0; y < height; y++ {
			fillRow(field, y, opts)
		}
		return field
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for y := 0; y < height; y++ {
		y := y // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			fillRow(field, y, opts)
			return nil
		})
	}
	_ = g.Wait() // rows never fail

	return field
}

func fillRow(field *terrain.HeightField, y int, opts Options) {
	ny := sample(y, field.Height, opts.Centered)
	for x := 0; x < field.Width; x++ {
		nx := sample(x, field.Width, opts.Centered)
		v := gomath.Max(gomath.Abs(nx), gomath.Abs(ny))
		field.Set(x, y, float32(Evaluate(v, opts.A, opts.B)))
	}
}

// sample maps cell i of n onto [-1, 1]: 2i/n - 1, or 2i/(n-1) - 1 when
// centered. The numerator is formed in integers so mirrored cells get
// exactly negated values.
func sample(i, n int, centered bool) float64 {
	if centered {
		if n == 1 {
			return 0
		}
		return float64(2*i-(n-1)) / float64(n-1)
	}
	return float64(2*i-n) / float64(n)
}

// Evaluate applies the falloff curve to a Chebyshev radius v in [0, 1].
func Evaluate(v, a, b float64) float64 {
	va := gomath.Pow(v, a)
	return va / (va + gomath.Pow(b-b*v, a))
}
