package noise

import (
	"fmt"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Quantized turns a HeightSource into a RegionSource by blending and
// classifying inside the provider.
type Quantized struct {
	Source HeightSource
}

// RegionMap implements RegionSource.
func (q Quantized) RegionMap(p Params, falloff *terrain.HeightField, regions []terrain.Region) (*terrain.RegionMap, error) {
	if len(regions) == 0 {
		return nil, terrain.ErrNoRegions
	}
	heights, err := q.Source.HeightField(p)
	if err != nil {
		return nil, err
	}
	if falloff != nil {
		if !heights.SameShape(falloff) {
			return nil, fmt.Errorf("falloff field is %dx%d, heights are %dx%d",
				falloff.Width, falloff.Height, heights.Width, heights.Height)
		}
		heights.SubtractClamped(falloff)
	}
	return terrain.ClassifyField(heights, regions), nil
}
