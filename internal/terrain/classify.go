package terrain

import (
	"errors"
	"fmt"
)

// ErrNoRegions is returned by ValidateRegions for an empty list.
var ErrNoRegions = errors.New("region list is empty")

// Classify returns the index of the first region whose threshold is >= h.
// Heights above every threshold fall into the last region.
// regions must not be empty.
func Classify(h float32, regions []Region) int {
	for i := range regions {
		if h <= regions[i].Height {
			return i
		}
	}
	return len(regions) - 1
}

// ClassifyField classifies every cell of a height field.
func ClassifyField(heights *HeightField, regions []Region) *RegionMap {
	rm := NewRegionMap(heights.Width, heights.Height)
	for i, h := range heights.Values {
		rm.Indices[i] = Classify(h, regions)
	}
	return rm
}

// ValidateRegions checks that the list is usable for classification:
// at least one region, thresholds in ascending order.
func ValidateRegions(regions []Region) error {
	if len(regions) == 0 {
		return ErrNoRegions
	}
	for i := 1; i < len(regions); i++ {
		if regions[i].Height < regions[i-1].Height {
			return fmt.Errorf("region %q threshold %.3f is below previous region %q threshold %.3f",
				regions[i].Name, regions[i].Height, regions[i-1].Name, regions[i-1].Height)
		}
	}
	return nil
}
