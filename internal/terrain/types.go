// Package terrain holds the per-cell grids a generation works on and the
// ordered region list used to classify heights.
package terrain

import (
	"image/color"

	"github.com/Faultbox/hexmap/internal/tile"
)

// HeightField is a width x height grid of float values, addressed as
// At(x, y). Both the falloff field and noise height fields use it.
type HeightField struct {
	Width  int
	Height int
	Values []float32 // row-major, index y*Width+x
}

// NewHeightField allocates a zeroed field.
func NewHeightField(width, height int) *HeightField {
	return &HeightField{
		Width:  width,
		Height: height,
		Values: make([]float32, width*height),
	}
}

// At returns the value at (x, y).
func (f *HeightField) At(x, y int) float32 {
	return f.Values[y*f.Width+x]
}

// Set stores v at (x, y).
func (f *HeightField) Set(x, y int, v float32) {
	f.Values[y*f.Width+x] = v
}

// SameShape reports whether other has the same dimensions.
func (f *HeightField) SameShape(other *HeightField) bool {
	return other != nil && f.Width == other.Width && f.Height == other.Height
}

// Clone returns a deep copy.
func (f *HeightField) Clone() *HeightField {
	c := &HeightField{Width: f.Width, Height: f.Height, Values: make([]float32, len(f.Values))}
	copy(c.Values, f.Values)
	return c
}

// SubtractClamped replaces every value h with clamp01(h - falloff) in place.
func (f *HeightField) SubtractClamped(falloff *HeightField) {
	for i, h := range f.Values {
		f.Values[i] = Clamp01(h - falloff.Values[i])
	}
}

// RegionMap is a grid of region indices with the same addressing as
// HeightField.
type RegionMap struct {
	Width   int
	Height  int
	Indices []int
}

// NewRegionMap allocates a region map with every cell in region 0.
func NewRegionMap(width, height int) *RegionMap {
	return &RegionMap{
		Width:   width,
		Height:  height,
		Indices: make([]int, width*height),
	}
}

// At returns the region index at (x, y).
func (m *RegionMap) At(x, y int) int {
	return m.Indices[y*m.Width+x]
}

// Set stores a region index at (x, y).
func (m *RegionMap) Set(x, y, region int) {
	m.Indices[y*m.Width+x] = region
}

// Region is one terrain classification bucket. Regions are kept in a list
// ordered by ascending Height; classification takes the first match.
type Region struct {
	Name     string
	Height   float32 // upper threshold, inclusive
	Colour   color.NRGBA
	Material string

	// Tile is the skirted prototype. TileTop is placed as-is on cells with
	// no lower neighbour; when nil, Tile is placed without a skirt instead.
	Tile    *tile.Prototype
	TileTop *tile.Prototype
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
