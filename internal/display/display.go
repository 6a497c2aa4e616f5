// Package display turns generated buffers into images and hands them to
// a drawing surface.
package display

import (
	"image"
	"image/color"

	"github.com/Faultbox/hexmap/internal/terrain"
)

// Surface receives finished textures.
type Surface interface {
	DrawTexture(tex *image.NRGBA) error
}

// TextureFromColourMap builds a width x height image from a row-major
// colour buffer. Map row 0 is the bottom image row.
func TextureFromColourMap(colours []color.NRGBA, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		dstY := height - 1 - y // Flip Y
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, dstY, colours[y*width+x])
		}
	}
	return img
}

// TextureFromHeightMap renders a field as greyscale, 0 black and 1 white.
func TextureFromHeightMap(field *terrain.HeightField) *image.NRGBA {
	colours := make([]color.NRGBA, len(field.Values))
	for i, v := range field.Values {
		g := uint8(terrain.Clamp01(v)*255 + 0.5)
		colours[i] = color.NRGBA{R: g, G: g, B: g, A: 255}
	}
	return TextureFromColourMap(colours, field.Width, field.Height)
}

// TextureFromRegionMap renders region indices as greyscale, spreading
// indices 0..regions-1 over black to white.
func TextureFromRegionMap(rm *terrain.RegionMap, regions int) *image.NRGBA {
	field := terrain.NewHeightField(rm.Width, rm.Height)
	if regions > 1 {
		for i, r := range rm.Indices {
			field.Values[i] = float32(r) / float32(regions-1)
		}
	}
	return TextureFromHeightMap(field)
}
