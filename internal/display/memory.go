package display

import "image"

// MemorySurface keeps every texture it receives.
type MemorySurface struct {
	Textures []*image.NRGBA
}

// DrawTexture implements Surface.
func (m *MemorySurface) DrawTexture(tex *image.NRGBA) error {
	m.Textures = append(m.Textures, tex)
	return nil
}

// Last returns the most recent texture, or nil.
func (m *MemorySurface) Last() *image.NRGBA {
	if len(m.Textures) == 0 {
		return nil
	}
	return m.Textures[len(m.Textures)-1]
}
