package mapgen

import (
	"fmt"
	"strings"

	"github.com/Faultbox/hexmap/internal/display"
	"github.com/Faultbox/hexmap/internal/falloff"
	"github.com/Faultbox/hexmap/internal/noise"
	"github.com/Faultbox/hexmap/internal/terrain"
)

// Mode selects what a generation produces.
type Mode int

const (
	// ColourMap draws the region colour of every cell.
	ColourMap Mode = iota
	// FalloffMap draws the falloff field in greyscale.
	FalloffMap
	// Mesh builds the tile hierarchy under the map root.
	Mesh
	// NoiseMap draws the raw height field in greyscale.
	NoiseMap
)

var modeNames = map[Mode]string{
	ColourMap:  "colour",
	FalloffMap: "falloff",
	Mesh:       "mesh",
	NoiseMap:   "noise",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name as printed by Mode.String. "color" is
// accepted as well.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "color" {
		return ColourMap, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown draw mode %q", s)
}

// Layout holds the tiling constants.
type Layout struct {
	// RowGap is subtracted from the row spacing of the staggered layout.
	RowGap float32
	// Epsilon is the bottom-ring match tolerance for skirted tiles
	// (0 = exact).
	Epsilon float32
}

// DefaultLayout returns the standard tiling constants.
func DefaultLayout() Layout {
	return Layout{RowGap: 0.1}
}

// Config describes one map generation.
type Config struct {
	Mode Mode

	Width    int
	Height   int
	MapScale float32 // uniform scale of the map root in Mesh mode; 0 means 1

	NoiseScale  float64
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Offset      [2]float64

	UseFalloff  bool
	CombineMesh bool

	// Regions in ascending threshold order.
	Regions []terrain.Region

	// Source supplies continuous heights. RegionSource, when set, takes
	// precedence and supplies classified cells directly.
	Source       noise.HeightSource
	RegionSource noise.RegionSource

	// Display receives the texture in ColourMap, FalloffMap and NoiseMap
	// modes.
	Display display.Surface

	Layout  Layout
	Falloff falloff.Options
}

// DefaultConfig returns a colour map configuration with the simplex
// provider and no regions.
func DefaultConfig() Config {
	return Config{
		Mode:        ColourMap,
		Width:       100,
		Height:      100,
		MapScale:    1,
		NoiseScale:  25,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		UseFalloff:  true,
		CombineMesh: true,
		Source:      noise.Simplex{},
		Layout:      DefaultLayout(),
		Falloff:     falloff.DefaultOptions(),
	}
}

func (c *Config) noiseParams() noise.Params {
	return noise.Params{
		Width:       c.Width,
		Height:      c.Height,
		Scale:       c.NoiseScale,
		Seed:        c.Seed,
		Octaves:     c.Octaves,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
		Offset:      c.Offset,
	}
}

func (c *Config) falloffOptions() falloff.Options {
	opts := c.Falloff
	if opts.A == 0 && opts.B == 0 {
		def := falloff.DefaultOptions()
		opts.A, opts.B = def.A, def.B
	}
	return opts
}

// Clamp forces the numeric settings into their valid ranges and reports
// which fields were changed.
func (c *Config) Clamp() []string {
	var changed []string
	if c.Width < 1 {
		c.Width = 1
		changed = append(changed, "width")
	}
	if c.Height < 1 {
		c.Height = 1
		changed = append(changed, "height")
	}
	if c.Lacunarity < 1 {
		c.Lacunarity = 1
		changed = append(changed, "lacunarity")
	}
	if c.Octaves < 0 {
		c.Octaves = 0
		changed = append(changed, "octaves")
	}
	return changed
}
