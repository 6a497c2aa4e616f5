package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/Faultbox/hexmap/internal/display"
	"github.com/Faultbox/hexmap/internal/falloff"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/internal/mapgen"
	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/internal/noise"
	"github.com/Faultbox/hexmap/internal/terrain"
	"github.com/Faultbox/hexmap/internal/tile"
)

// Validate clamps numeric settings into range and checks that names and
// colours parse.
func (c *Config) Validate() error {
	if c.Map.Width < 1 {
		c.Map.Width = 1
	}
	if c.Map.Height < 1 {
		c.Map.Height = 1
	}
	if c.Noise.Lacunarity < 1 {
		c.Noise.Lacunarity = 1
	}
	if c.Noise.Octaves < 0 {
		c.Noise.Octaves = 0
	}
	if c.Layout.TileRadius <= 0 {
		c.Layout.TileRadius = 1
	}
	if c.Layout.TileHeight <= 0 {
		c.Layout.TileHeight = 0.5
	}

	if _, err := mapgen.ParseMode(c.Map.Mode); err != nil {
		return fmt.Errorf("map.mode: %w", err)
	}
	if _, err := noise.New(c.Noise.Provider); err != nil {
		return fmt.Errorf("noise.provider: %w", err)
	}
	switch strings.ToLower(c.Output.Format) {
	case "", "png", "bmp":
	default:
		return fmt.Errorf("output.format: unsupported image format %q", c.Output.Format)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("regions: %w", terrain.ErrNoRegions)
	}
	for i, r := range c.Regions {
		if r.Name == "" {
			return fmt.Errorf("regions[%d]: missing name", i)
		}
		if _, err := ParseColour(r.Colour); err != nil {
			return fmt.Errorf("regions[%d] %q: %w", i, r.Name, err)
		}
	}
	return nil
}

// ParseColour parses "#RRGGBB" or "#RRGGBBAA" (the # is optional).
func ParseColour(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// BuildRegions turns the region list into classifier regions with hex
// prism prototypes and flat cap prototypes for same-level tiles.
func (c *Config) BuildRegions() ([]terrain.Region, error) {
	regions := make([]terrain.Region, len(c.Regions))
	for i, rc := range c.Regions {
		colour, err := ParseColour(rc.Colour)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", rc.Name, err)
		}

		radius, height := rc.Tile.Radius, rc.Tile.Height
		if radius <= 0 {
			radius = c.Layout.TileRadius
		}
		if height <= 0 {
			height = c.Layout.TileHeight
		}

		prism, err := tile.NewPrototype(rc.Name, mesh.HexPrism(radius, height))
		if err != nil {
			return nil, fmt.Errorf("region %q tile: %w", rc.Name, err)
		}
		top, err := tile.NewPrototype(rc.Name+"_top", mesh.HexCap(radius, height))
		if err != nil {
			return nil, fmt.Errorf("region %q top tile: %w", rc.Name, err)
		}

		material := rc.Material
		if material == "" {
			material = rc.Name
		}

		regions[i] = terrain.Region{
			Name:     rc.Name,
			Height:   rc.Height,
			Colour:   colour,
			Material: material,
			Tile:     prism,
			TileTop:  top,
		}
	}
	return regions, nil
}

// LoggerOptions returns the logger settings for the CLI.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.Options{
		Level:   c.Logging.Level,
		Format:  c.Logging.Format,
		Console: true,
	}
	if c.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(c.Logging.LogFile)
	}
	return opts
}

// Surface returns the file surface texture modes draw to.
func (c *Config) Surface() *display.FileSurface {
	s := display.NewFileSurface(c.Output.Dir, c.Output.Prefix)
	if c.Output.Format != "" {
		s.Format = strings.ToLower(c.Output.Format)
	}
	s.Scale = c.Output.Scale
	return s
}

// MapgenConfig builds a generation config drawing to surface.
func (c *Config) MapgenConfig(surface display.Surface) (mapgen.Config, error) {
	mode, err := mapgen.ParseMode(c.Map.Mode)
	if err != nil {
		return mapgen.Config{}, err
	}
	source, err := noise.New(c.Noise.Provider)
	if err != nil {
		return mapgen.Config{}, err
	}
	regions, err := c.BuildRegions()
	if err != nil {
		return mapgen.Config{}, err
	}

	mc := mapgen.Config{
		Mode:        mode,
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		MapScale:    c.Map.Scale,
		NoiseScale:  c.Noise.Scale,
		Seed:        c.Noise.Seed,
		Octaves:     c.Noise.Octaves,
		Persistence: c.Noise.Persistence,
		Lacunarity:  c.Noise.Lacunarity,
		Offset:      c.Noise.Offset,
		UseFalloff:  c.Map.UseFalloff,
		CombineMesh: c.Map.CombineMesh,
		Regions:     regions,
		Source:      source,
		Display:     surface,
		Layout: mapgen.Layout{
			RowGap:  c.Layout.RowGap,
			Epsilon: c.Layout.Epsilon,
		},
		Falloff: falloff.Options{
			A:        c.Map.Falloff.A,
			B:        c.Map.Falloff.B,
			Centered: c.Map.Falloff.Centered,
			Workers:  c.Map.Falloff.Workers,
		},
	}
	if c.Noise.ClassifyInProvider {
		mc.Source = nil
		mc.RegionSource = noise.Quantized{Source: source}
	}
	return mc, nil
}
