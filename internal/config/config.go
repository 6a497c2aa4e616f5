// Package config handles hexmap configuration loading and management.
package config

// Config holds all generation settings.
type Config struct {
	Map     MapConfig      `yaml:"map"`
	Noise   NoiseConfig    `yaml:"noise"`
	Output  OutputConfig   `yaml:"output"`
	Layout  LayoutConfig   `yaml:"layout"`
	Regions []RegionConfig `yaml:"regions"`
	Logging LoggingConfig  `yaml:"logging"`
}

// MapConfig holds the grid and assembly settings.
type MapConfig struct {
	Mode        string        `yaml:"mode"` // colour, falloff, mesh or noise
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Scale       float32       `yaml:"scale"`
	UseFalloff  bool          `yaml:"use_falloff"`
	CombineMesh bool          `yaml:"combine_mesh"`
	Falloff     FalloffConfig `yaml:"falloff"`
}

// FalloffConfig holds the falloff curve settings.
type FalloffConfig struct {
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`
	Centered bool    `yaml:"centered"`
	Workers  int     `yaml:"workers"`
}

// NoiseConfig holds the height field provider settings.
type NoiseConfig struct {
	Provider    string     `yaml:"provider"` // simplex or perlin
	Scale       float64    `yaml:"scale"`
	Seed        int64      `yaml:"seed"`
	Octaves     int        `yaml:"octaves"`
	Persistence float64    `yaml:"persistence"`
	Lacunarity  float64    `yaml:"lacunarity"`
	Offset      [2]float64 `yaml:"offset"`

	// ClassifyInProvider blends falloff and classifies inside the provider
	// instead of the generator.
	ClassifyInProvider bool `yaml:"classify_in_provider"`
}

// OutputConfig holds where results are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
	Scale  int    `yaml:"scale"`  // pixels per cell in texture output
}

// LayoutConfig holds the tiling constants and the default tile shape.
type LayoutConfig struct {
	RowGap     float32 `yaml:"row_gap"`
	Epsilon    float32 `yaml:"epsilon"`
	TileRadius float32 `yaml:"tile_radius"`
	TileHeight float32 `yaml:"tile_height"`
}

// RegionConfig describes one terrain region.
type RegionConfig struct {
	Name     string     `yaml:"name"`
	Height   float32    `yaml:"height"`
	Colour   string     `yaml:"colour"` // #RRGGBB or #RRGGBBAA
	Material string     `yaml:"material"`
	Tile     TileConfig `yaml:"tile"`
}

// TileConfig overrides the layout tile shape for a region. Zero values
// fall back to the layout defaults.
type TileConfig struct {
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"` // console or json, for the log file
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Mode:        "colour",
			Width:       100,
			Height:      100,
			Scale:       1,
			UseFalloff:  true,
			CombineMesh: true,
			Falloff: FalloffConfig{
				A: 3,
				B: 5,
			},
		},
		Noise: NoiseConfig{
			Provider:    "simplex",
			Scale:       25,
			Seed:        0,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2,
		},
		Output: OutputConfig{
			Dir:    "output",
			Prefix: "hexmap",
			Format: "png",
			Scale:  1,
		},
		Layout: LayoutConfig{
			RowGap:     0.1,
			Epsilon:    0,
			TileRadius: 1,
			TileHeight: 0.5,
		},
		Regions: DefaultRegions(),
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "console",
			LogFile: "",
		},
	}
}

// DefaultRegions returns an island palette from deep water to snow.
func DefaultRegions() []RegionConfig {
	return []RegionConfig{
		{Name: "deep_water", Height: 0.3, Colour: "#1f3c8a", Material: "water"},
		{Name: "water", Height: 0.4, Colour: "#3662c9", Material: "water"},
		{Name: "sand", Height: 0.45, Colour: "#d2d07d", Material: "sand"},
		{Name: "grass", Height: 0.55, Colour: "#569718", Material: "grass"},
		{Name: "forest", Height: 0.6, Colour: "#3e6b12", Material: "grass"},
		{Name: "rock", Height: 0.7, Colour: "#5e4436", Material: "rock"},
		{Name: "mountain", Height: 0.9, Colour: "#4b3c35", Material: "rock"},
		{Name: "snow", Height: 1, Colour: "#ffffff", Material: "snow"},
	}
}
