package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagMode     = flag.String("mode", "", "Draw mode: colour, falloff, mesh or noise")
	flagWidth    = flag.Int("width", 0, "Map width in cells")
	flagHeight   = flag.Int("height", 0, "Map height in cells")
	flagSeed     = flag.Int64("seed", 0, "Noise seed")
	flagOut      = flag.String("out", "", "Output directory")
	flagProvider = flag.String("provider", "", "Noise provider: simplex or perlin")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Map.Mode = *flagMode
	}
	if *flagWidth > 0 {
		cfg.Map.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Map.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagProvider != "" {
		cfg.Noise.Provider = *flagProvider
	}
}
