// Package main is the entry point for the hexmap generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/config"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/internal/mapgen"
	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/internal/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.InitWithOptions(cfg.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== hexmap ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	surface := cfg.Surface()

	mc, err := cfg.MapgenConfig(surface)
	if err != nil {
		return err
	}

	g := mapgen.New()
	g.Validate(&mc)

	res, err := g.Generate(mc)
	if err != nil {
		return err
	}

	if mc.Mode != mapgen.Mesh {
		logger.Info("wrote texture", zap.String("path", surface.LastPath()))
		return nil
	}

	path := filepath.Join(cfg.Output.Dir,
		fmt.Sprintf("%s_%s.obj", cfg.Output.Prefix, time.Now().Format("2006-01-02_15-04-05")))
	if err := writeOBJ(path, res.Root); err != nil {
		return err
	}

	logger.Info("wrote mesh",
		zap.String("path", path),
		zap.Int("entities", res.Root.Len()),
		zap.Ints("tiles", res.TileCounts),
		zap.Ints("batches", res.Batches))
	return nil
}

func writeOBJ(path string, root *scene.Root) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := mesh.WriteOBJ(f, root.Objects()); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	return f.Close()
}
