// Package mapgen assembles a terrain map: it classifies every cell of a
// noise field into a region, places staggered hex tiles at discrete
// levels, closes the gaps between levels with skirted tiles and bakes the
// tiles into vertex-limited combined meshes.
package mapgen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/display"
	"github.com/Faultbox/hexmap/internal/falloff"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/internal/scene"
	"github.com/Faultbox/hexmap/internal/terrain"
	"github.com/Faultbox/hexmap/internal/tile"
	"github.com/Faultbox/hexmap/pkg/math"
)

// Generator owns the map root and the cached falloff field.
// It is not safe for concurrent use.
type Generator struct {
	root *scene.Root

	falloff     *terrain.HeightField
	falloffOpts falloff.Options
}

// Result is the output of one generation.
type Result struct {
	Mode   Mode
	Width  int
	Height int

	// Colours holds the region colour of every cell, row-major.
	// It is filled in every mode.
	Colours []color.NRGBA

	Falloff *terrain.HeightField
	// Heights is the noise field before falloff blending; nil when the
	// config uses a RegionSource.
	Heights *terrain.HeightField
	Regions *terrain.RegionMap

	// Per-region counters, indexed like Config.Regions. Only Mesh mode
	// fills them.
	TileCounts      []int
	SameLevelCounts []int
	Batches         []int

	// Root is the generator's own map root, not a copy. The next Generate
	// in Mesh mode clears and refills it.
	Root    *scene.Root
	Texture *image.NRGBA
}

// New creates a generator with an empty map root.
func New() *Generator {
	return &Generator{root: scene.NewRoot("map")}
}

// Root returns the map root.
func (g *Generator) Root() *scene.Root {
	return g.root
}

// Falloff returns the cached falloff field, or nil before the first
// Validate or Generate.
func (g *Generator) Falloff() *terrain.HeightField {
	return g.falloff
}

// Validate clamps cfg into range and recomputes the falloff field for it.
// Hosts call it whenever the configuration is edited.
func (g *Generator) Validate(cfg *Config) {
	if changed := cfg.Clamp(); len(changed) > 0 {
		logger.Named("mapgen").Warn("clamped configuration", zap.Strings("fields", changed))
	}
	g.rebuildFalloff(cfg.Width, cfg.Height, cfg.falloffOptions())
}

func (g *Generator) rebuildFalloff(width, height int, opts falloff.Options) {
	g.falloff = falloff.GenerateWith(width, height, opts)
	g.falloffOpts = opts
}

// ensureFalloff rebuilds the falloff field only when the grid size or the
// curve changed since it was last built.
func (g *Generator) ensureFalloff(width, height int, opts falloff.Options) {
	if g.falloff != nil && g.falloff.Width == width && g.falloff.Height == height &&
		g.falloffOpts.A == opts.A && g.falloffOpts.B == opts.B && g.falloffOpts.Centered == opts.Centered {
		return
	}
	g.rebuildFalloff(width, height, opts)
}

// Generate runs a full generation. In Mesh mode the previous map is torn
// down once the fields are ready; every run rebuilds from scratch. A
// provider error leaves the previous map in place, a tiling or combining
// error leaves the root empty.
func (g *Generator) Generate(cfg Config) (*Result, error) {
	log := logger.Named("mapgen")
	start := time.Now()

	if err := checkConfig(&cfg); err != nil {
		return nil, err
	}

	g.ensureFalloff(cfg.Width, cfg.Height, cfg.falloffOptions())

	heights, regionMap, err := g.fields(&cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Mode:    cfg.Mode,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Colours: make([]color.NRGBA, cfg.Width*cfg.Height),
		Falloff: g.falloff,
		Heights: heights,
		Regions: regionMap,
		Root:    g.root,
	}

	if cfg.Mode == Mesh {
		g.root.Clear()
		g.root.Scale = 1
		if err := g.buildTiles(&cfg, res, log); err != nil {
			g.root.Clear()
			return nil, err
		}
	} else {
		for i, r := range regionMap.Indices {
			res.Colours[i] = cfg.Regions[r].Colour
		}
	}

	if err := g.draw(&cfg, res); err != nil {
		return nil, err
	}

	log.Info("generated map",
		zap.Stringer("mode", cfg.Mode),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int64("seed", cfg.Seed),
		zap.Int("entities", g.root.Len()),
		zap.Duration("took", time.Since(start)))

	return res, nil
}

// checkConfig rejects configurations that generation cannot run with.
// Out-of-range numbers are the host's job (Validate); only a zero grid is
// rejected here.
func checkConfig(cfg *Config) error {
	if cfg.Width < 1 || cfg.Height < 1 {
		return &ConfigurationError{Field: "size", Reason: fmt.Sprintf("%dx%d grid", cfg.Width, cfg.Height)}
	}
	if err := terrain.ValidateRegions(cfg.Regions); err != nil {
		return &ConfigurationError{Field: "regions", Reason: err.Error(), Err: err}
	}
	if cfg.Source == nil && cfg.RegionSource == nil {
		return &ConfigurationError{Field: "source", Reason: "no height or region source"}
	}

	switch cfg.Mode {
	case Mesh:
		for i := range cfg.Regions {
			r := &cfg.Regions[i]
			if r.Tile == nil {
				return &ConfigurationError{Field: "regions", Reason: fmt.Sprintf("region %q has no tile prototype", r.Name)}
			}
			if !cfg.CombineMesh {
				continue
			}
			for _, p := range []*tile.Prototype{r.Tile, r.TileTop} {
				if p != nil && p.VertexCount() > mesh.MaxVertices {
					return &CapacityError{
						Region:      r.Name,
						Prototype:   p.Name,
						VertexCount: p.VertexCount(),
						Limit:       mesh.MaxVertices,
					}
				}
			}
		}
	case ColourMap, FalloffMap, NoiseMap:
		if cfg.Display == nil {
			return &ConfigurationError{Field: "display", Reason: fmt.Sprintf("%s mode needs a display surface", cfg.Mode)}
		}
	default:
		return &ConfigurationError{Field: "mode", Reason: cfg.Mode.String()}
	}
	return nil
}

// fields produces the raw height field (if any) and the region map,
// applying the falloff blend exactly once.
func (g *Generator) fields(cfg *Config) (*terrain.HeightField, *terrain.RegionMap, error) {
	params := cfg.noiseParams()

	if cfg.RegionSource != nil {
		var ff *terrain.HeightField
		if cfg.UseFalloff {
			ff = g.falloff
		}
		rm, err := cfg.RegionSource.RegionMap(params, ff, cfg.Regions)
		if err != nil {
			return nil, nil, fmt.Errorf("generating region map: %w", err)
		}
		if rm == nil {
			return nil, nil, errors.New("region source returned no region map")
		}
		if err := checkRegionMap(rm, cfg); err != nil {
			return nil, nil, err
		}
		return nil, rm, nil
	}

	heights, err := cfg.Source.HeightField(params)
	if err != nil {
		return nil, nil, fmt.Errorf("generating height field: %w", err)
	}
	if heights == nil {
		return nil, nil, errors.New("height source returned no height field")
	}
	if heights.Width != cfg.Width || heights.Height != cfg.Height {
		return nil, nil, fmt.Errorf("height source returned %dx%d field for %dx%d map",
			heights.Width, heights.Height, cfg.Width, cfg.Height)
	}

	classified := heights
	if cfg.UseFalloff {
		classified = heights.Clone()
		classified.SubtractClamped(g.falloff)
	}
	return heights, terrain.ClassifyField(classified, cfg.Regions), nil
}

func checkRegionMap(rm *terrain.RegionMap, cfg *Config) error {
	if rm.Width != cfg.Width || rm.Height != cfg.Height {
		return fmt.Errorf("region source returned %dx%d map for %dx%d grid", rm.Width, rm.Height, cfg.Width, cfg.Height)
	}
	for i, r := range rm.Indices {
		if r < 0 || r >= len(cfg.Regions) {
			return fmt.Errorf("region source returned index %d at cell %d, have %d regions", r, i, len(cfg.Regions))
		}
	}
	return nil
}

// buildTiles scans the grid row by row, placing one tile per cell, then
// combines tiles per region when requested.
func (g *Generator) buildTiles(cfg *Config, res *Result, log *zap.Logger) error {
	regions := cfg.Regions
	rm := res.Regions

	factories := make([]*tile.Factory, len(regions))
	for i := range regions {
		factories[i] = tile.NewFactory(regions[i].Tile, tile.FactoryOptions{Epsilon: cfg.Layout.Epsilon})
	}
	buckets := make([][]*scene.Entity, len(regions))
	res.TileCounts = make([]int, len(regions))
	res.SameLevelCounts = make([]int, len(regions))
	res.Batches = make([]int, len(regions))

	grid := newStagger(regions[0].Tile.Bounds(), cfg.Width, cfg.Height, cfg.Layout.RowGap)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			ri := rm.At(x, y)
			r := &regions[ri]

			res.Colours[y*cfg.Width+x] = r.Colour

			pos := grid.position(x, y)
			pos.Y = float32(ri)

			var e *scene.Entity
			if sameLevel(rm, x, y) {
				proto := r.TileTop
				if proto == nil {
					proto = r.Tile
				}
				e = proto.Instantiate(pos)
				e.SameLevel = true
				res.SameLevelCounts[ri]++
			} else {
				e = factories[ri].GenerateTile(pos)
			}
			e.Name = fmt.Sprintf("%s_%d_%d", r.Name, x, y)
			e.Region = ri
			e.Material = r.Material

			g.root.Attach(e)
			buckets[ri] = append(buckets[ri], e)
			res.TileCounts[ri]++
		}
	}

	if cfg.CombineMesh {
		for i := range regions {
			n, err := combineRegion(g.root, i, &regions[i], buckets[i], log)
			if err != nil {
				var capErr *CapacityError
				if errors.As(err, &capErr) {
					capErr.Region = regions[i].Name
				}
				return err
			}
			res.Batches[i] = n
		}
	}

	if cfg.MapScale != 0 {
		g.root.Scale = cfg.MapScale
	}
	return nil
}

// sameLevel reports whether no neighbour of (x, y) is lower. Border cells
// never qualify since part of their neighbourhood is missing.
func sameLevel(rm *terrain.RegionMap, x, y int) bool {
	if x == 0 || y == 0 || x == rm.Width-1 || y == rm.Height-1 {
		return false
	}
	cur := rm.At(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if rm.At(x+dx, y+dy) < cur {
				return false
			}
		}
	}
	return true
}

// stagger places cells in brick-laid rows: odd rows shift half a tile
// along X, and rows overlap so hex tiles interlock.
type stagger struct {
	dispX     float32
	dispZ     float32
	oddShift  float32
	halfWidth int
	halfDepth int
}

func newStagger(b mesh.Bounds, width, height int, rowGap float32) stagger {
	return stagger{
		dispX:     b.Width(),
		dispZ:     b.Depth() - b.Width()/4 - rowGap,
		oddShift:  b.Width() / 2,
		halfWidth: width / 2,
		halfDepth: height / 2,
	}
}

func (s stagger) position(x, y int) math.Vec3 {
	pos := math.Vec3{
		X: float32(-s.halfWidth) + float32(x)*s.dispX,
		Z: float32(-s.halfDepth) + float32(y)*s.dispZ,
	}
	if y%2 == 1 {
		pos.X += s.oddShift
	}
	return pos
}

// draw hands the mode's texture to the display surface.
func (g *Generator) draw(cfg *Config, res *Result) error {
	var tex *image.NRGBA
	switch cfg.Mode {
	case ColourMap:
		tex = display.TextureFromColourMap(res.Colours, cfg.Width, cfg.Height)
	case FalloffMap:
		tex = display.TextureFromHeightMap(g.falloff)
	case NoiseMap:
		if res.Heights != nil {
			tex = display.TextureFromHeightMap(res.Heights)
		} else {
			tex = display.TextureFromRegionMap(res.Regions, len(cfg.Regions))
		}
	default:
		return nil
	}

	if err := cfg.Display.DrawTexture(tex); err != nil {
		return fmt.Errorf("drawing %s texture: %w", cfg.Mode, err)
	}
	res.Texture = tex
	return nil
}
