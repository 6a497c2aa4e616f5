package mapgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/internal/scene"
	"github.com/Faultbox/hexmap/internal/terrain"
)

// MaxTilesPerBatch returns how many tiles of vertexCount vertices fit in
// one combined mesh.
func MaxTilesPerBatch(vertexCount int) (int, error) {
	if vertexCount <= 0 {
		return 0, fmt.Errorf("vertex count must be positive, got %d", vertexCount)
	}
	if vertexCount > mesh.MaxVertices {
		return 0, &CapacityError{VertexCount: vertexCount, Limit: mesh.MaxVertices}
	}
	return mesh.MaxVertices / vertexCount, nil
}

// SplitChunks splits items into consecutive chunks of at most n, keeping
// order. n < 1 is treated as 1.
func SplitChunks[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	chunks := make([][]T, 0, (len(items)+n-1)/n)
	for i := 0; i < len(items); i += n {
		end := min(i+n, len(items))
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// regionVertexCount is the per-tile vertex budget for a region: the larger
// of its two prototypes, so mixed buckets stay under the limit.
func regionVertexCount(r *terrain.Region) int {
	v := r.Tile.VertexCount()
	if r.TileTop != nil {
		v = max(v, r.TileTop.VertexCount())
	}
	return v
}

// combineRegion bakes a region's tiles into as few combined entities as
// the vertex limit allows, replacing the tiles under root. It returns the
// number of combined entities.
func combineRegion(root *scene.Root, index int, r *terrain.Region, tiles []*scene.Entity, log *zap.Logger) (int, error) {
	if len(tiles) == 0 {
		return 0, nil
	}

	perBatch, err := MaxTilesPerBatch(regionVertexCount(r))
	if err != nil {
		return 0, err
	}

	chunks := SplitChunks(tiles, perBatch)
	for j, chunk := range chunks {
		parts := make([]mesh.Part, len(chunk))
		for k, t := range chunk {
			parts[k] = mesh.Part{Mesh: t.Mesh, Transform: t.LocalMatrix()}
		}

		name := fmt.Sprintf("%s%d", r.Name, j)
		combined, err := mesh.Combine(name, parts)
		if err != nil {
			return j, fmt.Errorf("combining region %q: %w", r.Name, err)
		}

		root.DetachAll(chunk)
		root.Attach(&scene.Entity{
			Name:     name,
			Mesh:     combined,
			Material: r.Material,
			Region:   index,
			Combined: true,
		})
	}

	log.Debug("combined region",
		zap.String("region", r.Name),
		zap.Int("tiles", len(tiles)),
		zap.Int("per_batch", perBatch),
		zap.Int("batches", len(chunks)))

	return len(chunks), nil
}
