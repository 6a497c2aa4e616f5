package mapgen

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hexmap/internal/mesh"
)

func TestMaxTilesPerBatch(t *testing.T) {
	tests := []struct {
		v    int
		want int
	}{
		{1, 65535},
		{31, 2114},
		{8000, 8},
		{65535, 1},
	}
	for _, tt := range tests {
		got, err := MaxTilesPerBatch(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "V=%d", tt.v)
		assert.LessOrEqual(t, got*tt.v, mesh.MaxVertices)
		assert.Greater(t, (got+1)*tt.v, mesh.MaxVertices)
	}

	_, err := MaxTilesPerBatch(0)
	assert.Error(t, err)

	_, err = MaxTilesPerBatch(70000)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestSplitChunks(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, SplitChunks(items, 3))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7}}, SplitChunks(items, 10))
	assert.Len(t, SplitChunks(items, 0), 7)
	assert.Empty(t, SplitChunks([]int{}, 4))

	for n := 1; n <= 8; n++ {
		chunks := SplitChunks(items, n)
		want := int(gomath.Ceil(float64(len(items)) / float64(n)))
		assert.Len(t, chunks, want)
		var flat []int
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), n)
			flat = append(flat, c...)
		}
		assert.Equal(t, items, flat, "order preserved")
	}
}
