package spatial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmff/pkg/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.fmi")
	require.NoError(t, os.WriteFile(path, []byte(`4
1
0 0 49.860 8.640
1 0 49.870 8.650
2 0 49.880 8.660
3 0 49.990 8.990
0 1 1
`), 0o644))
	g, err := graph.Parse(path)
	require.NoError(t, err)
	return g
}

func TestNearestNodeExactHit(t *testing.T) {
	idx := NewIndex(testGraph(t))

	id, dist, err := idx.NearestNode(49.870, 8.650)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.InDelta(t, 0.0, dist, 0.01)
}

func TestNearestNodeSnapsToClosest(t *testing.T) {
	idx := NewIndex(testGraph(t))

	// Slightly northeast of node 2, far from the outlier node 3.
	id, dist, err := idx.NearestNode(49.881, 8.661)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Greater(t, dist, 0.0)
	assert.Less(t, dist, 500.0, "snap distance in meters")
}
