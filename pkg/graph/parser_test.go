package graph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGraphFile writes content to a temp file and returns its path.
func writeGraphFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testGraphFMI describes this graph (edge labels are weights, node 2 is a
// sink):
//
//	3 --1--> 0 --2--> 1 --1--> 2
//	|        '-------5--------^
//	2
//	v
//	4 --------3----> 1
const testGraphFMI = `# toy graph
# weights are abstract units
5
6
0 100 49.86 8.64
1 101 49.87 8.65
2 102 49.88 8.66
3 103 49.89 8.67
4 104 49.90 8.68
0 1 2
0 2 5
1 2 1
3 0 1
3 4 2
4 1 3
`

func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Parse(writeGraphFile(t, "toy.fmi", testGraphFMI))
	require.NoError(t, err)
	return g
}

func TestParse(t *testing.T) {
	g := testGraph(t)

	assert.Equal(t, 5, g.NumNodes)
	assert.Equal(t, 6, g.NumEdges)

	assert.InDelta(t, 49.87, g.Node(1).Lat, 1e-9)
	assert.InDelta(t, 8.65, g.Node(1).Lon, 1e-9)

	// CSR adjacency, including the back-filled sink node 2.
	assert.Equal(t, []Edge{{0, 1, 2}, {0, 2, 5}}, g.OutgoingEdges(0))
	assert.Equal(t, []Edge{{1, 2, 1}}, g.OutgoingEdges(1))
	assert.Empty(t, g.OutgoingEdges(2))
	assert.Equal(t, []Edge{{3, 0, 1}, {3, 4, 2}}, g.OutgoingEdges(3))
	assert.Equal(t, []Edge{{4, 1, 3}}, g.OutgoingEdges(4))

	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 0, g.OutDegree(2))
}

func TestParseTrailingSinks(t *testing.T) {
	// The last nodes have no outgoing edges; their offsets must still close
	// the CSR array.
	g, err := Parse(writeGraphFile(t, "sinks.fmi", `3
1
0 0 1.0 1.0
1 0 2.0 2.0
2 0 3.0 3.0
0 1 7
`))
	require.NoError(t, err)
	assert.Equal(t, []Edge{{0, 1, 7}}, g.OutgoingEdges(0))
	assert.Empty(t, g.OutgoingEdges(1))
	assert.Empty(t, g.OutgoingEdges(2))
}

func TestParseZeroNodes(t *testing.T) {
	_, err := Parse(writeGraphFile(t, "empty.fmi", "0\n0\n"))
	assert.ErrorIs(t, err, ErrZeroNodes)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestParseTruncated(t *testing.T) {
	_, err := Parse(writeGraphFile(t, "short.fmi", `2
1
0 0 1.0 1.0
1 0 2.0 2.0
`))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseBadRecord(t *testing.T) {
	_, err := Parse(writeGraphFile(t, "bad.fmi", `1
1
0 0 1.0
`))
	assert.ErrorIs(t, err, ErrBadRecord)
}

func TestParseEdgeEndpointOutOfRange(t *testing.T) {
	// Edge endpoints outside the declared node range are rejected, not
	// written past the offset array.
	for name, edge := range map[string]string{
		"src too large": "2 1 7",
		"tgt too large": "0 2 7",
		"negative src":  "-1 1 7",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(writeGraphFile(t, "range.fmi", `2
1
0 0 1.0 1.0
1 0 2.0 2.0
`+edge+"\n"))
			assert.ErrorIs(t, err, ErrBadRecord)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.fmi"))
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestGridBounds(t *testing.T) {
	g := testGraph(t)
	gb := g.GridBounds()
	assert.InDelta(t, 49.86, gb.MinLat, 1e-9)
	assert.InDelta(t, 49.90, gb.MaxLat, 1e-9)
	assert.InDelta(t, 8.64, gb.MinLon, 1e-9)
	assert.InDelta(t, 8.68, gb.MaxLon, 1e-9)
}
