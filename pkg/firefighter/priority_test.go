package firefighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// priorityGraph puts a poorly connected node close to the fire and a set of
// well-connected nodes farther out. Out-degrees of the candidates 1..5 are
// 1, 2, 2, 2, 3; the 25th percentile is 2, so node 1 is the only
// low-priority candidate.
const priorityGraph = `9
15
0 0 1.0 1.0
1 0 1.0 1.0
2 0 1.0 1.0
3 0 1.0 1.0
4 0 1.0 1.0
5 0 1.0 1.0
6 0 1.0 1.0
7 0 1.0 1.0
8 0 1.0 1.0
0 1 4
0 2 6
0 3 6
0 4 6
0 5 8
1 6 9
2 6 9
2 7 9
3 6 9
3 7 9
4 6 9
4 7 9
5 6 9
5 7 9
5 8 9
`

func TestPrioritySacrificesLowPriorityNodes(t *testing.T) {
	g := buildGraph(t, priorityGraph)
	settings := Settings{NumFfs: 1, StrategyEvery: 1, RootIDs: []int{0}}
	p, err := NewProblem(g, settings, NewPriorityStrategy(g))
	require.NoError(t, err)

	p.Simulate()
	store := p.NodeData()

	// All high-priority nodes fill their allotments before node 1 is even
	// considered; by then its distance budget is spent and it burns.
	for _, id := range []int{2, 3, 4, 5} {
		assert.True(t, store.IsDefended(id), "high-priority node %d", id)
	}
	assert.True(t, store.IsBurning(1), "low-priority node is sacrificed")

	assert.Equal(t, []int{2}, store.GetDefendedAt(1))
	assert.Equal(t, []int{5}, store.GetDefendedAt(4))
}

func TestPriorityHandlesNoCandidates(t *testing.T) {
	// A lone burning sink yields no degree priorities at all.
	g := buildGraph(t, `1
0
0 0 1.0 1.0
`)
	settings := Settings{NumFfs: 1, StrategyEvery: 1, RootIDs: []int{0}}
	p, err := NewProblem(g, settings, NewPriorityStrategy(g))
	require.NoError(t, err)

	p.Simulate()
	assert.Zero(t, p.NodeData().NumDefended())
	assert.Equal(t, 1, p.NodeData().NumBurning())
}
