package firefighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndefendedRootsDropsEnclosedRoot(t *testing.T) {
	g := buildGraph(t, chainGraph)
	store := NewNodeDataStorage()
	store.MarkBurning([]int{0}, 0)

	ur := newUndefendedRoots([]int{0})
	require.Len(t, ur, 1)

	// Node 1 undefended: the root still threatens the chain.
	_, changed := ur.recompute(g, store)
	assert.False(t, changed)
	assert.Len(t, ur, 1)

	// Defending 1 walls the root off entirely.
	store.MarkDefended([]int{1}, 1)
	roots, changed := ur.recompute(g, store)
	assert.True(t, changed)
	assert.Empty(t, roots)
	assert.Empty(t, ur)
}

func TestUndefendedRootsKeepsThreateningRoots(t *testing.T) {
	// Two disconnected chains: 0 -> 1 and 2 -> 3.
	g := buildGraph(t, `4
2
0 0 1.0 1.0
1 0 1.0 1.0
2 0 1.0 1.0
3 0 1.0 1.0
0 1 1
2 3 1
`)
	store := NewNodeDataStorage()
	store.MarkBurning([]int{0, 2}, 0)
	ur := newUndefendedRoots([]int{0, 2})

	store.MarkDefended([]int{1}, 1)
	roots, changed := ur.recompute(g, store)
	assert.True(t, changed)
	assert.Equal(t, []int{2}, roots)

	// Recomputing again without state change reports no change.
	_, changed = ur.recompute(g, store)
	assert.False(t, changed)
}

func TestUndefendedRootsFollowsBurningFrontier(t *testing.T) {
	g := buildGraph(t, chainGraph)
	store := NewNodeDataStorage()
	store.MarkBurning([]int{0}, 0)
	ur := newUndefendedRoots([]int{0})

	// Fire advances to 1; the risky frontier follows to 2.
	store.MarkBurning([]int{1}, 2)
	_, changed := ur.recompute(g, store)
	assert.False(t, changed)
	assert.Contains(t, ur[0].risky, 2)

	// Once 2 burns too, nothing undefended is reachable and the root drops.
	store.MarkBurning([]int{2}, 5)
	roots, changed := ur.recompute(g, store)
	assert.True(t, changed)
	assert.Empty(t, roots)
}

func TestGroupNodesByDistance(t *testing.T) {
	// 0 -> 1 (2), 0 -> 2 (2), 0 -> 3 (4), unreachable 4.
	g := buildGraph(t, `5
3
0 0 1.0 1.0
1 0 1.0 1.0
2 0 1.0 1.0
3 0 1.0 1.0
4 0 1.0 1.0
0 1 2
0 2 2
0 3 4
`)
	store := NewNodeDataStorage()
	store.MarkBurning([]int{0}, 0)
	store.MarkDefended([]int{2}, 1)

	buckets := groupNodesByDistance([]int{0}, g, store)

	// Burning, defended, and unreachable nodes are all excluded.
	assert.Equal(t, map[int][]int{2: {1}, 4: {3}}, buckets)
	assert.Equal(t, []int{2, 4}, sortedDistances(buckets))
}
