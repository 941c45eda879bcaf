package firefighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRespectsBudget(t *testing.T) {
	g := ringGraph(t, 10)
	settings := Settings{NumFfs: 3, StrategyEvery: 1}
	store := NewNodeDataStorage()
	store.MarkBurning([]int{0}, 0)

	s := NewRandomStrategy(g)
	s.Execute(&settings, store, 1)

	assert.Equal(t, 3, store.NumDefended())
	assert.False(t, store.IsDefended(0), "burning nodes are not candidates")
}

func TestRandomOverBudgetDefendsEverything(t *testing.T) {
	g := ringGraph(t, 5)
	settings := Settings{NumFfs: 100, StrategyEvery: 1}
	store := NewNodeDataStorage()
	store.MarkBurning([]int{2}, 0)

	s := NewRandomStrategy(g)
	s.Execute(&settings, store, 1)

	// All four non-burning nodes, each exactly once.
	assert.Equal(t, 4, store.NumDefended())
	for _, id := range []int{0, 1, 3, 4} {
		assert.True(t, store.IsDefended(id), "node %d", id)
	}
}
