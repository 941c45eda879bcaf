package firefighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeDataStorageMarking(t *testing.T) {
	s := NewNodeDataStorage()

	assert.True(t, s.IsUndefended(1))
	assert.Zero(t, s.NumBurning())
	assert.Zero(t, s.NumDefended())

	s.MarkBurning([]int{1, 2}, 0)
	s.MarkDefended([]int{3}, 1)
	s.MarkBurning([]int{4}, 2)

	assert.True(t, s.IsBurning(1))
	assert.True(t, s.IsBurning(4))
	assert.False(t, s.IsBurning(3))
	assert.True(t, s.IsDefended(3))
	assert.False(t, s.IsUndefended(1))
	assert.False(t, s.IsUndefended(3))
	assert.True(t, s.IsUndefended(5))

	assert.Equal(t, 3, s.NumBurning())
	assert.Equal(t, 1, s.NumDefended())

	burnTime, ok := s.BurnTime(4)
	assert.True(t, ok)
	assert.Equal(t, 2, burnTime)
	_, ok = s.BurnTime(3)
	assert.False(t, ok)
}

func TestNodeDataStorageRoots(t *testing.T) {
	s := NewNodeDataStorage()
	s.MarkBurning([]int{5, 1}, 0)
	s.MarkBurning([]int{2}, 3)

	assert.True(t, s.IsRoot(1))
	assert.True(t, s.IsRoot(5))
	assert.False(t, s.IsRoot(2))
	assert.Equal(t, []int{1, 5}, s.GetRoots())
}

func TestNodeDataStorageTimeQueries(t *testing.T) {
	s := NewNodeDataStorage()
	s.MarkBurning([]int{0}, 0)
	s.MarkBurning([]int{7, 2}, 2)
	s.MarkDefended([]int{9}, 1)
	s.MarkDefended([]int{4}, 3)

	assert.True(t, s.IsBurningBy(0, 0))
	assert.False(t, s.IsBurningBy(7, 1))
	assert.True(t, s.IsBurningBy(7, 2))

	assert.Equal(t, 1, s.CountBurningBy(0))
	assert.Equal(t, 1, s.CountBurningBy(1))
	assert.Equal(t, 3, s.CountBurningBy(2))
	assert.Equal(t, 1, s.CountDefendedBy(2))
	assert.Equal(t, 2, s.CountDefendedBy(3))

	assert.Equal(t, []int{2, 7}, s.GetBurningAt(2))
	assert.Empty(t, s.GetBurningAt(1))
	assert.Equal(t, []int{9}, s.GetDefendedAt(1))
}

func TestNodeDataStorageGetBurningSorted(t *testing.T) {
	s := NewNodeDataStorage()
	s.MarkBurning([]int{9, 3, 11, 0}, 0)
	assert.Equal(t, []int{0, 3, 9, 11}, s.GetBurning())
}
