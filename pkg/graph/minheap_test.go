package graph

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapPopOrder(t *testing.T) {
	priorities := []int{30, 10, 20, 5}
	h := NewMinHeap(len(priorities))

	h.Push(0, priorities)
	h.Push(1, priorities)
	h.Push(2, priorities)
	h.Push(3, priorities)

	require.Equal(t, 4, h.Len())
	assert.Equal(t, 3, h.Pop(priorities))
	assert.Equal(t, 1, h.Pop(priorities))
	assert.Equal(t, 2, h.Pop(priorities))
	assert.Equal(t, 0, h.Pop(priorities))
	assert.True(t, h.Empty())
}

func TestMinHeapContains(t *testing.T) {
	priorities := []int{7, 3, 9}
	h := NewMinHeap(len(priorities))

	h.Push(0, priorities)
	h.Push(2, priorities)

	assert.True(t, h.Contains(0))
	assert.False(t, h.Contains(1))
	assert.True(t, h.Contains(2))

	h.Pop(priorities)
	assert.False(t, h.Contains(0))
	assert.True(t, h.Contains(2))
}

func TestMinHeapDecreaseKey(t *testing.T) {
	priorities := []int{10, 20, 30}
	h := NewMinHeap(len(priorities))

	h.Push(0, priorities)
	h.Push(1, priorities)
	h.Push(2, priorities)

	// Lower key 2 below everything, then restore heap order.
	priorities[2] = 1
	h.DecreaseKey(2, priorities)

	assert.Equal(t, 2, h.Pop(priorities))
	assert.Equal(t, 0, h.Pop(priorities))
	assert.Equal(t, 1, h.Pop(priorities))
}

func TestMinHeapRandomized(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewPCG(1, 2))

	priorities := make([]int, n)
	for i := range priorities {
		priorities[i] = rng.IntN(1000)
	}

	h := NewMinHeap(n)
	for i := 0; i < n; i++ {
		h.Push(i, priorities)
	}

	// Decrease a random subset.
	for i := 0; i < n/4; i++ {
		key := rng.IntN(n)
		priorities[key] -= rng.IntN(100)
		h.DecreaseKey(key, priorities)
	}

	var got []int
	for !h.Empty() {
		got = append(got, priorities[h.Pop(priorities)])
	}

	require.Len(t, got, n)
	assert.True(t, sort.IntsAreSorted(got), "pop sequence must be non-decreasing")
}
