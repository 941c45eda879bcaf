package graph

// notPresent marks a key that is not currently on the heap.
const notPresent = -1

// MinHeap is an indexed binary min-heap over node ids, ordered by an external
// priority slice owned by the caller. A parallel positions slice mirrors each
// key's index in the heap array, giving O(1) Contains and O(log n)
// DecreaseKey. Concrete-typed to avoid the interface boxing of container/heap.
type MinHeap struct {
	heap      []int
	positions []int
}

// NewMinHeap creates a heap able to hold keys 0..capacity-1.
func NewMinHeap(capacity int) *MinHeap {
	positions := make([]int, capacity)
	for i := range positions {
		positions[i] = notPresent
	}
	return &MinHeap{
		heap:      make([]int, 0, capacity),
		positions: positions,
	}
}

// Len returns the number of keys on the heap.
func (h *MinHeap) Len() int { return len(h.heap) }

// Empty returns true if the heap holds no keys.
func (h *MinHeap) Empty() bool { return len(h.heap) == 0 }

// Contains returns true if key is currently on the heap.
func (h *MinHeap) Contains(key int) bool {
	return h.positions[key] != notPresent
}

// Push adds key to the heap and sifts it up according to priorities.
func (h *MinHeap) Push(key int, priorities []int) {
	h.heap = append(h.heap, key)
	i := len(h.heap) - 1
	h.positions[key] = i
	h.siftUp(i, priorities)
}

// Pop removes and returns the key with the minimum priority.
func (h *MinHeap) Pop(priorities []int) int {
	minKey := h.heap[0]
	h.positions[minKey] = notPresent

	n := len(h.heap)
	tail := h.heap[n-1]
	h.heap = h.heap[:n-1]
	if len(h.heap) > 0 {
		h.setKeyAndPos(tail, 0)
		h.siftDown(0, priorities)
	}
	return minKey
}

// DecreaseKey restores heap order after the caller lowered priorities[key].
// Calling it without an actual decrease leaves the heap inconsistent.
func (h *MinHeap) DecreaseKey(key int, priorities []int) {
	h.siftUp(h.positions[key], priorities)
}

func (h *MinHeap) setKeyAndPos(key, index int) {
	h.heap[index] = key
	h.positions[key] = index
}

// swap exchanges the keys at the two heap indices, keeping positions in sync.
func (h *MinHeap) swap(i, j int) {
	ki, kj := h.heap[i], h.heap[j]
	h.setKeyAndPos(ki, j)
	h.setKeyAndPos(kj, i)
}

func (h *MinHeap) siftUp(i int, priorities []int) {
	for i > 0 {
		parent := (i - 1) / 2
		if priorities[h.heap[i]] >= priorities[h.heap[parent]] {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *MinHeap) siftDown(i int, priorities []int) {
	n := len(h.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && priorities[h.heap[left]] < priorities[h.heap[smallest]] {
			smallest = left
		}
		if right < n && priorities[h.heap[right]] < priorities[h.heap[smallest]] {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
