package graph

import "math"

// Infinity marks nodes unreachable from any Dijkstra source.
const Infinity = math.MaxInt

// RunDijkstra computes shortest distances from the given source set to every
// node. Sources get distance 0, unreachable nodes Infinity. Uses the indexed
// MinHeap with decrease-key, so each node is settled exactly once.
func (g *Graph) RunDijkstra(sources []int) []int {
	distances := make([]int, g.NumNodes)
	for i := range distances {
		distances[i] = Infinity
	}
	for _, src := range sources {
		distances[src] = 0
	}

	pq := NewMinHeap(g.NumNodes)
	for _, src := range sources {
		if !pq.Contains(src) {
			pq.Push(src, distances)
		}
	}

	for !pq.Empty() {
		node := pq.Pop(distances)

		for _, edge := range g.OutgoingEdges(node) {
			dist := distances[node] + edge.Dist
			if dist < distances[edge.Tgt] {
				distances[edge.Tgt] = dist
				if pq.Contains(edge.Tgt) {
					pq.DecreaseKey(edge.Tgt, distances)
				} else {
					pq.Push(edge.Tgt, distances)
				}
			}
		}
	}

	return distances
}
