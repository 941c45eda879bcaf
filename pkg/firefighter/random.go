package firefighter

import (
	"math/rand/v2"

	"osmff/pkg/graph"
)

// RandomStrategy defends uniformly sampled undefended nodes from the whole
// graph, not just the fire frontier. Mainly a baseline for benchmarks.
type RandomStrategy struct {
	graph *graph.Graph
}

// NewRandomStrategy creates a random strategy over the graph.
func NewRandomStrategy(g *graph.Graph) *RandomStrategy {
	return &RandomStrategy{graph: g}
}

func (s *RandomStrategy) Initialize([]int, *Settings, *NodeDataStorage) {}

func (s *RandomStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
	var candidates []int
	for _, node := range s.graph.Nodes() {
		if store.IsUndefended(node.ID) {
			candidates = append(candidates, node.ID)
		}
	}

	// Partial Fisher-Yates: sample without replacement, all candidates when
	// the budget exceeds them.
	numToDefend := min(settings.NumFfs, len(candidates))
	for i := 0; i < numToDefend; i++ {
		j := i + rand.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	store.MarkDefended(candidates[:numToDefend], globalTime)
}
