package firefighter

import (
	"sort"

	"osmff/pkg/graph"
)

// GreedyStrategy defends the undefended one-hop neighbors the fire reaches
// soonest, preferring high-degree nodes among equally urgent ones.
type GreedyStrategy struct {
	graph *graph.Graph
}

// NewGreedyStrategy creates a greedy strategy over the graph.
func NewGreedyStrategy(g *graph.Graph) *GreedyStrategy {
	return &GreedyStrategy{graph: g}
}

func (s *GreedyStrategy) Initialize([]int, *Settings, *NodeDataStorage) {}

func (s *GreedyStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
	// Collect all edges leading from the fire to undefended targets.
	var edges []graph.Edge
	for _, u := range store.GetBurning() {
		for _, edge := range s.graph.OutgoingEdges(u) {
			if store.IsUndefended(edge.Tgt) {
				edges = append(edges, edge)
			}
		}
	}

	// Soonest-reached first; among equal weights, higher out-degree first.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Dist != edges[j].Dist {
			return edges[i].Dist < edges[j].Dist
		}
		return s.graph.OutDegree(edges[i].Tgt) > s.graph.OutDegree(edges[j].Tgt)
	})

	numToDefend := min(len(edges), settings.NumFfs)
	toDefend := make([]int, 0, numToDefend)
	seen := make(map[int]struct{}, numToDefend)
	for _, edge := range edges {
		if len(toDefend) == numToDefend {
			break
		}
		if _, dup := seen[edge.Tgt]; dup {
			continue
		}
		seen[edge.Tgt] = struct{}{}
		toDefend = append(toDefend, edge.Tgt)
	}
	store.MarkDefended(toDefend, globalTime)
}
