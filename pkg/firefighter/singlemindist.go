package firefighter

import (
	"osmff/pkg/graph"
	"osmff/pkg/logging"
	"osmff/pkg/metrics"
)

// SingleMinDistSetStrategy commits, once, to the single closest distance
// ring that the firefighter budget can defend in time, then defends it
// incrementally with no further recomputation.
type SingleMinDistSetStrategy struct {
	graph *graph.Graph

	nodesToDefend   []int
	currentDefended int
}

// NewSingleMinDistSetStrategy creates the strategy over the graph.
func NewSingleMinDistSetStrategy(g *graph.Graph) *SingleMinDistSetStrategy {
	return &SingleMinDistSetStrategy{graph: g}
}

func (s *SingleMinDistSetStrategy) Initialize(roots []int, settings *Settings, _ *NodeDataStorage) {
	s.computeNodesToDefend(roots, settings)
}

// computeNodesToDefend picks the defend set. For every node the global
// predecessor is its in-neighbor closest to the fire; a node must be
// defended at every distance in (predDist, dist] to save everything behind
// it. The first distance whose required node count fits the accumulated
// firefighter budget becomes the committed set.
func (s *SingleMinDistSetStrategy) computeNodesToDefend(roots []int, settings *Settings) {
	dists := s.graph.RunDijkstra(roots)
	metrics.DijkstraRuns.Inc()

	// Global predecessor: the in-neighbor with the smallest distance.
	const none = -1
	globalPreds := make([]int, s.graph.NumNodes)
	for i := range globalPreds {
		globalPreds[i] = none
	}
	for _, edge := range s.graph.Edges() {
		if dists[edge.Src] == graph.Infinity {
			continue
		}
		cur := globalPreds[edge.Tgt]
		if cur == none || dists[edge.Src] < dists[cur] {
			globalPreds[edge.Tgt] = edge.Src
		}
	}

	// Map each distance d to the nodes that must be defended by round d:
	// every node covers the distances in (predDist, dist].
	distanceNodes := make(map[int][]int)
	for node, dist := range dists {
		if dist == graph.Infinity {
			continue
		}
		pred := globalPreds[node]
		if pred == none || dists[pred] == graph.Infinity {
			continue
		}
		for d := dists[pred] + 1; d <= dist; d++ {
			distanceNodes[d] = append(distanceNodes[d], node)
		}
	}

	for _, dist := range sortedDistances(distanceNodes) {
		nodes := distanceNodes[dist]
		if len(nodes) <= dist/settings.StrategyEvery*settings.NumFfs {
			s.nodesToDefend = nodes
			logging.Debug("selected defend set",
				"nodes", len(nodes), "distance", dist)
			return
		}
	}
}

func (s *SingleMinDistSetStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
	numToDefend := min(settings.NumFfs, len(s.nodesToDefend)-s.currentDefended)
	planned := s.nodesToDefend[s.currentDefended : s.currentDefended+numToDefend]
	s.currentDefended += numToDefend

	// The plan is never recomputed, so the fire may beat us to a planned
	// node; those entries are dropped rather than violating disjointness.
	toDefend := make([]int, 0, len(planned))
	for _, node := range planned {
		if store.IsUndefended(node) {
			toDefend = append(toDefend, node)
		}
	}
	store.MarkDefended(toDefend, globalTime)
}
