package firefighter

import (
	"sort"

	"osmff/pkg/graph"
	"osmff/pkg/logging"
	"osmff/pkg/metrics"
)

// ScoreStrategy ranks every undefended reachable node by a normalized blend
// of fire distance (closer is more urgent, weighted double) and out-degree
// (higher is more damaging if lost), defending the top scorers.
type ScoreStrategy struct {
	graph *graph.Graph
}

// NewScoreStrategy creates a score strategy over the graph.
func NewScoreStrategy(g *graph.Graph) *ScoreStrategy {
	return &ScoreStrategy{graph: g}
}

func (s *ScoreStrategy) Initialize([]int, *Settings, *NodeDataStorage) {}

func (s *ScoreStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
	dists := s.graph.RunDijkstra(store.GetBurning())
	metrics.DijkstraRuns.Inc()

	candidate := func(id int) bool {
		return store.IsUndefended(id) && dists[id] < graph.Infinity
	}

	maxDist, maxDeg := 0, 0
	for _, node := range s.graph.Nodes() {
		if !candidate(node.ID) {
			continue
		}
		if dists[node.ID] > maxDist {
			maxDist = dists[node.ID]
		}
		if deg := s.graph.OutDegree(node.ID); deg > maxDeg {
			maxDeg = deg
		}
	}
	// Degenerate input: every candidate sits on the fire line or has no
	// outgoing edges. Skip the round rather than divide by zero.
	if maxDist == 0 {
		logging.Warn("score strategy: max distance is 0, skipping round")
		return
	}
	if maxDeg == 0 {
		logging.Warn("score strategy: max degree is 0, skipping round")
		return
	}

	type scored struct {
		id    int
		score float64
	}
	var scores []scored
	for _, node := range s.graph.Nodes() {
		if !candidate(node.ID) {
			continue
		}
		normDist := 1.0 - float64(dists[node.ID])/float64(maxDist)
		normDeg := float64(s.graph.OutDegree(node.ID)) / float64(maxDeg)
		scores = append(scores, scored{
			id:    node.ID,
			score: (2.0*normDist + normDeg) / 3.0,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	numToDefend := min(len(scores), settings.NumFfs)
	toDefend := make([]int, 0, numToDefend)
	for _, sc := range scores[:numToDefend] {
		toDefend = append(toDefend, sc.id)
	}
	store.MarkDefended(toDefend, globalTime)
}
