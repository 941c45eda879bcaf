package firefighter

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"osmff/pkg/graph"
	"osmff/pkg/logging"
)

// PriorityStrategy is the distance-bucketing of MultiMinDistanceSets with a
// twist: nodes scoring at or above the empirical 25th percentile of a
// degree-based priority are planned before any lower-priority node, across
// all buckets. Same adaptive replanning via the undefended-root tracker.
type PriorityStrategy struct {
	graph *graph.Graph

	nodesToDefend    []int
	possibleDefended int
	undefendedRoots  undefendedRoots
}

// NewPriorityStrategy creates the strategy over the graph.
func NewPriorityStrategy(g *graph.Graph) *PriorityStrategy {
	return &PriorityStrategy{graph: g}
}

func (s *PriorityStrategy) Initialize(roots []int, settings *Settings, store *NodeDataStorage) {
	s.undefendedRoots = newUndefendedRoots(roots)
	s.computeNodesToDefend(roots, settings, store)
}

func (s *PriorityStrategy) computeNodesToDefend(roots []int, settings *Settings, store *NodeDataStorage) {
	// Degree-based priority over all undefended nodes with outgoing edges.
	priorities := make(map[int]int, s.graph.NumNodes)
	for _, node := range s.graph.Nodes() {
		if deg := s.graph.OutDegree(node.ID); deg > 0 && store.IsUndefended(node.ID) {
			priorities[node.ID] = deg
		}
	}
	if len(priorities) == 0 {
		s.nodesToDefend = nil
		return
	}

	sorted := make([]float64, 0, len(priorities))
	for _, prio := range priorities {
		sorted = append(sorted, float64(prio))
	}
	sort.Float64s(sorted)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	logging.Debug("priority strategy quantile", "q25", q25)

	buckets := groupNodesByDistance(roots, s.graph, store)
	dists := sortedDistances(buckets)

	// Split each bucket, keeping higher-priority nodes first within it.
	highByDist := make(map[int][]int, len(buckets))
	lowByDist := make(map[int][]int, len(buckets))
	for dist, nodes := range buckets {
		nodes = append([]int(nil), nodes...)
		sort.SliceStable(nodes, func(i, j int) bool {
			return priorities[nodes[i]] > priorities[nodes[j]]
		})
		for _, node := range nodes {
			if float64(priorities[node]) >= q25 {
				highByDist[dist] = append(highByDist[dist], node)
			} else {
				lowByDist[dist] = append(lowByDist[dist], node)
			}
		}
	}

	every := settings.StrategyEvery
	ffs := settings.NumFfs
	totalDefended := s.possibleDefended

	var plan []int
	// Every high-priority allotment fills before any low-priority one.
	for _, byDist := range []map[int][]int{highByDist, lowByDist} {
		for _, dist := range dists {
			nodes := byDist[dist]
			canDefendTotal := dist / every * ffs
			if canDefendTotal <= totalDefended {
				continue
			}
			canDefend := min(canDefendTotal-totalDefended, len(nodes))
			plan = append(plan, nodes[:canDefend]...)
			totalDefended += canDefend
		}
	}

	s.nodesToDefend = plan
}

func (s *PriorityStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
	numToDefend := min(settings.NumFfs, len(s.nodesToDefend))
	toDefend := s.nodesToDefend[:numToDefend]

	for _, node := range toDefend {
		if !store.IsUndefended(node) {
			panic(fmt.Sprintf("planned node %d is no longer undefended", node))
		}
	}
	store.MarkDefended(toDefend, globalTime)

	s.nodesToDefend = s.nodesToDefend[numToDefend:]
	s.possibleDefended += settings.NumFfs

	if roots, changed := s.undefendedRoots.recompute(s.graph, store); changed {
		s.computeNodesToDefend(roots, settings, store)
	}
}
