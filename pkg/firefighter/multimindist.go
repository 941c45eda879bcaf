package firefighter

import (
	"fmt"
	"sort"

	"osmff/pkg/graph"
)

// MultiMinDistSetsStrategy plans ahead: it buckets all undefended nodes by
// fire distance and commits the firefighter budget to the closest buckets
// that can still be fully or partially saved before the fire arrives. The
// plan adapts whenever a root's risky frontier vanishes.
type MultiMinDistSetsStrategy struct {
	graph *graph.Graph

	// nodesToDefend is the committed plan, consumed from the front.
	nodesToDefend []int
	// possibleDefended accumulates NumFfs per past round: the budget that
	// was available so far, regardless of how much of it was spent.
	possibleDefended int
	undefendedRoots  undefendedRoots
}

// NewMultiMinDistSetsStrategy creates the strategy over the graph.
func NewMultiMinDistSetsStrategy(g *graph.Graph) *MultiMinDistSetsStrategy {
	return &MultiMinDistSetsStrategy{graph: g}
}

func (s *MultiMinDistSetsStrategy) Initialize(roots []int, settings *Settings, store *NodeDataStorage) {
	s.undefendedRoots = newUndefendedRoots(roots)
	s.computeNodesToDefend(roots, settings, store)
}

// computeNodesToDefend rebuilds the plan for the given at-risk roots.
// Walking distance buckets ascending: a bucket whose distance grants enough
// firefighter-rounds beyond the budget already allotted is defended fully;
// one with a smaller positive allowance is defended partially, keeping its
// highest-out-degree nodes; the rest are left unplanned.
func (s *MultiMinDistSetsStrategy) computeNodesToDefend(roots []int, settings *Settings, store *NodeDataStorage) {
	buckets := groupNodesByDistance(roots, s.graph, store)

	every := settings.StrategyEvery
	ffs := settings.NumFfs
	totalDefended := s.possibleDefended

	var plan []int
	var partialDists []int

	for _, dist := range sortedDistances(buckets) {
		nodes := buckets[dist]
		canDefendTotal := dist / every * ffs
		if canDefendTotal <= totalDefended {
			continue
		}
		canDefend := canDefendTotal - totalDefended
		if canDefend >= len(nodes) {
			plan = append(plan, nodes...)
			totalDefended += len(nodes)
		} else {
			partialDists = append(partialDists, dist)
		}
	}

	for _, dist := range partialDists {
		canDefendTotal := dist / every * ffs
		if canDefendTotal <= totalDefended {
			continue
		}
		canDefend := canDefendTotal - totalDefended
		nodes := append([]int(nil), buckets[dist]...)
		sort.SliceStable(nodes, func(i, j int) bool {
			return s.graph.OutDegree(nodes[i]) > s.graph.OutDegree(nodes[j])
		})
		plan = append(plan, nodes[:canDefend]...)
		totalDefended += canDefend
	}

	s.nodesToDefend = plan
}

func (s *MultiMinDistSetsStrategy) Execute(settings *Settings, store *NodeDataStorage, globalTime int) {
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

	// A defended-off root frees its allotment; replan for the survivors.
	if roots, changed := s.undefendedRoots.recompute(s.graph, store); changed {
		s.computeNodesToDefend(roots, settings, store)
	}
}
