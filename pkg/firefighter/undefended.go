package firefighter

import (
	"sort"

	"osmff/pkg/graph"
	"osmff/pkg/metrics"
)

// rootFrontier tracks, for one fire root, the burning nodes already expanded
// and the risky frontier: undefended nodes reachable from the root along
// currently-burning paths.
type rootFrontier struct {
	visited map[int]struct{}
	risky   map[int]struct{}
}

// undefendedRoots is the shared tracker of the budget-planning strategies.
// A root whose risky frontier empties can no longer threaten any undefended
// node; its budget allotment is freed for the remaining roots.
type undefendedRoots map[int]*rootFrontier

// newUndefendedRoots seeds the tracker with each root's own id as frontier.
func newUndefendedRoots(roots []int) undefendedRoots {
	ur := make(undefendedRoots, len(roots))
	for _, root := range roots {
		ur[root] = &rootFrontier{
			visited: make(map[int]struct{}),
			risky:   map[int]struct{}{root: {}},
		}
	}
	return ur
}

// recompute refreshes every root's risky frontier against the current node
// state and drops roots that are fully enclosed. It returns the sorted
// surviving root ids and true iff the root count decreased; callers skip
// replanning otherwise.
func (ur undefendedRoots) recompute(g *graph.Graph, store *NodeDataStorage) ([]int, bool) {
	for _, rf := range ur {
		// Risky nodes that burned since last round re-enter the traversal;
		// defended ones drop out entirely.
		var queue []int
		for node := range rf.risky {
			if store.IsBurning(node) {
				queue = append(queue, node)
			}
		}
		for node := range rf.risky {
			if !store.IsUndefended(node) {
				delete(rf.risky, node)
			}
		}

		// Expand over burning nodes only: undefended targets join the
		// frontier, burning ones continue the traversal.
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			rf.visited[node] = struct{}{}
			for _, edge := range g.OutgoingEdges(node) {
				if store.IsUndefended(edge.Tgt) {
					rf.risky[edge.Tgt] = struct{}{}
				} else if store.IsBurning(edge.Tgt) {
					if _, seen := rf.visited[edge.Tgt]; !seen {
						rf.visited[edge.Tgt] = struct{}{}
						queue = append(queue, edge.Tgt)
					}
				}
			}
		}
	}

	oldNumRoots := len(ur)
	for root, rf := range ur {
		if len(rf.risky) == 0 {
			delete(ur, root)
		}
	}
	if len(ur) == oldNumRoots {
		return nil, false
	}

	roots := make([]int, 0, len(ur))
	for root := range ur {
		roots = append(roots, root)
	}
	sort.Ints(roots)
	return roots, true
}

// groupNodesByDistance runs a multi-source Dijkstra from the given roots and
// buckets every undefended reachable node by its distance to the fire.
// Returned buckets are keyed by distance; iterate via sortedDistances.
func groupNodesByDistance(roots []int, g *graph.Graph, store *NodeDataStorage) map[int][]int {
	dists := g.RunDijkstra(roots)
	metrics.DijkstraRuns.Inc()

	buckets := make(map[int][]int)
	for node, dist := range dists {
		if dist < graph.Infinity && store.IsUndefended(node) {
			buckets[dist] = append(buckets[dist], node)
		}
	}
	return buckets
}

// sortedDistances returns the bucket keys in ascending order.
func sortedDistances(buckets map[int][]int) []int {
	dists := make([]int, 0, len(buckets))
	for d := range buckets {
		dists = append(dists, d)
	}
	sort.Ints(dists)
	return dists
}
