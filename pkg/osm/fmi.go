package osm

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	osmpkg "github.com/paulmach/osm"

	"osmff/pkg/logging"
)

// unionFind is a disjoint-set with union by rank and path halving, used to
// keep only the largest weakly connected road component. Fires on a tiny
// disconnected fragment make for useless benchmarks.
type unionFind struct {
	parent []int
	rank   []byte
	size   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &unionFind{parent: parent, rank: make([]byte, n), size: size}
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
}

// WriteFMI writes the parsed road network as a plain-text .fmi graph file:
// a comment header, the node and edge counts, node lines ("id id lat lon"),
// then edge lines ("src tgt weight") sorted by source ascending as the CSR
// parser requires. Only the largest weakly connected component is kept.
func WriteFMI(w io.Writer, result *ParseResult) error {
	edges := result.Edges
	if len(edges) == 0 {
		return fmt.Errorf("no edges to write")
	}

	// Dense remapping of the referenced OSM node ids.
	nodeIdx := make(map[osmpkg.NodeID]int)
	var nodeIDs []osmpkg.NodeID
	addNode := func(id osmpkg.NodeID) int {
		if idx, ok := nodeIdx[id]; ok {
			return idx
		}
		idx := len(nodeIDs)
		nodeIdx[id] = idx
		nodeIDs = append(nodeIDs, id)
		return idx
	}

	type compactEdge struct {
		from, to, weight int
	}
	compact := make([]compactEdge, len(edges))
	for i, e := range edges {
		compact[i] = compactEdge{
			from:   addNode(e.FromNodeID),
			to:     addNode(e.ToNodeID),
			weight: e.Weight,
		}
	}

	// Restrict to the largest weakly connected component.
	uf := newUnionFind(len(nodeIDs))
	for _, e := range compact {
		uf.union(e.from, e.to)
	}
	bestRoot, bestSize := 0, 0
	for i := range nodeIDs {
		if root := uf.find(i); uf.size[root] > bestSize {
			bestRoot, bestSize = root, uf.size[root]
		}
	}

	// Second dense remapping over the surviving nodes only.
	finalIdx := make([]int, len(nodeIDs))
	for i := range finalIdx {
		finalIdx[i] = -1
	}
	numNodes := 0
	for i := range nodeIDs {
		if uf.find(i) == bestRoot {
			finalIdx[i] = numNodes
			numNodes++
		}
	}

	kept := compact[:0]
	for _, e := range compact {
		if finalIdx[e.from] >= 0 && finalIdx[e.to] >= 0 {
			kept = append(kept, compactEdge{
				from:   finalIdx[e.from],
				to:     finalIdx[e.to],
				weight: e.weight,
			})
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].from != kept[j].from {
			return kept[i].from < kept[j].from
		}
		return kept[i].to < kept[j].to
	})

	if dropped := len(nodeIDs) - numNodes; dropped > 0 {
		logging.Info("pruned to largest component",
			"keptNodes", numNodes, "droppedNodes", dropped)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# generated by osmff convert")
	fmt.Fprintln(bw, "# largest weakly connected component of the drivable road network")
	fmt.Fprintln(bw, numNodes)
	fmt.Fprintln(bw, len(kept))

	// Node lines in dense-id order.
	ordered := make([]osmpkg.NodeID, numNodes)
	for i, id := range nodeIDs {
		if finalIdx[i] >= 0 {
			ordered[finalIdx[i]] = id
		}
	}
	for i, id := range ordered {
		fmt.Fprintf(bw, "%d %d %s %s\n", i, i,
			strconv.FormatFloat(result.NodeLat[id], 'f', -1, 64),
			strconv.FormatFloat(result.NodeLon[id], 'f', -1, 64))
	}
	for _, e := range kept {
		fmt.Fprintf(bw, "%d %d %d\n", e.from, e.to, e.weight)
	}
	return bw.Flush()
}
