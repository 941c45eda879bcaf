// Package graph provides the directed weighted graph the firefighter
// simulation runs on: a CSR adjacency built from plain-text .fmi files,
// multi-source Dijkstra, and optional hub-label distance queries.
package graph

// Node is a graph vertex. Ids are dense, 0..NumNodes.
type Node struct {
	ID  int
	Lat float64
	Lon float64
}

// Edge is a directed weighted edge. Dist is a non-negative integer used by
// the simulation as a propagation delay.
type Edge struct {
	Src  int
	Tgt  int
	Dist int
}

// GridBounds holds the minimal and maximal coordinates over a set of nodes.
type GridBounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Graph is a directed weighted graph in CSR form: edges are sorted by source
// node and offsets[v]..offsets[v+1] index the outgoing edges of v.
// A Graph is immutable after parsing and safe to share across simulations.
type Graph struct {
	NumNodes int
	NumEdges int

	nodes   []Node
	edges   []Edge
	offsets []int

	// Optional hub labels, sorted ascending by hub id per node.
	fwdLabels [][]HubLabel
	bwdLabels [][]HubLabel
}

// Nodes returns all graph nodes.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) Node {
	return g.nodes[id]
}

// Edges returns all graph edges in CSR order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// OutgoingEdges returns the outgoing edges of the given node as a shared
// sub-slice. O(1).
func (g *Graph) OutgoingEdges(id int) []Edge {
	return g.edges[g.offsets[id]:g.offsets[id+1]]
}

// OutDegree returns the number of outgoing edges of the given node.
func (g *Graph) OutDegree(id int) int {
	return g.offsets[id+1] - g.offsets[id]
}

// GridBounds returns the bounding box over all node coordinates.
// The parser guarantees at least one node.
func (g *Graph) GridBounds() GridBounds {
	gb := GridBounds{
		MinLat: g.nodes[0].Lat,
		MaxLat: g.nodes[0].Lat,
		MinLon: g.nodes[0].Lon,
		MaxLon: g.nodes[0].Lon,
	}
	for _, n := range g.nodes[1:] {
		if n.Lat < gb.MinLat {
			gb.MinLat = n.Lat
		}
		if n.Lat > gb.MaxLat {
			gb.MaxLat = n.Lat
		}
		if n.Lon < gb.MinLon {
			gb.MinLon = n.Lon
		}
		if n.Lon > gb.MaxLon {
			gb.MaxLon = n.Lon
		}
	}
	return gb
}
