// Package spatial provides nearest-node lookups over a graph's coordinates,
// used to resolve "ignite at lat,lon" requests to node ids.
package spatial

import (
	"errors"

	"github.com/tidwall/rtree"

	"osmff/pkg/geo"
	"osmff/pkg/graph"
)

// ErrNoNodes is returned when the index is queried over an empty graph.
var ErrNoNodes = errors.New("graph has no nodes")

// Index is an immutable R-tree over a graph's node coordinates. Safe for
// concurrent reads once built.
type Index struct {
	tr rtree.RTreeG[int]
	g  *graph.Graph
}

// NewIndex builds the index. Points are stored as (lon, lat) boxes.
func NewIndex(g *graph.Graph) *Index {
	idx := &Index{g: g}
	for _, n := range g.Nodes() {
		p := [2]float64{n.Lon, n.Lat}
		idx.tr.Insert(p, p, n.ID)
	}
	return idx
}

// NearestNode returns the node closest to the given coordinate and its
// great-circle distance in meters.
func (idx *Index) NearestNode(lat, lon float64) (int, float64, error) {
	target := [2]float64{lon, lat}

	found := false
	var nearest int
	idx.tr.Nearby(
		rtree.BoxDist[float64, int](target, target, nil),
		func(_, _ [2]float64, id int, _ float64) bool {
			nearest = id
			found = true
			return false // first hit is the nearest
		},
	)
	if !found {
		return 0, 0, ErrNoNodes
	}

	n := idx.g.Node(nearest)
	return nearest, geo.Haversine(lat, lon, n.Lat, n.Lon), nil
}
