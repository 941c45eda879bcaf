// Package firefighter implements the firefighter problem: a fire ignites at
// a set of graph nodes and spreads along edges with per-edge delay, while a
// bounded number of firefighters defend nodes each round to limit the damage.
package firefighter

import (
	"sort"

	"osmff/pkg/logging"
)

// NodeDataStorage tracks which nodes are burning or defended and since what
// simulation time. A node is in at most one of {burning, defended, untouched};
// once burning or defended it never changes again. Disjointness of the two
// sets is the callers' contract: only currently-undefended ids may be passed
// to MarkBurning and MarkDefended.
type NodeDataStorage struct {
	burning  map[int]int
	defended map[int]int
}

// NewNodeDataStorage creates an empty storage.
func NewNodeDataStorage() *NodeDataStorage {
	return &NodeDataStorage{
		burning:  make(map[int]int),
		defended: make(map[int]int),
	}
}

// IsRoot reports whether the node has been burning since time 0.
func (s *NodeDataStorage) IsRoot(id int) bool {
	t, ok := s.burning[id]
	return ok && t == 0
}

// IsBurning reports whether the node is burning.
func (s *NodeDataStorage) IsBurning(id int) bool {
	_, ok := s.burning[id]
	return ok
}

// IsBurningBy reports whether the node started burning at or before time.
func (s *NodeDataStorage) IsBurningBy(id, time int) bool {
	t, ok := s.burning[id]
	return ok && t <= time
}

// CountBurningBy counts all nodes burning at or before time.
func (s *NodeDataStorage) CountBurningBy(time int) int {
	count := 0
	for _, t := range s.burning {
		if t <= time {
			count++
		}
	}
	return count
}

// IsDefended reports whether the node is defended.
func (s *NodeDataStorage) IsDefended(id int) bool {
	_, ok := s.defended[id]
	return ok
}

// IsDefendedBy reports whether the node was defended at or before time.
func (s *NodeDataStorage) IsDefendedBy(id, time int) bool {
	t, ok := s.defended[id]
	return ok && t <= time
}

// CountDefendedBy counts all nodes defended at or before time.
func (s *NodeDataStorage) CountDefendedBy(time int) int {
	count := 0
	for _, t := range s.defended {
		if t <= time {
			count++
		}
	}
	return count
}

// IsUndefended reports whether the node is neither burning nor defended.
func (s *NodeDataStorage) IsUndefended(id int) bool {
	return !s.IsBurning(id) && !s.IsDefended(id)
}

// NumBurning returns the total number of burning nodes.
func (s *NodeDataStorage) NumBurning() int { return len(s.burning) }

// NumDefended returns the total number of defended nodes.
func (s *NodeDataStorage) NumDefended() int { return len(s.defended) }

// MarkBurning marks all given nodes as burning since time. Callers must only
// pass currently-undefended ids.
func (s *NodeDataStorage) MarkBurning(ids []int, time int) {
	if len(ids) > 0 {
		logging.Debug("burning nodes", "count", len(ids), "time", time)
	}
	for _, id := range ids {
		s.burning[id] = time
	}
}

// MarkDefended marks all given nodes as defended since time. Callers must
// only pass currently-undefended ids.
func (s *NodeDataStorage) MarkDefended(ids []int, time int) {
	if len(ids) > 0 {
		logging.Debug("defending nodes", "count", len(ids), "time", time)
	}
	for _, id := range ids {
		s.defended[id] = time
	}
}

// BurnTime returns the time the node started burning, or false.
func (s *NodeDataStorage) BurnTime(id int) (int, bool) {
	t, ok := s.burning[id]
	return t, ok
}

// GetBurning returns the ids of all burning nodes, sorted ascending.
func (s *NodeDataStorage) GetBurning() []int {
	ids := make([]int, 0, len(s.burning))
	for id := range s.burning {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// GetBurningAt returns the ids of nodes that started burning exactly at time,
// sorted ascending.
func (s *NodeDataStorage) GetBurningAt(time int) []int {
	return idsAt(s.burning, time)
}

// GetDefendedAt returns the ids of nodes defended exactly at time, sorted
// ascending.
func (s *NodeDataStorage) GetDefendedAt(time int) []int {
	return idsAt(s.defended, time)
}

// GetRoots returns the ids of all fire roots, i.e. nodes burning since 0.
func (s *NodeDataStorage) GetRoots() []int {
	return s.GetBurningAt(0)
}

func idsAt(m map[int]int, time int) []int {
	var ids []int
	for id, t := range m {
		if t == time {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
