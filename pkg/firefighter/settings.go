package firefighter

import (
	"errors"
	"fmt"
)

// Settings configures one problem instance. Immutable for its lifetime.
type Settings struct {
	GraphName     string
	StrategyName  string
	NumRoots      int // number of fire roots, must not exceed the node count
	NumFfs        int // firefighters available per containment round
	StrategyEvery int // simulation-time interval between containment rounds

	// RootIDs optionally pins the fire roots to explicit node ids instead of
	// sampling them. When set, len(RootIDs) takes the place of NumRoots.
	RootIDs []int
}

// ErrInvalidRootID is returned when an explicit root id is out of range or
// duplicated.
var ErrInvalidRootID = errors.New("invalid root id")

// ErrInvalidStrategyEvery is returned when the containment interval is not
// positive.
var ErrInvalidStrategyEvery = errors.New("strategy interval must be positive")

// InvalidNumRootsError is returned when more roots are requested than the
// graph has nodes.
type InvalidNumRootsError struct {
	NumNodes int
	NumRoots int
}

func (e *InvalidNumRootsError) Error() string {
	return fmt.Sprintf("number of fire roots must not be greater than %d: %d",
		e.NumNodes, e.NumRoots)
}
