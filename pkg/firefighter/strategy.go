package firefighter

import (
	"osmff/pkg/graph"
)

// Strategy decides which undefended nodes to defend each containment round,
// bounded by Settings.NumFfs per Execute call.
type Strategy interface {
	// Initialize is called once, after root generation and before the step
	// loop. Planning strategies precompute their defend plan here.
	Initialize(roots []int, settings *Settings, store *NodeDataStorage)

	// Execute runs one containment round at the given simulation time.
	Execute(settings *Settings, store *NodeDataStorage, globalTime int)
}

// strategyNames lists the selectable strategies in their canonical order.
var strategyNames = []string{
	"Greedy",
	"Score",
	"MultiMinDistanceSets",
	"SingleMinDistanceSet",
	"Priority",
	"Random",
}

// AvailableStrategies returns the names accepted by FromNameAndGraph.
func AvailableStrategies() []string {
	names := make([]string, len(strategyNames))
	copy(names, strategyNames)
	return names
}

// FromNameAndGraph creates the named strategy over the given graph.
// Returns false for unknown names.
func FromNameAndGraph(name string, g *graph.Graph) (Strategy, bool) {
	switch name {
	case "Greedy":
		return NewGreedyStrategy(g), true
	case "Score":
		return NewScoreStrategy(g), true
	case "MultiMinDistanceSets":
		return NewMultiMinDistSetsStrategy(g), true
	case "SingleMinDistanceSet":
		return NewSingleMinDistSetStrategy(g), true
	case "Priority":
		return NewPriorityStrategy(g), true
	case "Random":
		return NewRandomStrategy(g), true
	}
	return nil, false
}
