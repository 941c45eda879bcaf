package firefighter

import (
	"math/rand/v2"
	"time"

	"osmff/pkg/graph"
	"osmff/pkg/logging"
	"osmff/pkg/metrics"
)

// Problem is one firefighter simulation instance. It owns its node state and
// strategy exclusively; the graph is shared read-only. A Problem must not be
// mutated from more than one goroutine.
type Problem struct {
	graph    *graph.Graph
	settings Settings
	strategy Strategy
	nodeData *NodeDataStorage

	globalTime     int
	simulationTime time.Duration
	isActive       bool
}

// SimulationResponse summarizes a finished simulation.
type SimulationResponse struct {
	NodesBurned    int           `json:"nodes_burned"`
	NodesDefended  int           `json:"nodes_defended"`
	NodesTotal     int           `json:"nodes_total"`
	EndTime        int           `json:"end_time"`
	SimulationTime time.Duration `json:"simulation_time"`
}

// StepMetadata describes the node state at one simulation time step.
type StepMetadata struct {
	NodesBurnedBy   int   `json:"nodes_burned_by"`
	NodesDefendedBy int   `json:"nodes_defended_by"`
	NodesBurnedAt   []int `json:"nodes_burned_at"`
	NodesDefendedAt []int `json:"nodes_defended_at"`
}

// NewProblem creates a problem instance over the shared graph. Fails when
// the containment interval is not positive, when settings request more roots
// than the graph has nodes, or when explicit root ids are out of range or
// duplicated.
func NewProblem(g *graph.Graph, settings Settings, strategy Strategy) (*Problem, error) {
	if settings.StrategyEvery < 1 {
		logging.Warn("invalid settings", "error", ErrInvalidStrategyEvery)
		return nil, ErrInvalidStrategyEvery
	}
	if len(settings.RootIDs) > 0 {
		settings.NumRoots = len(settings.RootIDs)
		seen := make(map[int]struct{}, len(settings.RootIDs))
		for _, id := range settings.RootIDs {
			if id < 0 || id >= g.NumNodes {
				return nil, ErrInvalidRootID
			}
			if _, dup := seen[id]; dup {
				return nil, ErrInvalidRootID
			}
			seen[id] = struct{}{}
		}
	}
	if settings.NumRoots > g.NumNodes {
		err := &InvalidNumRootsError{NumNodes: g.NumNodes, NumRoots: settings.NumRoots}
		logging.Warn("invalid settings", "error", err)
		return nil, err
	}

	p := &Problem{
		graph:    g,
		settings: settings,
		strategy: strategy,
		nodeData: NewNodeDataStorage(),
		isActive: true,
	}
	logging.Info("initialized problem",
		"graph", settings.GraphName, "strategy", settings.StrategyName,
		"roots", settings.NumRoots, "ffs", settings.NumFfs, "every", settings.StrategyEvery)
	return p, nil
}

// NodeData exposes the per-node burn/defend state, e.g. for step metadata or
// visualization layers.
func (p *Problem) NodeData() *NodeDataStorage { return p.nodeData }

// GlobalTime returns the current simulation time.
func (p *Problem) GlobalTime() int { return p.globalTime }

// Active reports whether the fire can still spread.
func (p *Problem) Active() bool { return p.isActive }

// genFireRoots marks the fire roots burning at time 0. Explicit root ids take
// precedence; otherwise roots are sampled uniformly without replacement.
func (p *Problem) genFireRoots() []int {
	var roots []int
	if len(p.settings.RootIDs) > 0 {
		roots = append(roots, p.settings.RootIDs...)
	} else {
		perm := rand.Perm(p.graph.NumNodes)
		roots = perm[:p.settings.NumRoots]
	}

	p.nodeData.MarkBurning(roots, p.globalTime)
	logging.Info("generated fire roots", "count", len(roots))
	return roots
}

// spreadFire ignites every undefended neighbor of a burning node whose delay
// timer has elapsed: v catches fire once globalTime >= burnTime(u) + w(u,v)
// for any burning neighbor u. The step also decides whether the simulation
// stays active: it does as long as at least one undefended node remains
// adjacent to the fire, even if its timer has not elapsed yet.
func (p *Problem) spreadFire() {
	var toBurn []int

	p.isActive = false
	for _, u := range p.nodeData.GetBurning() {
		burnTime, _ := p.nodeData.BurnTime(u)
		for _, edge := range p.graph.OutgoingEdges(u) {
			if !p.nodeData.IsUndefended(edge.Tgt) {
				continue
			}
			p.isActive = true
			if p.globalTime >= burnTime+edge.Dist {
				toBurn = append(toBurn, edge.Tgt)
			}
		}
	}

	p.nodeData.MarkBurning(toBurn, p.globalTime)
}

// containFire runs a containment round when the time interval is due.
func (p *Problem) containFire() {
	if p.globalTime%p.settings.StrategyEvery == 0 {
		p.strategy.Execute(&p.settings, p.nodeData, p.globalTime)
	}
}

// execStep advances time by one unit: contain, then spread.
func (p *Problem) execStep() {
	p.globalTime++
	p.containFire()
	p.spreadFire()
}

// Simulate runs the problem to completion: generate roots, initialize the
// strategy, then step until the fire cannot spread any further. Termination
// is guaranteed since the burning and defended node counts are monotone and
// bounded by the node count.
func (p *Problem) Simulate() {
	if !p.isActive {
		return
	}

	logging.Info("starting simulation")
	roots := p.genFireRoots()

	start := time.Now()
	p.strategy.Initialize(roots, &p.settings, p.nodeData)
	logging.Info("initialized containment strategy")

	for p.isActive {
		p.execStep()
	}
	p.simulationTime = time.Since(start)

	metrics.SimulationsTotal.WithLabelValues(p.settings.StrategyName).Inc()
	metrics.SimulationDuration.Observe(p.simulationTime.Seconds())
	metrics.NodesBurned.WithLabelValues(p.settings.StrategyName).Add(float64(p.nodeData.NumBurning()))
	metrics.NodesDefended.WithLabelValues(p.settings.StrategyName).Add(float64(p.nodeData.NumDefended()))

	logging.Info("finished simulation",
		"endTime", p.globalTime, "burned", p.nodeData.NumBurning(),
		"defended", p.nodeData.NumDefended(), "duration", p.simulationTime)
}

// SimulationResponse returns the summary statistics of the simulation.
func (p *Problem) SimulationResponse() SimulationResponse {
	return SimulationResponse{
		NodesBurned:    p.nodeData.NumBurning(),
		NodesDefended:  p.nodeData.NumDefended(),
		NodesTotal:     p.graph.NumNodes,
		EndTime:        p.globalTime,
		SimulationTime: p.simulationTime,
	}
}

// StepMetadata returns cumulative and exact node state for one time step.
func (p *Problem) StepMetadata(time int) StepMetadata {
	return StepMetadata{
		NodesBurnedBy:   p.nodeData.CountBurningBy(time),
		NodesDefendedBy: p.nodeData.CountDefendedBy(time),
		NodesBurnedAt:   p.nodeData.GetBurningAt(time),
		NodesDefendedAt: p.nodeData.GetDefendedAt(time),
	}
}
