// Command bench runs firefighter simulations in a loop and reports averaged
// statistics for one graph and strategy combination.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/stat"

	"osmff/pkg/config"
	"osmff/pkg/firefighter"
	"osmff/pkg/graph"
	"osmff/pkg/logging"
	"osmff/pkg/metrics"
	"osmff/pkg/spatial"
)

func main() {
	flags := pflag.NewFlagSet("bench", pflag.ExitOnError)
	flags.String("graphs", "data", "Directory containing .fmi graph files")
	flags.String("graph", "", "Name of the graph to simulate on (required)")
	flags.String("strategy", "Greedy",
		"Containment strategy: "+strings.Join(firefighter.AvailableStrategies(), ", "))
	flags.Int("roots", 1, "Number of fire roots")
	flags.Int("ffs", 1, "Firefighters available per containment round")
	flags.Int("every", 1, "Simulation-time interval between containment rounds")
	flags.Int("loop", 1, "Number of simulation runs to average over")
	flags.StringSlice("ignite", nil, "Ignite at lat,lon instead of random roots (repeatable)")
	flags.Bool("metrics", false, "Dump Prometheus metrics on exit")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Bool("json", false, "Log in JSON format")
	if err := flags.Parse(os.Args[1:]); err != nil {
		logging.Fatal("parsing flags", "error", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		logging.Fatal("loading config", "error", err)
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	if cfg.JSONLogs {
		logging.SetJSONOutput(level)
	} else if cfg.Verbose {
		logging.SetLevel(level)
	}
	if cfg.Graph == "" {
		logging.Fatal("missing required flag: --graph")
	}

	graphs, err := graph.LoadDir(cfg.GraphsDir)
	if err != nil {
		logging.Fatal("loading graphs", "error", err)
	}
	g, ok := graphs[cfg.Graph]
	if !ok {
		logging.Fatal("no such graph", "name", cfg.Graph, "dir", cfg.GraphsDir)
	}

	settings := firefighter.Settings{
		GraphName:     cfg.Graph,
		StrategyName:  cfg.Strategy,
		NumRoots:      cfg.Roots,
		NumFfs:        cfg.Firefighters,
		StrategyEvery: cfg.Every,
	}
	if len(cfg.Ignite) > 0 {
		settings.RootIDs, err = resolveIgnitions(g, cfg.Ignite)
		if err != nil {
			logging.Fatal("resolving ignition points", "error", err)
		}
	}

	logging.Info("starting benchmarks",
		"graph", cfg.Graph, "strategy", cfg.Strategy, "loops", cfg.Loops)

	burned := make([]float64, 0, cfg.Loops)
	defended := make([]float64, 0, cfg.Loops)
	endTimes := make([]float64, 0, cfg.Loops)
	for i := 0; i < cfg.Loops; i++ {
		runID := uuid.NewString()
		logging.Info("simulation run", "run", runID, "iteration", i+1)

		strategy, ok := firefighter.FromNameAndGraph(cfg.Strategy, g)
		if !ok {
			logging.Fatal("invalid strategy", "name", cfg.Strategy)
		}
		problem, err := firefighter.NewProblem(g, settings, strategy)
		if err != nil {
			logging.Fatal("invalid simulation settings", "error", err)
		}

		problem.Simulate()

		res := problem.SimulationResponse()
		burned = append(burned, float64(res.NodesBurned))
		defended = append(defended, float64(res.NodesDefended))
		endTimes = append(endTimes, float64(res.EndTime))
	}

	fmt.Printf("benchmark results over %d runs:\n", cfg.Loops)
	fmt.Printf("  avg burned:   %.2f / %d nodes\n", stat.Mean(burned, nil), g.NumNodes)
	fmt.Printf("  avg defended: %.2f\n", stat.Mean(defended, nil))
	fmt.Printf("  avg end time: %.2f\n", stat.Mean(endTimes, nil))

	if cfg.Metrics {
		if err := metrics.DumpText(os.Stdout); err != nil {
			logging.Error("dumping metrics", "error", err)
		}
	}
}

// resolveIgnitions maps "lat,lon" pairs to their nearest graph nodes.
func resolveIgnitions(g *graph.Graph, coords []string) ([]int, error) {
	idx := spatial.NewIndex(g)
	roots := make([]int, 0, len(coords))
	for _, c := range coords {
		var lat, lon float64
		if _, err := fmt.Sscanf(c, "%f,%f", &lat, &lon); err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", c, err)
		}
		id, dist, err := idx.NearestNode(lat, lon)
		if err != nil {
			return nil, err
		}
		logging.Info("resolved ignition point",
			"lat", lat, "lon", lon, "node", id, "distanceMeters", fmt.Sprintf("%.1f", dist))
		roots = append(roots, id)
	}
	return roots, nil
}
