// Package metrics holds the process-wide Prometheus collectors. There is no
// HTTP exposition; the bench harness dumps the registry in text format.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "osmff_simulations_total",
		Help: "Total number of completed simulations, labelled by strategy.",
	}, []string{"strategy"})

	NodesBurned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "osmff_nodes_burned_total",
		Help: "Total nodes burned across simulations, labelled by strategy.",
	}, []string{"strategy"})

	NodesDefended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "osmff_nodes_defended_total",
		Help: "Total nodes defended across simulations, labelled by strategy.",
	}, []string{"strategy"})

	SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "osmff_simulation_duration_seconds",
		Help:    "Wall-clock duration of one simulation run.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	DijkstraRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmff_dijkstra_runs_total",
		Help: "Total multi-source Dijkstra runs performed by strategies.",
	})
)

// DumpText writes all gathered metrics to w in text exposition format.
func DumpText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return err
		}
	}
	return nil
}
