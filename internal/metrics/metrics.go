// Package metrics records solver effort as Prometheus metrics.
//
// # Description
//
// A Collector turns tsp.Result / error pairs into:
//   - bnbtsp_solves_total{outcome}: solves by outcome (optimal, infeasible,
//     time_limit, canceled, node_limit, malformed, error)
//   - bnbtsp_search_nodes: histogram of search-tree nodes per solve
//   - bnbtsp_pruned_branches_total: branches cut by the lower bound
//   - bnbtsp_solve_duration_seconds: histogram of solver wall time
//   - bnbtsp_cities: histogram of instance sizes
//
// The CLI is short-lived, so instead of serving /metrics it writes the
// registry to a file for the node-exporter textfile collector.
//
// # Thread Safety
//
// All operations are thread-safe via Prometheus's internal locking.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bnbtsp/tsp"
)

const metricsNamespace = "bnbtsp"

// Outcome labels.
const (
	OutcomeOptimal    = "optimal"
	OutcomeInfeasible = "infeasible"
	OutcomeTimeLimit  = "time_limit"
	OutcomeCanceled   = "canceled"
	OutcomeNodeLimit  = "node_limit"
	OutcomeMalformed  = "malformed"
	OutcomeError      = "error"
)

// Collector holds the solver metrics.
type Collector struct {
	SolvesTotal   *prometheus.CounterVec
	SearchNodes   prometheus.Histogram
	PrunedTotal   prometheus.Counter
	SolveDuration prometheus.Histogram
	Cities        prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solves_total",
			Help:      "Total solves by outcome",
		}, []string{"outcome"}),
		SearchNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_nodes",
			Help:      "Search-tree nodes entered per solve",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 9), // 10 .. 1e9
		}),
		PrunedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pruned_branches_total",
			Help:      "Candidate branches cut by the lower bound",
		}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "solve_duration_seconds",
			Help:      "Solver wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}),
		Cities: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cities",
			Help:      "Number of cities per solved instance",
			Buckets:   prometheus.LinearBuckets(2, 2, 10),
		}),
	}
	for _, m := range []prometheus.Collector{c.SolvesTotal, c.SearchNodes, c.PrunedTotal, c.SolveDuration, c.Cities} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Outcome classifies a solve result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOptimal
	case errors.Is(err, tsp.ErrNoHamiltonianCycle):
		return OutcomeInfeasible
	case errors.Is(err, tsp.ErrTimeLimit):
		return OutcomeTimeLimit
	case errors.Is(err, tsp.ErrCanceled):
		return OutcomeCanceled
	case errors.Is(err, tsp.ErrNodeLimit):
		return OutcomeNodeLimit
	case errors.Is(err, tsp.ErrMalformedInput):
		return OutcomeMalformed
	default:
		return OutcomeError
	}
}

// Observe records one solve of an n-city instance.
func (c *Collector) Observe(n int, res tsp.Result, err error) {
	c.SolvesTotal.WithLabelValues(Outcome(err)).Inc()
	c.Cities.Observe(float64(n))
	if res.Stats.Nodes > 0 {
		c.SearchNodes.Observe(float64(res.Stats.Nodes))
		c.PrunedTotal.Add(float64(res.Stats.Pruned))
	}
	c.SolveDuration.Observe(res.Stats.Elapsed.Seconds())
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
