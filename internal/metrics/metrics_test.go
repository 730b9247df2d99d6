package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/tsp"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	return c, reg
}

func TestOutcome(t *testing.T) {
	cases := map[string]error{
		OutcomeOptimal:    nil,
		OutcomeInfeasible: tsp.ErrNoHamiltonianCycle,
		OutcomeTimeLimit:  fmt.Errorf("%w: %w", tsp.ErrTimeLimit, context.DeadlineExceeded),
		OutcomeCanceled:   tsp.ErrCanceled,
		OutcomeNodeLimit:  tsp.ErrNodeLimit,
		OutcomeMalformed:  tsp.ErrNegativeWeight,
		OutcomeError:      tsp.ErrBadOptions,
	}
	for want, err := range cases {
		assert.Equal(t, want, Outcome(err), "err=%v", err)
	}
}

func TestObserve_RealSolve(t *testing.T) {
	c, reg := newTestCollector(t)

	res, err := tsp.SolveRows(context.Background(), [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}, tsp.DefaultOptions())
	require.NoError(t, err)
	c.Observe(4, res, err)
	c.Observe(3, tsp.Result{}, tsp.ErrNoHamiltonianCycle)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.SolvesTotal.WithLabelValues(OutcomeOptimal)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SolvesTotal.WithLabelValues(OutcomeInfeasible)))
	assert.Equal(t, float64(res.Stats.Pruned), testutil.ToFloat64(c.PrunedTotal))

	count, err := testutil.GatherAndCount(reg, "bnbtsp_search_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)
	_, err = NewCollector(reg)
	require.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	c, reg := newTestCollector(t)
	c.Observe(5, tsp.Result{Stats: tsp.Stats{Nodes: 42, Pruned: 7, Elapsed: time.Millisecond}}, nil)

	path := filepath.Join(t.TempDir(), "bnbtsp.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `bnbtsp_solves_total{outcome="optimal"} 1`), text)
	assert.Contains(t, text, "bnbtsp_pruned_branches_total 7")
	assert.Contains(t, text, "bnbtsp_search_nodes_count 1")
}
