// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: tiny fixed instances, a brute-force oracle and
// tour assertions.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/matrix"
	"github.com/katalvlaran/bnbtsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// literalCost is the optimum of literalRows (checked against all 6 cycles).
	literalCost = 80.0

	// maxBruteN bounds the brute-force oracle ((n-1)! permutations).
	maxBruteN = 8
)

// literalRows is the classic 4-city instance; optimum 80 via 0→1→3→2→0.
func literalRows() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// deadRowRows has city 2 with an all-zero row: no tour can leave it.
func deadRowRows() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{0, 0, 0, 0},
		{20, 25, 30, 0},
	}
}

// mustDense builds an immutable matrix or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// mustRandom returns a deterministic random instance or fails the test.
func mustRandom(t testing.TB, n int, seed int64, cfg tsp.RandomConfig) [][]float64 {
	t.Helper()
	rows, err := tsp.RandomRows(n, seed, cfg)
	require.NoError(t, err)

	return rows
}

// edge returns the cost of u→v under the solver policy (0 / +Inf ⇒ missing).
func edge(rows [][]float64, u, v int) (float64, bool) {
	c := rows[u][v]
	if c == 0 || math.IsInf(c, 1) {
		return 0, false
	}

	return c, true
}

// bruteForce enumerates every Hamiltonian cycle extending prefix (which must
// start at tsp.Root) and returns the minimum cost, +Inf when none exists.
func bruteForce(rows [][]float64, prefix []int) float64 {
	var n = len(rows)
	if n == 1 {
		return 0
	}
	var (
		used = make([]bool, n)
		cost float64
		i    int
	)
	for i = range prefix {
		used[prefix[i]] = true
		if i > 0 {
			c, ok := edge(rows, prefix[i-1], prefix[i])
			if !ok {
				return math.Inf(1)
			}
			cost += c
		}
	}

	best := math.Inf(1)
	var walk func(last, depth int, acc float64)
	walk = func(last, depth int, acc float64) {
		if depth == n {
			if c, ok := edge(rows, last, tsp.Root); ok && acc+c < best {
				best = acc + c
			}
			return
		}
		var v int
		for v = 0; v < n; v++ {
			if used[v] {
				continue
			}
			c, ok := edge(rows, last, v)
			if !ok {
				continue
			}
			used[v] = true
			walk(v, depth+1, acc+c)
			used[v] = false
		}
	}
	walk(prefix[len(prefix)-1], len(prefix), cost)

	return best
}

// requireValidResult asserts the output contract of a successful solve.
func requireValidResult(t testing.TB, dist matrix.Matrix, res tsp.Result) {
	t.Helper()
	var n = dist.Rows()
	require.NoError(t, tsp.ValidateTour(res.Tour, n, tsp.Root), "tour %v", res.Tour)
	got, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, got, "reported cost must equal the summed tour cost")
}
