// Package tsp - minimum-outgoing-edge lower bound.
//
// For every city the cheapest real outgoing edge is computed once per solve.
// A partial tour that has fixed the outgoing edges of its visited prefix can
// only be completed by leaving every still-unvisited city at least once, so
//
//	LB = costSoFar + Σ minOut[k]   (k unvisited, k ≠ next)
//
// never exceeds the cost of any completion. The edge out of next itself is
// left out of the sum; the bound stays admissible, merely a little weaker.
//
// A city with no real outgoing edge contributes 0. That keeps the bound
// admissible but weakens pruning through such a city; Options.RejectDeadEnds
// catches the infeasible case before search.
package tsp

import (
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// minOutgoing returns minOut[v] = min_{u≠v} w[v*n+u] over real edges, or 0
// when v has none.
//
// Complexity: O(n²) time, O(n) space.
func minOutgoing(n int, w []float64) []float64 {
	var (
		out  = make([]float64, n)
		v, u int
		m, c float64
	)
	for v = 0; v < n; v++ {
		m = math.Inf(1)
		for u = 0; u < n; u++ {
			if u == v {
				continue
			}
			c = w[v*n+u]
			if c < m {
				m = c
			}
		}
		if math.IsInf(m, 1) {
			m = 0
		}
		out[v] = m
	}

	return out
}

// boundFor sums minOut over cities not in visited, skipping next.
//
// Complexity: O(n).
func boundFor(costSoFar float64, minOut []float64, visited []bool, next int) float64 {
	var (
		sum = costSoFar
		k   int
	)
	for k = range minOut {
		if !visited[k] && k != next {
			sum += minOut[k]
		}
	}

	return sum
}

// MinOutgoingEdges validates dist and returns the per-city minimum real
// outgoing edge cost (0 for a city without outgoing edges).
//
// Errors: MalformedInput sentinels from types.go.
//
// Complexity: O(n²).
func MinOutgoingEdges(dist matrix.Matrix) ([]float64, error) {
	n, w, err := loadDense(dist)
	if err != nil {
		return nil, err
	}

	return minOutgoing(n, w), nil
}

// LowerBound returns partialCost plus minOut[k] for every k in unvisited.
// The caller passes the cities that still need an outgoing edge, excluding
// the city just appended to the path. Out-of-range indices are ignored.
//
// Complexity: O(len(unvisited)).
func LowerBound(partialCost float64, minOut []float64, unvisited []int) float64 {
	var (
		sum = partialCost
		k   int
	)
	for _, k = range unvisited {
		if k >= 0 && k < len(minOut) {
			sum += minOut[k]
		}
	}

	return sum
}
