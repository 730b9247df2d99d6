package tsp

import (
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// MaxExactCities bounds TSPExact: its tables hold n·2ⁿ entries.
const MaxExactCities = 16

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic‐programming algorithm.
// It serves as an independent oracle for Solve.
//
// The edge policy matches Solve: off-diagonal 0 or +Inf means "no edge",
// the diagonal is ignored.
//
// It returns a Result containing:
//   - Tour: a slice of length n+1 of city indices, starting and ending at Root.
//   - Cost: total cycle cost.
//
// Or ErrNoHamiltonianCycle (with Cost +Inf) if no Hamiltonian cycle exists,
// ErrTooManyCities when n > MaxExactCities, or a MalformedInput sentinel.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// dp[mask][j] = minimum cost to start at Root, visit exactly the cities in
// mask (Root always included), and end at j.
// After filling dp, we “close” the tour by returning from j back to Root.
func TSPExact(dist matrix.Matrix) (Result, error) {
	n, w, err := loadDense(dist)
	if err != nil {
		return Result{Cost: math.Inf(1)}, err
	}
	if n > MaxExactCities {
		return Result{Cost: math.Inf(1)}, ErrTooManyCities
	}
	if n == 1 {
		return Result{Tour: []int{Root, Root}, Cost: 0, Optimal: true}, nil
	}

	var (
		inf     = math.Inf(1)
		allMask = (1 << n) - 1
		dp      = make([][]float64, 1<<n)
		parent  = make([][]int, 1<<n)
		mask, j int
		k       int
	)
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = inf
			parent[mask][j] = -1
		}
	}
	// Base case: only Root visited, standing at Root.
	dp[1][Root] = 0

	for mask = 1; mask <= allMask; mask++ {
		if mask&1 == 0 {
			continue // subsets must contain Root
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || math.IsInf(dp[prevMask][k], 1) {
					continue
				}
				c := w[k*n+j]
				if math.IsInf(c, 1) {
					continue // no edge k→j
				}
				if cand := dp[prevMask][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the tour by returning to Root.
	var (
		bestCost = inf
		last     = -1
	)
	for j = 1; j < n; j++ {
		c := w[j*n+Root]
		if math.IsInf(c, 1) {
			continue
		}
		if total := dp[allMask][j] + c; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return Result{Cost: inf}, ErrNoHamiltonianCycle
	}

	// Reconstruct tour from parent table.
	tour := make([]int, n+1)
	tour[n] = Root
	mask = allMask
	j = last
	var i int
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = Root

	return Result{Tour: tour, Cost: bestCost, Optimal: true}, nil
}
