// Package tsp - cost utilities.
//
// TourCost sums the edge costs along a closed tour. It applies the same
// edge policy as the solver: off-diagonal 0 or +Inf is a missing edge.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// TourCost returns Σ cost(tour[i]→tour[i+1]) over a closed tour.
//
// Contract:
//   - dist is square; tour is closed (tour[0]==tour[len-1]) and its
//     indices lie in [0..n-1].
//   - The degenerate single-city tour [v v] costs 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight,
// ErrNaNWeight, or ErrNoHamiltonianCycle when the tour uses a missing edge.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var n = dist.Rows()
	if n != dist.Cols() || n < 1 {
		return 0, ErrNonSquare
	}
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return 0, ErrDimensionMismatch
	}
	if len(tour) == 2 {
		if tour[0] < 0 || tour[0] >= n {
			return 0, ErrDimensionMismatch
		}
		return 0, nil
	}

	var (
		sum  float64
		i    int
		u, v int
		x    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return 0, ErrDimensionMismatch
		}
		x, err = dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
		}
		switch {
		case math.IsNaN(x) || math.IsInf(x, -1):
			return 0, ErrNaNWeight
		case x < 0:
			return 0, ErrNegativeWeight
		case x == 0 || math.IsInf(x, 1):
			return 0, fmt.Errorf("%w: tour uses missing edge %d→%d", ErrNoHamiltonianCycle, u, v)
		}
		sum += x
	}

	return sum, nil
}
