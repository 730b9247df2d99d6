// Package tsp - convenience entry points around Solve.
//
//   - SolveRows: accept a plain [][]float64, build an immutable matrix.Dense,
//     then delegate to Solve.
//   - CrossCheck: run Solve and the Held–Karp oracle on the same matrix and
//     report whether their optimal costs agree.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// ErrCrossCheckMismatch is returned by CrossCheck when Branch-and-Bound and
// Held–Karp disagree on the optimal cost.
var ErrCrossCheckMismatch = errors.New("tsp: branch-and-bound and Held-Karp disagree")

// crossCheckTol is the absolute tolerance used to compare optimal costs
// produced by different summation orders.
const crossCheckTol = 1e-9

// SolveRows copies rows into a matrix.Dense and calls Solve.
//
// Errors: ErrEmptyMatrix / ErrNonSquare for malformed shapes, then those of Solve.
func SolveRows(ctx context.Context, rows [][]float64, opts Options) (Result, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return Result{Cost: math.Inf(1)}, ErrEmptyMatrix
		}
		return Result{Cost: math.Inf(1)}, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}

	return Solve(ctx, d, opts)
}

// CrossCheck solves dist with Solve and verifies the cost against TSPExact.
// It returns the Branch-and-Bound result and the Held–Karp cost.
//
// Both solvers reporting ErrNoHamiltonianCycle counts as agreement.
//
// Errors: those of Solve (other than ErrNoHamiltonianCycle), ErrTooManyCities,
// or ErrCrossCheckMismatch.
func CrossCheck(ctx context.Context, dist matrix.Matrix, opts Options) (Result, float64, error) {
	// Refuse oversized instances before paying for the exponential search.
	if dist != nil && dist.Rows() > MaxExactCities {
		return Result{Cost: math.Inf(1)}, math.Inf(1), ErrTooManyCities
	}
	res, err := Solve(ctx, dist, opts)
	if err != nil && !errors.Is(err, ErrNoHamiltonianCycle) {
		return res, math.Inf(1), err
	}
	ref, rerr := TSPExact(dist)
	if rerr != nil && !errors.Is(rerr, ErrNoHamiltonianCycle) {
		return res, math.Inf(1), rerr
	}

	bothInf := math.IsInf(res.Cost, 1) && math.IsInf(ref.Cost, 1)
	if !bothInf && math.Abs(res.Cost-ref.Cost) > crossCheckTol {
		return res, ref.Cost, fmt.Errorf("%w: bnb=%g held-karp=%g", ErrCrossCheckMismatch, res.Cost, ref.Cost)
	}

	return res, ref.Cost, err
}
