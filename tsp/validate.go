// Package tsp - validation utilities.
//
// This file contains small helpers that:
//  1. Validate Options combinations (enum ranges, budgets).
//  2. Validate distance matrices (shape, negativity, NaN) and load them into
//     a dense row-major buffer for the search hot loop.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Bound {
	case MinOutgoingBound, NoBound:
	default:
		return fmt.Errorf("%w: unknown bound %v", ErrBadOptions, opts.Bound)
	}
	switch opts.Order {
	case IndexOrder, NearestFirst:
	default:
		return fmt.Errorf("%w: unknown branch order %v", ErrBadOptions, opts.Order)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit", ErrBadOptions)
	}
	if opts.MaxNodes < 0 {
		return fmt.Errorf("%w: negative node budget", ErrBadOptions)
	}

	return nil
}

// loadDense validates dist and copies it into a flat row-major buffer.
//
// Policy:
//   - dist must be non-nil and square with n ≥ 1,
//   - the diagonal is never read as an edge and is ignored,
//   - off-diagonal NaN or -Inf ⇒ ErrNaNWeight, negative ⇒ ErrNegativeWeight,
//   - off-diagonal 0 or +Inf means "no direct edge" and is normalized to +Inf,
//     so the hot loop needs a single IsInf test per edge.
//
// Returns the order n and the buffer w with w[i*n+j] = cost(i→j).
//
// Complexity: O(n²) time and memory.
func loadDense(dist matrix.Matrix) (int, []float64, error) {
	if dist == nil {
		return 0, nil, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr < 1 || nc < 1 {
		return 0, nil, ErrEmptyMatrix
	}
	if nr != nc {
		return 0, nil, ErrNonSquare
	}

	var (
		n    = nr
		w    = make([]float64, n*n)
		inf  = math.Inf(1)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				w[i*n+j] = inf
				continue
			}
			x, err = dist.At(i, j)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: cost(%d,%d): %v", ErrNonSquare, i, j, err)
			}
			if math.IsNaN(x) || math.IsInf(x, -1) {
				return 0, nil, fmt.Errorf("%w at (%d,%d)", ErrNaNWeight, i, j)
			}
			if x < 0 {
				return 0, nil, fmt.Errorf("%w at (%d,%d): %g", ErrNegativeWeight, i, j, x)
			}
			if x == 0 {
				x = inf
			}
			w[i*n+j] = x
		}
	}

	return n, w, nil
}

// hasDeadEnd reports whether some city lacks every outgoing or every
// incoming real edge. Such an instance has no Hamiltonian cycle when n > 1.
//
// Complexity: O(n²).
func hasDeadEnd(n int, w []float64) bool {
	if n < 2 {
		return false
	}
	var (
		v, u       int
		hasOut, in bool
	)
	for v = 0; v < n; v++ {
		hasOut, in = false, false
		for u = 0; u < n; u++ {
			if u == v {
				continue
			}
			if !math.IsInf(w[v*n+u], 1) {
				hasOut = true
			}
			if !math.IsInf(w[u*n+v], 1) {
				in = true
			}
		}
		if !hasOut || !in {
			return true
		}
	}

	return false
}
