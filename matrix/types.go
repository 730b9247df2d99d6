// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface consumed by solvers.
package matrix

// Matrix represents a two-dimensional read-only array of float64 values.
//
// The interface deliberately has no Set: a cost table handed to a solver
// must not change while the solver runs. Implementations are expected to be
// O(1) per call.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
