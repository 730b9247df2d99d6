// Package matrix offers the immutable cost table consumed by the solvers.
//
// The matrix package provides:
//
//   - Matrix, a read-only interface (Rows, Cols, At) so solvers can accept
//     any square table without copying it into a concrete type first.
//   - Dense, a row-major implementation built with NewDenseFromRows. It
//     copies its input, so later edits by the caller are never observed.
//
// Indexers return ErrIndexOutOfBounds instead of panicking; constructors
// return ErrInvalidDimensions or ErrNonSquare for malformed shapes.
package matrix
