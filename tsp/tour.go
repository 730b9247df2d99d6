// Package tsp - tour utilities.
//
// Compact helpers operating purely on tour structure (index sequences):
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - ReverseTour: the same cycle traversed in the opposite direction.
//   - CopyTour: independent copy of a tour slice.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each city v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrDimensionMismatch
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ReverseTour returns a fresh closed tour visiting the same cycle in the
// opposite direction; the start vertex stays at both ends.
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	var (
		n   = len(tour)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
