// Package tsp provides an exact Travelling Salesman Problem solver.
//
// Solve runs a depth-first Branch-and-Bound search over an n×n cost
// matrix (matrix.Matrix) and returns a minimum-cost Hamiltonian cycle that
// starts and ends at city 0:
//
//   - Complexity: O(n!) worst case; the minimum-outgoing-edge bound prunes
//     most of the tree on typical inputs.
//
//   - Memory:     O(n²) for the prefetched matrix, O(n) for search state.
//
//   - Supports “missing” edges: an off-diagonal 0 or math.Inf(1).
//
// TSPExact (Held–Karp, O(n²·2ⁿ)) is an independent oracle; CrossCheck runs
// both and compares the optimal costs.
//
// Malformed matrices are rejected before any search with sentinels wrapping
// ErrMalformedInput. An instance without a Hamiltonian cycle yields
// ErrNoHamiltonianCycle together with a Result whose Cost is +Inf.
//
// Use this package on small instances (n≲15 for dense random matrices)
// and wrap long searches with a context deadline or Options.MaxNodes.
package tsp
