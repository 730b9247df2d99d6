// Package bnbtsp is an exact Travelling Salesman solver built on
// depth-first Branch-and-Bound.
//
// What is bnbtsp?
//
//	Given an n×n cost matrix, it finds a minimum-cost tour that starts at
//	city 0, visits every other city exactly once and returns to city 0.
//	Asymmetric costs and missing edges (0 or +Inf off the diagonal) are
//	accepted. Infeasible instances are reported, never guessed.
//
// Layout:
//
//	matrix/            - immutable dense cost matrix (the only input)
//	tsp/               - Branch-and-Bound search, lower bound, tour utilities,
//	                     Held–Karp oracle for cross-checks
//	internal/instance/ - YAML/JSON instance files
//	internal/metrics/  - Prometheus collectors for solves
//	internal/history/  - SQLite log of finished solves
//	cmd/tspbb/         - command-line front end
//	examples/          - sample instances, config and a runnable program
//
// Quick start:
//
//	res, err := tsp.SolveRows(ctx, [][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	}, tsp.DefaultOptions())
//	// res.Tour == [0 1 3 2 0], res.Cost == 80
package bnbtsp
