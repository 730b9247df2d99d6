// Package tsp_test provides runnable, deterministic examples that demonstrate
// how to solve TSP instances with bnbtsp/tsp. Each example prints a tour and
// cost with a stable // Output: block.
package tsp_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bnbtsp/matrix"
	"github.com/katalvlaran/bnbtsp/tsp"
)

// ExampleSolve solves the classic four-city instance.
func ExampleSolve() {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := tsp.Solve(context.Background(), dist, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", res.Tour)
	fmt.Println("cost:", res.Cost)
	// Output:
	// tour: [0 1 3 2 0]
	// cost: 80
}

// ExampleSolveRows shows how an infeasible instance is reported.
func ExampleSolveRows() {
	res, err := tsp.SolveRows(context.Background(), [][]float64{
		{0, 4, 1},
		{4, 0, 2},
		{0, 0, 0}, // city 2 cannot be left
	}, tsp.DefaultOptions())
	fmt.Println(errors.Is(err, tsp.ErrNoHamiltonianCycle), res.Cost, res.Found())
	// Output:
	// true +Inf false
}

// ExampleTSPExact cross-checks Branch-and-Bound with Held–Karp.
func ExampleTSPExact() {
	rows, _ := tsp.RandomRows(8, 7, tsp.DefaultRandomConfig())
	dist, _ := matrix.NewDenseFromRows(rows)

	bnb, _ := tsp.Solve(context.Background(), dist, tsp.DefaultOptions())
	hk, _ := tsp.TSPExact(dist)
	fmt.Println(bnb.Cost == hk.Cost)
	// Output:
	// true
}
