// Package tsp_test - benchmarks for the exact solvers.
//
// Policy:
//   - Deterministic instances (fixed seeds); inputs built outside the timer.
//   - Sizes tuned to stay fast on CI while still exercising pruning.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/bnbtsp/tsp"
)

func benchSolve(b *testing.B, n int, opts tsp.Options) {
	b.Helper()
	d := mustDense(b, mustRandom(b, n, 2024, tsp.DefaultRandomConfig()))
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(ctx, d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBB_IndexOrder_n10 measures the default configuration.
func BenchmarkBB_IndexOrder_n10(b *testing.B) {
	benchSolve(b, 10, tsp.DefaultOptions())
}

// BenchmarkBB_NearestFirst_n10 measures the cheaper-edge-first branching.
func BenchmarkBB_NearestFirst_n10(b *testing.B) {
	opts := tsp.DefaultOptions()
	opts.Order = tsp.NearestFirst
	benchSolve(b, 10, opts)
}

// BenchmarkBB_NoBound_n8 measures plain exhaustive enumeration.
func BenchmarkBB_NoBound_n8(b *testing.B) {
	opts := tsp.DefaultOptions()
	opts.Bound = tsp.NoBound
	benchSolve(b, 8, opts)
}

// BenchmarkHeldKarp_n10 measures the DP oracle on the same kind of instance.
func BenchmarkHeldKarp_n10(b *testing.B) {
	d := mustDense(b, mustRandom(b, 10, 2024, tsp.DefaultRandomConfig()))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TSPExact(d); err != nil {
			b.Fatal(err)
		}
	}
}
