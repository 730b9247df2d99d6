// Package tsp - deterministic random instances.
//
// RandomRows builds reproducible cost matrices for tests, benchmarks and the
// CLI "gen" command.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every call owns its own stream.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RandomConfig shapes the matrices produced by RandomRows.
type RandomConfig struct {
	// Symmetric mirrors the upper triangle into the lower one.
	Symmetric bool

	// MaxCost is the inclusive upper bound of integral edge costs (≥ 1).
	MaxCost int

	// MissingProb is the probability in [0,1) that an edge is absent (0).
	MissingProb float64
}

// DefaultRandomConfig returns symmetric, complete matrices with costs in [1,100].
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{Symmetric: true, MaxCost: 100}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomRows returns an n×n matrix with zero diagonal and integral costs in
// [1, cfg.MaxCost]; each off-diagonal edge is dropped (set to 0) with
// probability cfg.MissingProb. For n < 1 it returns ErrEmptyMatrix.
//
// Complexity: O(n²).
func RandomRows(n int, seed int64, cfg RandomConfig) ([][]float64, error) {
	if n < 1 {
		return nil, ErrEmptyMatrix
	}
	if cfg.MaxCost < 1 || cfg.MissingProb < 0 || cfg.MissingProb >= 1 {
		return nil, ErrBadOptions
	}

	var (
		r    = rngFromSeed(seed)
		rows = make([][]float64, n)
		i, j int
	)
	for i = range rows {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (cfg.Symmetric && j < i) {
				continue
			}
			var c float64
			if r.Float64() >= cfg.MissingProb {
				c = float64(1 + r.Intn(cfg.MaxCost))
			}
			rows[i][j] = c
			if cfg.Symmetric {
				rows[j][i] = c
			}
		}
	}

	return rows, nil
}
