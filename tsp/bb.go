// Package tsp - Branch-and-Bound (exact search with an admissible lower bound).
//
// Solve enumerates Hamiltonian cycles rooted at city 0 via a depth-first
// Branch-and-Bound (BnB) search with deterministic branching, the
// minimum-outgoing-edge lower bound (bound.go) and optional budgets.
// Asymmetric matrices are accepted; the bound does not need symmetry.
//
// Rationale (succinct):
//  1. Input is validated and prefetched into a dense buffer (validate.go);
//     "no edge" entries (0 or +Inf) become +Inf so the hot loop tests one thing.
//  2. minOut is computed once per solve and only read afterwards.
//  3. Search: DFS over (last, visited, costSoFar, path). For each candidate
//     next city, LB = costSoFar + w[last→next] + Σ minOut[k] over unvisited
//     k ≠ next. Prune whenever LB ≥ best. The visited set and the path buffer
//     are shared by every frame: set before descending, cleared on return.
//  4. Branching order: ascending index (default) or ascending w[last→v]
//     with index tiebreak. Either is deterministic.
//  5. Budgets: the context and MaxNodes are checked sparsely (every 4096
//     node events for the context) so overhead stays negligible.
//
// Complexity:
//   - Worst case O(n!) leaves (exact search). Practical speed comes from pruning.
//   - Per node: O(n) bound per candidate + O(1) state updates.
//   - Memory: O(n) path + O(n) visited + O(n²) dense weights and branch orders.
//   - Recursion depth ≤ n.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// ctxCheckMask sets the cadence of context checks (every 4096 nodes).
const ctxCheckMask = 4095

// bbEngine holds all search data and policies for one solve.
// A dedicated struct (instead of closures or globals) keeps the solver
// reentrant: concurrent solves never share state.
type bbEngine struct {
	// Configuration / policy
	n        int
	useBound bool
	maxNodes int64
	ctx      context.Context
	log      *slog.Logger

	// Graph data (dense buffer): w[u*n+v], +Inf = no edge
	w []float64

	// Precomputes for bound / branching order
	minOut []float64 // per-city minimal outgoing edge, 0 if none
	order  [][]int   // for each u: reachable v≠u in branching order

	// Current search state
	visited []bool // which cities are on the current path
	path    []int  // path[0:depth], path[0] == Root

	// Current best incumbent
	bestTour []int
	bestCost float64

	stats Stats
	stop  error // first abort cause; once set every frame unwinds
}

// at is a fast accessor into the dense weight buffer.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// neighborOrder implements sort.Interface for a row of neighbors ordered by weight.
type neighborOrder struct {
	u   int
	row []int
	e   *bbEngine
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.e.at(no.u, vi), no.e.at(no.u, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}
func (no neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// buildOrder produces, for each u, the cities v≠u reachable by a real edge,
// in ascending index order or, for NearestFirst, by ascending w[u→v].
func (e *bbEngine) buildOrder(policy BranchOrder) {
	var u, v int
	e.order = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if v != u && !math.IsInf(e.at(u, v), 1) {
				row = append(row, v)
			}
		}
		if policy == NearestFirst {
			sort.Sort(neighborOrder{u: u, row: row, e: e})
		}
		e.order[u] = row
	}
}

// halted reports whether the search must unwind, recording the cause.
func (e *bbEngine) halted() bool {
	if e.stop != nil {
		return true
	}
	if e.maxNodes > 0 && e.stats.Nodes > e.maxNodes {
		e.stop = ErrNodeLimit
		return true
	}
	if e.stats.Nodes&ctxCheckMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.stop = contextCause(err)
		return true
	}

	return false
}

// commit records the current full path, closed at Root, as the incumbent.
func (e *bbEngine) commit(total float64) {
	e.path[e.n] = Root
	copy(e.bestTour, e.path)
	e.bestCost = total
	e.stats.Improvements++
	e.log.Debug("incumbent improved",
		slog.Float64("cost", total),
		slog.Int64("nodes", e.stats.Nodes))
}

// dfs performs the core search: deterministic branching + pruning by LB ≥ best.
func (e *bbEngine) dfs(last int, depth int, costSoFar float64) {
	e.stats.Nodes++
	if e.halted() {
		return
	}

	// All cities placed: close the cycle at Root.
	if depth == e.n {
		var closing float64
		if e.n > 1 {
			closing = e.at(last, Root)
			if math.IsInf(closing, 1) {
				return // missing closing edge
			}
		}
		e.stats.Leaves++
		if total := costSoFar + closing; total < e.bestCost {
			e.commit(total)
		}

		return
	}

	var (
		v       int
		newCost float64
	)
	for _, v = range e.order[last] {
		if e.visited[v] {
			continue
		}
		newCost = costSoFar + e.at(last, v)
		if e.useBound && boundFor(newCost, e.minOut, e.visited, v) >= e.bestCost {
			e.stats.Pruned++
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, newCost)
		e.visited[v] = false
		if e.stop != nil {
			return
		}
	}
}

// contextCause maps a context error onto the package sentinels.
func contextCause(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeLimit, err)
	}

	return fmt.Errorf("%w: %w", ErrCanceled, err)
}

// Solve finds a minimum-cost Hamiltonian cycle over dist, starting and ending
// at Root, by exact Branch-and-Bound search.
//
// Contract:
//   - dist is square with n ≥ 1; off-diagonal 0 or +Inf means "no edge";
//     the diagonal is ignored.
//   - On success len(Tour) == n+1, Tour[0] == Tour[n] == Root, every city
//     appears once in Tour[:n], Cost == TourCost(dist, Tour), Optimal == true.
//   - n == 1 yields Tour [0 0] with Cost 0.
//
// Errors:
//   - MalformedInput sentinels (ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare,
//     ErrNegativeWeight, ErrNaNWeight) and ErrBadOptions, before any search.
//   - ErrNoHamiltonianCycle with Result{Cost: +Inf} when no tour exists.
//   - ErrTimeLimit / ErrCanceled / ErrNodeLimit when a budget stops the search;
//     the Result then carries the best tour found so far (if any) with
//     Optimal == false.
func Solve(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	var started = time.Now()
	if err := validateOptions(opts); err != nil {
		return Result{Cost: math.Inf(1)}, err
	}
	n, w, err := loadDense(dist)
	if err != nil {
		return Result{Cost: math.Inf(1)}, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	var e bbEngine
	e.n = n
	e.w = w
	e.ctx = ctx
	e.useBound = opts.Bound != NoBound
	e.maxNodes = opts.MaxNodes
	e.log = opts.Logger
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e.log.Debug("search started",
		slog.Int("cities", n),
		slog.String("bound", opts.Bound.String()),
		slog.String("order", opts.Order.String()))

	if opts.RejectDeadEnds && hasDeadEnd(n, w) {
		e.log.Debug("dead-end city detected, skipping search")
		return Result{Cost: math.Inf(1), Stats: Stats{Elapsed: time.Since(started)}}, ErrNoHamiltonianCycle
	}
	if err = ctx.Err(); err != nil {
		return Result{Cost: math.Inf(1), Stats: Stats{Elapsed: time.Since(started)}}, contextCause(err)
	}

	// Precomputes.
	e.minOut = minOutgoing(n, w)
	e.buildOrder(opts.Order)

	// Search state.
	e.visited = make([]bool, n)
	e.path = make([]int, n+1)
	e.path[0] = Root
	e.visited[Root] = true
	e.bestTour = make([]int, n+1)
	e.bestCost = math.Inf(1)

	e.dfs(Root, 1, 0)

	e.stats.Elapsed = time.Since(started)
	res := Result{Cost: e.bestCost, Stats: e.stats}
	if e.stats.Improvements > 0 {
		res.Tour = e.bestTour
	}

	e.log.Debug("search finished",
		slog.Float64("cost", res.Cost),
		slog.Int64("nodes", e.stats.Nodes),
		slog.Int64("pruned", e.stats.Pruned),
		slog.Int64("leaves", e.stats.Leaves),
		slog.Duration("elapsed", e.stats.Elapsed))

	if e.stop != nil {
		return res, e.stop
	}
	if res.Tour == nil {
		return res, ErrNoHamiltonianCycle
	}
	if err = ValidateTour(res.Tour, n, Root); err != nil {
		return Result{Cost: math.Inf(1), Stats: e.stats}, err
	}
	res.Optimal = true

	return res, nil
}
