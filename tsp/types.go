// Package tsp - shared types, options and sentinel errors.
//
// All solvers in this package return ONLY the sentinels declared here
// (possibly wrapped with positional context); callers match them with
// errors.Is. No function panics on user input.
package tsp

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrMalformedInput is the umbrella for every structural input defect. It is
// reported before any search starts.
var ErrMalformedInput = errors.New("tsp: malformed input")

var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = fmt.Errorf("%w: nil distance matrix", ErrMalformedInput)

	// ErrEmptyMatrix is returned when the matrix has no cities (n < 1).
	ErrEmptyMatrix = fmt.Errorf("%w: empty distance matrix", ErrMalformedInput)

	// ErrNonSquare is returned when the matrix is not n×n.
	ErrNonSquare = fmt.Errorf("%w: distance matrix is not square", ErrMalformedInput)

	// ErrNegativeWeight is returned for a negative off-diagonal cost.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge cost", ErrMalformedInput)

	// ErrNaNWeight is returned for a NaN or -Inf off-diagonal cost.
	ErrNaNWeight = fmt.Errorf("%w: NaN or -Inf edge cost", ErrMalformedInput)
)

var (
	// ErrNoHamiltonianCycle is returned when the instance admits no tour that
	// visits every city once and returns to the root. The accompanying Result
	// carries Cost == +Inf and a nil Tour.
	ErrNoHamiltonianCycle = errors.New("tsp: no Hamiltonian cycle")

	// ErrBadOptions is returned when Options are inconsistent (unknown enum
	// value, negative budget).
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrTimeLimit is returned when Options.TimeLimit or the context deadline
	// expires before the search completes.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrCanceled is returned when the context is canceled mid-search.
	ErrCanceled = errors.New("tsp: search canceled")

	// ErrNodeLimit is returned when Options.MaxNodes is exhausted.
	ErrNodeLimit = errors.New("tsp: node budget exhausted")

	// ErrTooManyCities is returned by TSPExact when n exceeds MaxExactCities.
	ErrTooManyCities = errors.New("tsp: too many cities for Held-Karp")

	// ErrDimensionMismatch is returned by tour utilities when a tour does not
	// match the matrix order or the Hamiltonian-cycle invariants.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// Root is the fixed start and end city of every tour.
const Root = 0

// BoundAlgo selects the lower bound used for pruning.
type BoundAlgo int

const (
	// MinOutgoingBound prunes with costSoFar + Σ minOut over unvisited cities.
	MinOutgoingBound BoundAlgo = iota

	// NoBound disables pruning entirely (exhaustive enumeration). Testing only.
	NoBound
)

// String implements fmt.Stringer.
func (b BoundAlgo) String() string {
	switch b {
	case MinOutgoingBound:
		return "min-outgoing"
	case NoBound:
		return "none"
	default:
		return fmt.Sprintf("BoundAlgo(%d)", int(b))
	}
}

// BranchOrder selects the order in which candidate next cities are tried.
// It only decides which of several equal-cost optima is reported.
type BranchOrder int

const (
	// IndexOrder tries unvisited cities in ascending index order.
	IndexOrder BranchOrder = iota

	// NearestFirst tries cheaper edges first (index tiebreak). The incumbent
	// usually tightens sooner, so more branches get pruned.
	NearestFirst
)

// String implements fmt.Stringer.
func (o BranchOrder) String() string {
	switch o {
	case IndexOrder:
		return "index"
	case NearestFirst:
		return "nearest"
	default:
		return fmt.Sprintf("BranchOrder(%d)", int(o))
	}
}

// Options configures Solve.
type Options struct {
	// Bound selects the pruning bound (MinOutgoingBound by default).
	Bound BoundAlgo

	// Order selects the branching order (IndexOrder by default).
	Order BranchOrder

	// TimeLimit is a soft wall-clock budget; 0 means unlimited.
	TimeLimit time.Duration

	// MaxNodes caps the number of search nodes; 0 means unlimited.
	MaxNodes int64

	// RejectDeadEnds reports ErrNoHamiltonianCycle up front when some city
	// has no outgoing or no incoming edge (n > 1).
	RejectDeadEnds bool

	// Logger receives Debug-level search events. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the canonical configuration: min-outgoing bound,
// ascending index order, no budgets, dead-end rejection on.
func DefaultOptions() Options {
	return Options{
		Bound:          MinOutgoingBound,
		Order:          IndexOrder,
		RejectDeadEnds: true,
	}
}

// Stats summarizes one search.
type Stats struct {
	Nodes        int64         // recursive calls (search-tree nodes entered)
	Pruned       int64         // candidate branches cut by the lower bound
	Leaves       int64         // complete tours closed back to the root
	Improvements int64         // incumbent updates
	Elapsed      time.Duration // wall-clock time spent in the solver
}

// Result holds the outcome of a solve.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at Root.
	// For n cities, len(Tour) == n+1. Nil when no tour was found.
	Tour []int

	// Cost is the total cost of Tour, or +Inf when no tour was found.
	Cost float64

	// Optimal reports whether the search ran to completion, so Tour is
	// proven optimal. False when a budget cut the search short.
	Optimal bool

	// Stats describes the search effort.
	Stats Stats
}

// Found reports whether the result carries a complete tour.
func (r Result) Found() bool { return r.Tour != nil }
