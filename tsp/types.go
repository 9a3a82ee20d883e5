package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Only ErrInvalidMatrix and ErrInvalidConfig ever reach
// Optimizer callers; the solver-side sentinels are recovered internally by
// falling back to the heuristic strategy.
var (
	// ErrInvalidMatrix is returned when the cost matrix is empty, non-square,
	// or holds negative / non-finite values. The matrix sentinel is wrapped
	// alongside it, so errors.Is works for both.
	ErrInvalidMatrix = errors.New("tsp: invalid cost matrix")

	// ErrInvalidConfig is returned by NewOptimizer for out-of-range settings.
	ErrInvalidConfig = errors.New("tsp: invalid configuration")

	// ErrInvalidTour is returned when a tour is not a permutation rooted at
	// the depot (optionally closed by a trailing depot).
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrSolverUnavailable means the exact capability is compiled out or the
	// instance cannot be represented in its integer cost domain.
	ErrSolverUnavailable = errors.New("tsp: exact solver unavailable")

	// ErrSolverTimeout means the exact search was cancelled before it produced
	// any solution.
	ErrSolverTimeout = errors.New("tsp: exact solver timed out")

	// ErrNoSolutionFound means the exact search finished without a feasible tour.
	ErrNoSolutionFound = errors.New("tsp: exact solver found no solution")
)

// Depot is the fixed start node. It never changes position during optimization.
const Depot = 0

// Result is the outcome of one Optimize call.
type Result struct {
	// Tour visits every node exactly once starting at Depot. When the call
	// asked to return to start (and N > 1) the tour ends with a trailing Depot.
	Tour []int

	// Cost is the sum of Distance[Tour[k]][Tour[k+1]] over the final tour,
	// recomputed from the matrix regardless of which strategy produced it.
	Cost float64

	// Duration is the same sum over the duration table (0 when absent).
	Duration int64

	// Strategy names the engine that produced Tour.
	Strategy string

	// Fallback is true when the exact strategy was attempted and the
	// heuristic result was returned instead.
	Fallback bool

	// Proven is true when an exact engine proved the tour optimal
	// (in its integer-scaled cost domain).
	Proven bool

	// Elapsed is the wall-clock time spent inside Optimize.
	Elapsed time.Duration
}

// Solution is what a Strategy hands back to the Optimizer. Tour may be open
// (length N) or closed (length N+1, trailing Depot); the Optimizer normalizes it.
type Solution struct {
	Tour     []int
	Cost     float64 // strategy-side estimate; never trusted by the Optimizer
	Strategy string

	Proven    bool // exact engine completed its search
	Capped    bool // local search stopped on its pass cap
	Cancelled bool // context ended before the search converged
	Fallback  bool // primary strategy failed and the secondary answered
	Reason    string
}

// Leg is one consecutive pair of a tour resolved against the cost matrix.
type Leg struct {
	From     int
	To       int
	Distance float64
	Duration int64
}
