// Package tsp - exact strategy.
//
// ExactSolver is the Strategy used above the size threshold. It flattens the
// distance matrix, scales it onto int64 (Config.Scale) and hands it to one of
// two engines:
//
//   - Held–Karp DP when n ≤ Config.HeldKarpMaxN (optimal, O(n²·2ⁿ)),
//   - branch-and-bound otherwise (bounded by Config.MaxNodes / TimeLimit),
//     warm-started from the heuristic tour. An unproven incumbent is polished
//     with 2-opt, and the heuristic tour wins whenever it is cheaper, so this
//     path never returns a worse order than the heuristic alone.
//
// The returned Solution cost is scaled back to the caller's units. Failures
// surface as ErrSolverUnavailable / ErrSolverTimeout / ErrNoSolutionFound
// and are meant to be absorbed by a fallbackStrategy.
package tsp

import (
	"context"
	"time"

	"github.com/katalvlaran/lvroute/matrix"
)

// ExactAvailable reports whether the exact engines are compiled in
// (they are unless the module is built with the "noexact" tag).
func ExactAvailable() bool { return exactCompiled }

// ExactSolver runs the exact engines. The zero value is not usable; build it
// with NewExactSolver.
type ExactSolver struct {
	cfg       Config
	available bool
}

// NewExactSolver binds cfg and the capability resolved by the caller.
func NewExactSolver(cfg Config, available bool) *ExactSolver {
	return &ExactSolver{cfg: cfg, available: available}
}

// Name implements Strategy.
func (s *ExactSolver) Name() string { return "exact" }

// Solve implements Strategy.
func (s *ExactSolver) Solve(ctx context.Context, dist matrix.Matrix, closed bool) (Solution, error) {
	if !s.available {
		return Solution{}, ErrSolverUnavailable
	}
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return Solution{}, err
	}
	scaled, err := scaleCosts(w, n, s.cfg.Scale)
	if err != nil {
		return Solution{}, err
	}

	var deadline time.Time
	if s.cfg.TimeLimit > 0 {
		deadline = time.Now().Add(s.cfg.TimeLimit)
	}

	return solveExact(ctx, w, scaled, n, closed, s.cfg, deadline)
}
