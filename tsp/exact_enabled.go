//go:build !noexact

package tsp

import (
	"context"
	"time"
)

const exactCompiled = true

// solveExact dispatches to Held–Karp or branch-and-bound by size.
// w holds the caller's costs, scaled their int64 image.
func solveExact(ctx context.Context, w []float64, scaled []int64, n int, closed bool, cfg Config, deadline time.Time) (Solution, error) {
	if n <= cfg.HeldKarpMaxN {
		tour, cost, err := heldKarp(ctx, scaled, n, closed, deadline)
		if err != nil {
			return Solution{}, err
		}

		return Solution{
			Tour:     tour,
			Cost:     unscaleCost(cost, cfg.Scale),
			Strategy: "held-karp",
			Proven:   true,
		}, nil
	}

	if expired(ctx, deadline) {
		return Solution{}, ErrSolverTimeout
	}
	warm, _ := heuristicTour(ctx, w, n, closed, cfg)

	res, err := branchAndBound(ctx, scaled, n, closed, cfg.MaxNodes, deadline, warm)
	if err != nil {
		return Solution{}, err
	}
	sol := Solution{
		Tour:     res.tour,
		Strategy: "branch-and-bound",
		Proven:   res.proven,
	}
	if !res.proven {
		sol.Tour, _ = twoOptFlat(ctx, w, n, sol.Tour, cfg)
		sol.Cancelled = ctx != nil && ctx.Err() != nil
		sol.Reason = "search budget exhausted"
	}

	// Scaling rounds every arc, so the scaled optimum can trail the
	// heuristic by a rounding margin in the caller's units.
	sol.Cost = flatCost(w, n, sol.Tour)
	if wc := flatCost(w, n, warm); wc < sol.Cost {
		sol.Tour, sol.Cost = warm, wc
	}

	return sol, nil
}
