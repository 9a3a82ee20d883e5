// Package tsp orders the stops of a single-vehicle route.
//
// Given a CostMatrix of pairwise travel costs between N locations (node 0 is
// the depot), it returns a visiting order that approximately minimizes total
// travel cost, optionally returning to the depot.
//
// Strategies:
//
//   - HeuristicSolver: nearest-neighbor construction (O(n²)) refined by 2-opt
//     (first-improvement by default, O(n²) per pass, capped at MaxPasses).
//
//   - ExactSolver: used when N exceeds Config.Threshold. Costs are scaled to
//     int64 and solved by Held–Karp (n ≤ HeldKarpMaxN) or branch-and-bound
//     under a node/time budget. Any failure silently falls back to the
//     heuristic with the same result contract. Building with the "noexact"
//     tag compiles the exact engines out.
//
// The Optimizer facade validates input, selects the strategy, applies
// return-to-start and always recomputes the total from the matrix:
//
//	opt, err := tsp.NewOptimizer(tsp.WithThreshold(15))
//	if err != nil { … }
//	res, err := opt.Optimize(ctx, cm, true)
//	// res.Tour = [0 3 1 2 0], res.Cost = Σ cm.Distance along res.Tour
//
// Unreachable pairs are expressed with the finite matrix.Unreachable sentinel;
// they are valid input and only degrade tour quality. Only ErrInvalidMatrix
// (and ErrInvalidConfig at construction) ever reach callers.
package tsp
