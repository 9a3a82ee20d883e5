// Package tsp - 2-opt local search.
//
// TwoOpt refines a tour rooted at Depot by reversing segments. Position 0
// never moves, and neither does the final position (the closing depot of a
// closed tour, or the terminal stop of an open one).
//
// Move (inclusive indices, 1 ≤ i < k ≤ len(tour)−2):
//
//	a=T[i−1], b=T[i], c=T[k], d=T[k+1]
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) + (Σ reversed inner arcs − Σ forward inner arcs)
//
// The inner term is zero on symmetric matrices and keeps the objective exact
// on asymmetric ones. It is accumulated incrementally while k grows, so every
// candidate costs O(1).
//
// Acceptance: Δ < −(Eps + r), where r bounds the floating-point round-off of
// the two sums. r grows with the magnitude of the arcs involved, so a move
// next to a matrix.Unreachable arc is still judged by its real gain (anything
// above ~1e-5 at 1e9) while rounding noise can never pass as an improvement.
//
// Policies:
//   - FirstImprovement: apply the first accepted move and restart the
//     scan from i = 1 (one pass per accepted move).
//   - BestImprovement: apply the best move of a full scan per pass.
//
// Termination: a pass without an improving move (local optimum), MaxPasses
// passes, or a cancelled ctx (checked once per pass). The last two return the
// best tour so far with a flag set in TwoOptStats, never an error.
//
// Complexity: O(n²) per pass, O(MaxPasses·n²) overall; O(n) extra space.
package tsp

import (
	"context"

	"github.com/katalvlaran/lvroute/matrix"
)

// machineEps is the float64 unit round-off (2⁻⁵²).
const machineEps = 0x1p-52

// TwoOptStats reports how a TwoOpt run ended.
type TwoOptStats struct {
	Passes    int     // scans started
	Moves     int     // reversals applied
	Capped    bool    // stopped by MaxPasses while still improving
	Cancelled bool    // stopped by ctx
	Cost      float64 // objective of the returned tour (incrementally tracked)
}

// TwoOpt improves tour under cfg.Policy and returns a fresh slice; the input
// is never modified. Tours of at most 3 distinct nodes admit no move and are
// returned unchanged.
//
// Errors: ErrInvalidTour if tour is not rooted at Depot or not a permutation
// (optionally closed); matrix errors for a malformed dist.
func TwoOpt(ctx context.Context, dist matrix.Matrix, tour []int, cfg Config) ([]int, TwoOptStats, error) {
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return nil, TwoOptStats{}, err
	}
	if err = ValidateTour(tour, n, IsClosed(tour)); err != nil {
		return nil, TwoOptStats{}, err
	}

	cur, st := twoOptFlat(ctx, w, n, CopyTour(tour), cfg)

	return cur, st, nil
}

// twoOptFlat is the engine behind TwoOpt; cur is owned and mutated in place.
func twoOptFlat(ctx context.Context, w []float64, n int, cur []int, cfg Config) ([]int, TwoOptStats) {
	at := func(u, v int) float64 { return w[u*n+v] }

	var st TwoOptStats
	st.Cost = flatCost(w, n, cur)
	if n <= 3 {
		return cur, st
	}

	var (
		last     = len(cur) - 1 // fixed terminal position
		maxPass  = cfg.MaxPasses
		eps      = cfg.Eps
		best     = cfg.Policy == BestImprovement
		improved bool
	)
	if eps < 0 {
		eps = 0
	}

	for {
		if maxPass > 0 && st.Passes >= maxPass {
			st.Capped = improved
			break
		}
		if ctx != nil && ctx.Err() != nil {
			st.Cancelled = true
			break
		}
		st.Passes++
		improved = false

		var (
			a, b, c, d int
			i, k       int
			fwd, rev   float64 // inner arcs of T[i..k], forward and reversed
			removed    float64
			added      float64
			delta      float64
			bestDelta  float64
			bestI      int
			bestK      int
		)

	scan:
		for i = 1; i <= last-2; i++ {
			fwd, rev = 0, 0
			a = cur[i-1]
			b = cur[i]
			for k = i + 1; k <= last-1; k++ {
				fwd += at(cur[k-1], cur[k])
				rev += at(cur[k], cur[k-1])
				c = cur[k]
				d = cur[k+1]

				removed = at(a, b) + at(c, d) + fwd
				added = at(a, c) + at(b, d) + rev
				delta = added - removed
				// Eps plus the round-off bound of both sums (k-i+3 terms each).
				if delta >= -(eps + float64(k-i+3)*machineEps*(added+removed)) {
					continue
				}
				if !best {
					reverseInPlace(cur, i, k)
					st.Cost += delta
					st.Moves++
					improved = true

					break scan
				}
				if !improved || delta < bestDelta {
					bestDelta, bestI, bestK = delta, i, k
					improved = true
				}
			}
		}

		if best && improved {
			reverseInPlace(cur, bestI, bestK)
			st.Cost += bestDelta
			st.Moves++
		}
		if !improved {
			break
		}
	}

	st.Cost = round1e9(st.Cost)

	return cur, st
}

// flatCost sums consecutive arcs of tour over a row-major buffer.
func flatCost(w []float64, n int, tour []int) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k+1 < len(tour); k++ {
		sum += w[tour[k]*n+tour[k+1]]
	}

	return sum
}
