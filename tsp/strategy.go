// Package tsp - strategy abstraction.
//
// The Optimizer never branches on algorithms itself: SelectStrategy maps the
// instance size to a Kind (a pure function), and each Kind is backed by a
// Strategy built once in NewOptimizer.
//
//	KindHeuristic → HeuristicSolver (nearest neighbor + 2-opt), always available.
//	KindExact     → fallbackStrategy{ExactSolver, HeuristicSolver}.
//
// fallbackStrategy is what makes the exact path silent: any failure of the
// primary is logged at debug level and answered by the secondary with the
// same contract.
package tsp

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/matrix"
)

// Strategy produces a depot-rooted tour for a validated distance matrix.
// closed asks for a tour that returns to Depot; strategies optimize that
// objective and may return the tour either closed or open.
type Strategy interface {
	Name() string
	Solve(ctx context.Context, dist matrix.Matrix, closed bool) (Solution, error)
}

// Kind identifies a strategy family.
type Kind int

const (
	KindHeuristic Kind = iota
	KindExact
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindExact {
		return "exact"
	}

	return "heuristic"
}

// SelectStrategy picks the strategy family for an instance of n nodes.
// The exact family is chosen only when it is enabled, compiled in and n
// exceeds the threshold.
//
// Complexity: O(1).
func SelectStrategy(n int, cfg Config, exactAvailable bool) Kind {
	if cfg.ExactEnabled && exactAvailable && n > cfg.Threshold {
		return KindExact
	}

	return KindHeuristic
}

// HeuristicSolver builds a nearest-neighbor tour and refines it with 2-opt.
type HeuristicSolver struct {
	cfg Config
}

// NewHeuristicSolver binds cfg.
func NewHeuristicSolver(cfg Config) *HeuristicSolver { return &HeuristicSolver{cfg: cfg} }

// Name implements Strategy.
func (s *HeuristicSolver) Name() string { return "nearest-neighbor+2opt" }

// Solve implements Strategy. For closed requests the depot is appended
// before 2-opt, so the return arc is part of the improved objective.
func (s *HeuristicSolver) Solve(ctx context.Context, dist matrix.Matrix, closed bool) (Solution, error) {
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return Solution{}, err
	}
	if n <= 1 {
		return Solution{Tour: []int{Depot}, Strategy: s.Name()}, nil
	}

	tour, st := heuristicTour(ctx, w, n, closed, s.cfg)

	if st.Capped {
		s.cfg.Logger.WithFields(logrus.Fields{
			"n":      n,
			"passes": st.Passes,
		}).Debug("2-opt stopped at pass cap")
	}

	return Solution{
		Tour:      tour,
		Cost:      st.Cost,
		Strategy:  s.Name(),
		Capped:    st.Capped,
		Cancelled: st.Cancelled,
	}, nil
}

// heuristicTour builds the nearest-neighbor tour (closed when asked) and
// improves it with 2-opt. The exact engines reuse it as their warm start.
func heuristicTour(ctx context.Context, w []float64, n int, closed bool, cfg Config) ([]int, TwoOptStats) {
	tour := nearestNeighborFlat(w, n)
	if closed {
		tour = append(tour, Depot)
	}

	return twoOptFlat(ctx, w, n, tour, cfg)
}

// fallbackStrategy answers with secondary whenever primary fails.
type fallbackStrategy struct {
	primary   Strategy
	secondary Strategy
	log       logrus.FieldLogger
}

// Name implements Strategy.
func (f *fallbackStrategy) Name() string { return f.primary.Name() }

// Solve implements Strategy.
func (f *fallbackStrategy) Solve(ctx context.Context, dist matrix.Matrix, closed bool) (Solution, error) {
	sol, perr := f.primary.Solve(ctx, dist, closed)
	if perr == nil {
		return sol, nil
	}

	f.log.WithFields(logrus.Fields{
		"n":        dist.Rows(),
		"strategy": f.primary.Name(),
		"reason":   perr.Error(),
	}).Debug("exact strategy failed, falling back to heuristic")

	sol, err := f.secondary.Solve(ctx, dist, closed)
	if err != nil {
		return Solution{}, err
	}
	sol.Fallback = true
	sol.Reason = f.primary.Name() + ": " + perr.Error()

	return sol, nil
}
