// Package tsp - route optimizer facade.
//
// Optimizer is the single entry point: it validates the CostMatrix, picks a
// Strategy by size, applies return-to-start semantics and recomputes the
// total from the matrix.
//
// Contracts:
//   - Precondition: square, N ≥ 1, finite non-negative values, zero diagonal.
//     Violations return ErrInvalidMatrix (wrapping the matrix sentinel) and
//     no partial result.
//   - Return-to-start: a trailing Depot is appended only if the produced
//     tour does not already end there; it is never added twice.
//   - Cost: always Σ dist[tour[k]][tour[k+1]] over the final tour.
//   - N = 1 → [0] with cost 0; N = 2 → [0 1] or [0 1 0].
//
// Concurrency: an Optimizer is immutable after NewOptimizer and may be shared
// by goroutines; each call owns its tour buffers and only reads the matrix.
package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/matrix"
)

// Optimizer orders visits over a CostMatrix.
type Optimizer struct {
	cfg            Config
	exactAvailable bool
	heuristic      Strategy
	exact          Strategy // nil when the exact family cannot be selected
}

// NewOptimizer applies opts over DefaultConfig, validates the result and
// resolves the exact capability once.
//
// Errors: ErrInvalidConfig.
func NewOptimizer(opts ...Option) (*Optimizer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	available := ExactAvailable()
	if cfg.exactCapability != nil {
		available = *cfg.exactCapability
	}

	o := &Optimizer{
		cfg:            cfg,
		exactAvailable: available,
		heuristic:      NewHeuristicSolver(cfg),
	}
	if cfg.ExactEnabled && available {
		o.exact = &fallbackStrategy{
			primary:   NewExactSolver(cfg, available),
			secondary: o.heuristic,
			log:       cfg.Logger,
		}
	}

	return o, nil
}

// Config returns a copy of the effective configuration.
func (o *Optimizer) Config() Config { return o.cfg }

// ExactAvailable reports the capability resolved at construction.
func (o *Optimizer) ExactAvailable() bool { return o.exactAvailable }

// strategyFor returns the Strategy backing the Kind selected for n.
func (o *Optimizer) strategyFor(n int) Strategy {
	if SelectStrategy(n, o.cfg, o.exactAvailable) == KindExact && o.exact != nil {
		return o.exact
	}

	return o.heuristic
}

// Optimize orders the nodes of cm starting at Depot.
//
// Cancellation of ctx never produces an error: the best tour found so far is
// returned (at worst the nearest-neighbor tour).
func (o *Optimizer) Optimize(ctx context.Context, cm *matrix.CostMatrix, returnToStart bool) (Result, error) {
	started := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateCostMatrix(cm); err != nil {
		return Result{}, err
	}

	var (
		n   = cm.Size()
		sol Solution
		err error
	)
	switch {
	case n == 1:
		sol = Solution{Tour: []int{Depot}, Strategy: "trivial", Proven: true}
	case n == 2:
		sol = Solution{Tour: []int{Depot, 1}, Strategy: "trivial", Proven: true}
	default:
		if sol, err = o.strategyFor(n).Solve(ctx, cm.Distance, returnToStart); err != nil {
			return Result{}, err
		}
	}

	tour, err := normalizeTour(sol.Tour, n, returnToStart)
	if err != nil {
		return Result{}, fmt.Errorf("tsp: %s produced a malformed tour: %w", sol.Strategy, err)
	}
	cost, err := TourCost(cm.Distance, tour)
	if err != nil {
		return Result{}, err
	}
	dur, err := TourDuration(cm, tour)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Tour:     tour,
		Cost:     cost,
		Duration: dur,
		Strategy: sol.Strategy,
		Fallback: sol.Fallback,
		Proven:   sol.Proven,
		Elapsed:  time.Since(started),
	}
	o.report(n, sol, res.Elapsed)

	return res, nil
}

// report forwards one Event to the observer and logs at debug level.
func (o *Optimizer) report(n int, sol Solution, elapsed time.Duration) {
	ev := Event{
		N:         n,
		Strategy:  sol.Strategy,
		Fallback:  sol.Fallback,
		Reason:    sol.Reason,
		Proven:    sol.Proven,
		Capped:    sol.Capped,
		Cancelled: sol.Cancelled,
		Elapsed:   elapsed,
	}
	if o.cfg.Observer != nil {
		o.cfg.Observer.ObserveOptimize(ev)
	}
	o.cfg.Logger.WithFields(logrus.Fields{
		"n":        n,
		"strategy": sol.Strategy,
		"fallback": sol.Fallback,
		"proven":   sol.Proven,
		"elapsed":  elapsed,
	}).Debug("route optimized")
}

// normalizeTour validates a strategy tour and applies return-to-start.
// Open and closed inputs are both accepted; the output is closed iff
// returnToStart and n > 1.
//
// Complexity: O(n).
func normalizeTour(tour []int, n int, returnToStart bool) ([]int, error) {
	open := OpenTour(tour)
	if err := ValidateTour(open, n, false); err != nil {
		return nil, err
	}
	if returnToStart {
		return CloseTour(open), nil
	}

	return open, nil
}

// Optimize runs a default Optimizer on a bare distance matrix.
func Optimize(dist matrix.Matrix, returnToStart bool) (Result, error) {
	o, err := NewOptimizer()
	if err != nil {
		return Result{}, err
	}

	return o.Optimize(context.Background(), &matrix.CostMatrix{Distance: dist}, returnToStart)
}
