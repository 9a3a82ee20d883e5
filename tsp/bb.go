//go:build !noexact

// Package tsp — Branch-and-Bound over integer-scaled costs.
//
// branchAndBound enumerates depot-rooted Hamiltonian paths (open) or cycles
// (closed) depth-first with deterministic branching, an admissible lower
// bound, a node budget and a soft deadline.
//
// Rationale (succinct):
//  1. Costs arrive pre-scaled to int64 (see scale.go), so comparisons are exact
//     and no epsilon is needed.
//  2. The incumbent is seeded with the cheaper of the caller's warm-start
//     tour (nearest neighbor + 2-opt) and a cheapest-arc walk from the depot.
//     A finite matrix therefore always has an answer, pruning starts from a
//     tight upper bound, and budget exhaustion returns the incumbent unproven.
//  3. Lower bound (degree-1 relaxation), with U = unvisited nodes:
//     closed: every node of U ∪ {last} still needs an outgoing arc and every
//     node of U ∪ {Depot} an incoming one, so
//     LB = cost + max(Σ minOut, Σ minIn).
//     open:   every node of U needs an incoming arc; all but one node of
//     U ∪ {last} needs an outgoing arc, so
//     LB = cost + max(Σ minIn(U), Σ minOut(U ∪ {last}) − max minOut).
//     Prune whenever LB ≥ UB.
//  4. Branching order: from the current node, try successors in ascending
//     arc cost (index tiebreak).
//  5. Cancellation, deadline and node budget are checked every 4096 nodes;
//     any of them stops the search and keeps the incumbent.
//
// Complexity:
//   - Worst case exponential in n; practical speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates.
//   - Memory: O(n²) for precomputes + O(n) for the search state.
package tsp

import (
	"context"
	"math"
	"slices"
	"time"
)

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration / policy
	n        int
	closed   bool
	maxNodes int64

	// Budget
	ctx      context.Context
	deadline time.Time
	nodes    int64
	stopped  bool

	// Scaled weights: w[u*n+v]
	w []int64

	// Precomputes for bound / branching order
	minOut []int64
	minIn  []int64
	order  [][]int

	// Current search state
	visited []bool
	path    []int

	// Incumbent
	bestTour []int
	bestCost int64
}

func (e *bbEngine) at(u, v int) int64 { return e.w[u*e.n+v] }

// tick counts one node and polls the budget every 4096 nodes.
func (e *bbEngine) tick() bool {
	if e.stopped {
		return true
	}
	e.nodes++
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		e.stopped = true

		return true
	}
	if e.nodes&4095 == 0 && expired(e.ctx, e.deadline) {
		e.stopped = true
	}

	return e.stopped
}

// precompute fills minOut/minIn (excluding self-loops) and the branching order.
func (e *bbEngine) precompute() {
	var (
		u, v   int
		mo, mi int64
	)
	e.minOut = make([]int64, e.n)
	e.minIn = make([]int64, e.n)
	e.order = make([][]int, e.n)
	for v = 0; v < e.n; v++ {
		mo, mi = math.MaxInt64, math.MaxInt64
		row := make([]int, 0, e.n-1)
		for u = 0; u < e.n; u++ {
			if u == v {
				continue
			}
			row = append(row, u)
			if c := e.at(v, u); c < mo {
				mo = c
			}
			if c := e.at(u, v); c < mi {
				mi = c
			}
		}
		e.minOut[v] = mo
		e.minIn[v] = mi

		from := v
		slices.SortStableFunc(row, func(x, y int) int {
			cx, cy := e.at(from, x), e.at(from, y)
			switch {
			case cx < cy:
				return -1
			case cx > cy:
				return 1
			default:
				return x - y
			}
		})
		e.order[v] = row
	}
}

// seed installs the cheaper of warm and the cheapest-arc walk from the depot
// as the incumbent. warm is copied; a malformed warm tour is ignored.
func (e *bbEngine) seed(warm []int) {
	var (
		tour    = make([]int, 0, e.n+1)
		visited = make([]bool, e.n)
		cur     = Depot
		cost    int64
		v       int
	)
	tour = append(tour, cur)
	visited[cur] = true
	for len(tour) < e.n {
		for _, v = range e.order[cur] {
			if !visited[v] {
				break
			}
		}
		visited[v] = true
		cost += e.at(cur, v)
		tour = append(tour, v)
		cur = v
	}
	if e.closed {
		cost += e.at(cur, Depot)
		tour = append(tour, Depot)
	}
	e.bestTour = tour
	e.bestCost = cost

	if ValidateTour(warm, e.n, e.closed) != nil {
		return
	}
	var wc int64
	for v = 0; v+1 < len(warm); v++ {
		wc += e.at(warm[v], warm[v+1])
	}
	if wc < e.bestCost {
		copy(e.bestTour, warm)
		e.bestCost = wc
	}
}

// lowerBound implements the degree-1 relaxation documented above.
func (e *bbEngine) lowerBound(costSoFar int64, last int) int64 {
	var (
		sumOut, sumIn, maxOut int64
		v                     int
	)
	sumOut = e.minOut[last]
	maxOut = e.minOut[last]
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			continue
		}
		sumOut += e.minOut[v]
		sumIn += e.minIn[v]
		if e.minOut[v] > maxOut {
			maxOut = e.minOut[v]
		}
	}
	if e.closed {
		sumIn += e.minIn[Depot]
	} else {
		sumOut -= maxOut
	}

	if sumIn > sumOut {
		return costSoFar + sumIn
	}

	return costSoFar + sumOut
}

// commit records the current full path as the new incumbent.
func (e *bbEngine) commit(total int64) {
	copy(e.bestTour, e.path)
	if e.closed {
		e.bestTour[e.n] = Depot
	}
	e.bestCost = total
}

// dfs performs the core search: deterministic branching + pruning by LB ≥ UB.
func (e *bbEngine) dfs(last int, depth int, costSoFar int64) {
	if e.tick() {
		return
	}

	if depth == e.n {
		total := costSoFar
		if e.closed {
			total += e.at(last, Depot)
		}
		if total < e.bestCost {
			e.commit(total)
		}

		return
	}

	if e.lowerBound(costSoFar, last) >= e.bestCost {
		return
	}

	var v int
	for _, v = range e.order[last] {
		if e.visited[v] {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+e.at(last, v))
		e.visited[v] = false
		if e.stopped {
			return
		}
	}
}

// bbResult reports the search outcome.
type bbResult struct {
	tour   []int
	cost   int64
	proven bool
	nodes  int64
}

// branchAndBound runs the search on scaled weights, starting from warm (may be
// nil). It fails only when ctx is already done on entry (ErrSolverTimeout);
// afterwards it always returns the incumbent, proven optimal when the search
// ran to completion.
func branchAndBound(ctx context.Context, w []int64, n int, closed bool, maxNodes int64, deadline time.Time, warm []int) (bbResult, error) {
	if expired(ctx, deadline) {
		return bbResult{}, ErrSolverTimeout
	}
	if n < 2 {
		return bbResult{tour: []int{Depot}, proven: true}, nil
	}

	e := bbEngine{
		n:        n,
		closed:   closed,
		maxNodes: maxNodes,
		ctx:      ctx,
		deadline: deadline,
		w:        w,
	}
	e.precompute()
	e.seed(warm)

	e.visited = make([]bool, n)
	e.path = make([]int, n)
	e.path[0] = Depot
	e.visited[Depot] = true

	e.dfs(Depot, 1, 0)

	if len(e.bestTour) == 0 {
		return bbResult{}, ErrNoSolutionFound
	}

	return bbResult{
		tour:   e.bestTour,
		cost:   e.bestCost,
		proven: !e.stopped,
		nodes:  e.nodes,
	}, nil
}
