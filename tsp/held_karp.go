//go:build !noexact

package tsp

import (
	"context"
	"math"
	"time"
)

// heldKarp solves the instance exactly with the Held–Karp dynamic program
// over integer costs.
//
// Subsets range over the n−1 non-depot nodes (bit v−1 stands for node v), so
// the depot is implicit in every state:
//
//	dp[S][v] = cheapest path Depot → … → v visiting exactly S (v ∈ S).
//
// Closed tours add the arc back to the depot when picking the final node;
// open tours take the cheapest dp[all][v] as is.
//
// Returns the tour (open: length n; closed: length n+1) and its scaled cost.
// Cancellation and the deadline are checked every 1024 subsets and yield
// ErrSolverTimeout, since a partial DP table holds no complete tour.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func heldKarp(ctx context.Context, w []int64, n int, closed bool, deadline time.Time) ([]int, int64, error) {
	if n < 2 {
		return []int{Depot}, 0, nil
	}

	var (
		m      = n - 1 // non-depot nodes
		full   = 1<<m - 1
		inf    = int64(math.MaxInt64)
		dp     = make([]int64, (full+1)*m)
		parent = make([]int8, (full+1)*m)
		at     = func(u, v int) int64 { return w[u*n+v] }
	)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}

	// Base case: Depot → v.
	var v int
	for v = 1; v < n; v++ {
		dp[(1<<(v-1))*m+(v-1)] = at(Depot, v)
		parent[(1<<(v-1))*m+(v-1)] = -1
	}

	var (
		mask, prev int
		j, k       int
		cur, cand  int64
	)
	for mask = 1; mask <= full; mask++ {
		if mask&1023 == 0 && expired(ctx, deadline) {
			return nil, 0, ErrSolverTimeout
		}
		for j = 0; j < m; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			if prev == 0 {
				continue // base case
			}
			cur = inf
			for k = 0; k < m; k++ {
				if prev&(1<<k) == 0 || dp[prev*m+k] == inf {
					continue
				}
				cand = dp[prev*m+k] + at(k+1, j+1)
				if cand < cur {
					cur = cand
					parent[mask*m+j] = int8(k)
				}
			}
			dp[mask*m+j] = cur
		}
	}

	// Pick the final node.
	var (
		bestCost = inf
		lastIdx  = -1
		total    int64
	)
	for j = 0; j < m; j++ {
		if dp[full*m+j] == inf {
			continue
		}
		total = dp[full*m+j]
		if closed {
			total += at(j+1, Depot)
		}
		if total < bestCost {
			bestCost = total
			lastIdx = j
		}
	}
	if lastIdx < 0 {
		return nil, 0, ErrNoSolutionFound
	}

	// Reconstruct backwards.
	size := n
	if closed {
		size = n + 1
	}
	tour := make([]int, size)
	tour[0] = Depot
	if closed {
		tour[n] = Depot
	}
	mask = full
	j = lastIdx
	var pos int
	for pos = n - 1; pos >= 1; pos-- {
		tour[pos] = j + 1
		k = int(parent[mask*m+j])
		mask ^= 1 << j
		j = k
	}

	return tour, bestCost, nil
}

// expired reports whether ctx is done or the deadline (if set) has passed.
func expired(ctx context.Context, deadline time.Time) bool {
	if ctx != nil && ctx.Err() != nil {
		return true
	}

	return !deadline.IsZero() && time.Now().After(deadline)
}
