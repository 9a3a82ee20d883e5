// Package tsp - nearest-neighbor tour construction.
//
// NearestNeighbor builds the initial feasible tour of the heuristic strategy:
// start at Depot and repeatedly step to the closest unvisited node.
// Ties go to the lowest index, so the result is fully deterministic.
//
// Complexity: O(n²) time, O(n) space.
package tsp

import "github.com/katalvlaran/lvroute/matrix"

// NearestNeighbor returns an open tour of length n starting at Depot.
// n ≤ 1 yields [0] without any search.
func NearestNeighbor(dist matrix.Matrix) ([]int, error) {
	w, n, err := matrix.Flatten(dist)
	if err != nil {
		return nil, err
	}
	if n <= 1 {
		return []int{Depot}, nil
	}

	return nearestNeighborFlat(w, n), nil
}

// nearestNeighborFlat runs the greedy walk over a row-major weight buffer.
func nearestNeighborFlat(w []float64, n int) []int {
	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = Depot
		next    int
		best    float64
		v       int
		row     []float64
	)
	tour = append(tour, cur)
	visited[cur] = true

	for len(tour) < n {
		next = -1
		row = w[cur*n : (cur+1)*n]
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			// Strict '<' keeps the lowest index on ties.
			if next == -1 || row[v] < best {
				next = v
				best = row[v]
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return tour
}
