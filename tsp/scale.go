package tsp

import "math"

// scaleCosts maps float costs onto the int64 domain of the exact engines:
// c = round(x·scale). Kilometres become metres at the default scale of 1000.
//
// The largest scaled value must leave room for summing n+1 arcs without
// overflow; otherwise the instance cannot be represented and the caller
// falls back to the heuristic (ErrSolverUnavailable).
//
// Complexity: O(n²).
func scaleCosts(w []float64, n int, scale float64) ([]int64, error) {
	if scale <= 0 || n <= 0 {
		return nil, ErrSolverUnavailable
	}

	var (
		limit = float64(math.MaxInt64 / int64(n+1))
		out   = make([]int64, len(w))
		x     float64
		i     int
	)
	for i = range w {
		x = math.Round(w[i] * scale)
		if math.IsNaN(x) || x < 0 || x >= limit {
			return nil, ErrSolverUnavailable
		}
		out[i] = int64(x)
	}

	return out, nil
}

// unscaleCost maps an int64 total back to the caller's units.
func unscaleCost(c int64, scale float64) float64 {
	return float64(c) / scale
}
