// Package tsp — cost utilities.
//
// TourCost is the single place where a tour's total is computed. The
// Optimizer calls it on every final tour, so the returned cost always matches
// the returned order exactly, whichever strategy produced it.
//
// Complexity:
//   - O(n) time for a tour of length n or n+1, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/lvroute/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist[tour[k]][tour[k+1]] over consecutive pairs.
// A single-node tour costs 0.
//
// Errors: ErrInvalidTour for out-of-range indices, matrix.ErrNaNInf or
// matrix.ErrNegative for ill-formed cells (already excluded by validation).
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) == 0 {
		return 0, ErrInvalidTour
	}

	var (
		n   = dist.Rows()
		sum float64
		w   float64
		err error
		k   int
		u   int
		v   int
	)
	for k = 0; k+1 < len(tour); k++ {
		u = tour[k]
		v = tour[k+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		if w, err = edgeCost(dist, u, v); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// TourDuration sums the duration table along the tour; 0 when cm has none.
//
// Complexity: O(n).
func TourDuration(cm *matrix.CostMatrix, tour []int) (int64, error) {
	if cm == nil || cm.Duration == nil {
		return 0, nil
	}

	var (
		total int64
		d     int64
		err   error
		k     int
	)
	for k = 0; k+1 < len(tour); k++ {
		if d, err = cm.DurationAt(tour[k], tour[k+1]); err != nil {
			return 0, ErrInvalidTour
		}
		total += d
	}

	return total, nil
}

// Legs resolves each consecutive pair of tour into a Leg, for the directions
// stage downstream of the optimizer.
//
// Complexity: O(n).
func Legs(cm *matrix.CostMatrix, tour []int) ([]Leg, error) {
	if cm == nil || cm.Distance == nil {
		return nil, ErrInvalidMatrix
	}
	if len(tour) < 2 {
		return []Leg{}, nil
	}

	var (
		legs = make([]Leg, 0, len(tour)-1)
		w    float64
		d    int64
		err  error
		k    int
	)
	for k = 0; k+1 < len(tour); k++ {
		if w, err = edgeCost(cm.Distance, tour[k], tour[k+1]); err != nil {
			return nil, err
		}
		if d, err = cm.DurationAt(tour[k], tour[k+1]); err != nil {
			return nil, ErrInvalidTour
		}
		legs = append(legs, Leg{From: tour[k], To: tour[k+1], Distance: w, Duration: d})
	}

	return legs, nil
}

// edgeCost fetches a single arc weight with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrInvalidTour
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, matrix.ErrNaNInf
	}
	if w < 0 {
		return 0, matrix.ErrNegative
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
