package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/tsp"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// square is the unit scenario: four corners of a 10×10 square, diagonals
// rounded to 14.
func square() [][]float64 {
	return [][]float64{
		{0, 10, 14, 10},
		{10, 0, 10, 14},
		{14, 10, 0, 10},
		{10, 14, 10, 0},
	}
}

// randomDist returns an n×n table of integer costs in [1,99] with a zero
// diagonal. Integer values keep scaled exact costs free of rounding.
func randomDist(n int, seed int64, asym bool) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	d := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d[i][j] = float64(1 + r.Intn(99))
			if asym {
				d[j][i] = float64(1 + r.Intn(99))
			} else {
				d[j][i] = d[i][j]
			}
		}
	}

	return d
}

// randomEuclid places n points uniformly in a 100×100 square and returns the
// symmetric table of Euclidean distances between them.
func randomEuclid(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = r.Float64()*100, r.Float64()*100
	}

	d := make([][]float64, n)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				d[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			}
		}
	}

	return d
}

// mustCM wraps a table into a validated CostMatrix.
func mustCM(t *testing.T, d [][]float64) *matrix.CostMatrix {
	t.Helper()
	cm, err := matrix.NewCostMatrix(d, nil)
	require.NoError(t, err)

	return cm
}

// mustDense wraps a table into a Dense.
func mustDense(t *testing.T, d [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(d)
	require.NoError(t, err)

	return m
}

// -----------------------------------------------------------------------------
// Oracles & assertions
// -----------------------------------------------------------------------------

// sumTour is the reference objective, independent of tsp.TourCost.
func sumTour(d [][]float64, tour []int) float64 {
	var s float64
	for k := 0; k+1 < len(tour); k++ {
		s += d[tour[k]][tour[k+1]]
	}

	return s
}

// bruteForce enumerates every depot-rooted order and returns the optimum.
// Only for n ≤ 9.
func bruteForce(d [][]float64, closed bool) float64 {
	n := len(d)
	if n <= 1 {
		return 0
	}
	perm := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		perm = append(perm, v)
	}

	best := -1.0
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			tour := append([]int{tsp.Depot}, perm...)
			if closed {
				tour = append(tour, tsp.Depot)
			}
			if c := sumTour(d, tour); best < 0 || c < best {
				best = c
			}

			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

// requireOrder asserts the output contract of Optimize: starts at the depot,
// visits every node once, and ends with exactly one trailing depot iff closed.
func requireOrder(t *testing.T, tour []int, n int, closed bool) {
	t.Helper()
	require.NotEmpty(t, tour)
	require.Equal(t, tsp.Depot, tour[0], "tour must start at the depot")
	require.NoError(t, tsp.ValidateTour(tour, n, closed && n > 1), "tour %v", tour)
}
