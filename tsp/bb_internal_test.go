//go:build !noexact

package tsp

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// euclidFlat returns a row-major Euclidean table of n random points.
func euclidFlat(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = r.Float64()*100, r.Float64()*100
	}
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w[i*n+j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			}
		}
	}

	return w
}

func TestBranchAndBoundKeepsWarmStart(t *testing.T) {
	const n = 30
	w := euclidFlat(n, 3)
	scaled, err := scaleCosts(w, n, DefaultScale)
	require.NoError(t, err)

	for _, closed := range []bool{false, true} {
		warm, _ := heuristicTour(context.Background(), w, n, closed, DefaultConfig())
		before := CopyTour(warm)

		// A one-node budget stops the search at the root: the incumbent is
		// the seed, which must be the warm tour when it beats cheapest-arc.
		res, err := branchAndBound(context.Background(), scaled, n, closed, 1, time.Time{}, warm)
		require.NoError(t, err)
		require.False(t, res.proven)
		require.Equal(t, before, warm, "warm start must not be modified")

		var warmCost int64
		for k := 0; k+1 < len(warm); k++ {
			warmCost += scaled[warm[k]*n+warm[k+1]]
		}
		require.LessOrEqual(t, res.cost, warmCost)
		require.NoError(t, ValidateTour(res.tour, n, closed))
	}
}

func TestBranchAndBoundIgnoresMalformedWarmStart(t *testing.T) {
	const n = 8
	w := euclidFlat(n, 5)
	scaled, err := scaleCosts(w, n, DefaultScale)
	require.NoError(t, err)

	for _, warm := range [][]int{nil, {0, 1}, {1, 0, 2, 3, 4, 5, 6, 7}} {
		res, err := branchAndBound(context.Background(), scaled, n, true, 0, time.Time{}, warm)
		require.NoError(t, err)
		require.True(t, res.proven)
		require.NoError(t, ValidateTour(res.tour, n, true))
	}
}

func TestSolveExactBudgetedNeverWorseThanHeuristic(t *testing.T) {
	const n = 40
	cfg := DefaultConfig()
	cfg.MaxNodes = 5000

	for seed := int64(1); seed <= 4; seed++ {
		w := euclidFlat(n, seed)
		scaled, err := scaleCosts(w, n, cfg.Scale)
		require.NoError(t, err)

		for _, closed := range []bool{false, true} {
			warm, _ := heuristicTour(context.Background(), w, n, closed, cfg)
			sol, err := solveExact(context.Background(), w, scaled, n, closed, cfg, time.Time{})
			require.NoError(t, err)
			require.Equal(t, "branch-and-bound", sol.Strategy)
			require.False(t, sol.Proven)
			require.Equal(t, "search budget exhausted", sol.Reason)
			require.NoError(t, ValidateTour(sol.Tour, n, closed))
			require.InDelta(t, flatCost(w, n, sol.Tour), sol.Cost, 1e-9)
			require.LessOrEqual(t, sol.Cost, flatCost(w, n, warm))
		}
	}
}
