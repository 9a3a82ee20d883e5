package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/tsp"
)

func TestSelectStrategy(t *testing.T) {
	cfg := tsp.DefaultConfig()
	off := cfg
	off.ExactEnabled = false

	cases := []struct {
		name      string
		n         int
		cfg       tsp.Config
		available bool
		want      tsp.Kind
	}{
		{"small", 5, cfg, true, tsp.KindHeuristic},
		{"at threshold", tsp.DefaultThreshold, cfg, true, tsp.KindHeuristic},
		{"above threshold", tsp.DefaultThreshold + 1, cfg, true, tsp.KindExact},
		{"not compiled", 40, cfg, false, tsp.KindHeuristic},
		{"disabled", 40, off, true, tsp.KindHeuristic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tsp.SelectStrategy(tc.n, tc.cfg, tc.available))
		})
	}
	require.Equal(t, "exact", tsp.KindExact.String())
	require.Equal(t, "heuristic", tsp.KindHeuristic.String())
}

func TestHeuristicSolver_ClosedOptimizesReturnArc(t *testing.T) {
	s := tsp.NewHeuristicSolver(tsp.DefaultConfig())
	require.Equal(t, "nearest-neighbor+2opt", s.Name())

	sol, err := s.Solve(context.Background(), mustDense(t, square()), true)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, sol.Tour)
	require.InDelta(t, 40.0, sol.Cost, 1e-9)
	require.False(t, sol.Proven)
}

func TestExactSolver_UnavailableCapability(t *testing.T) {
	s := tsp.NewExactSolver(tsp.DefaultConfig(), false)
	_, err := s.Solve(context.Background(), mustDense(t, square()), false)
	require.ErrorIs(t, err, tsp.ErrSolverUnavailable)
}

func TestPolicyString(t *testing.T) {
	require.Equal(t, "first", tsp.FirstImprovement.String())
	require.Equal(t, "best", tsp.BestImprovement.String())
	require.Equal(t, "unknown", tsp.Policy(9).String())
}
