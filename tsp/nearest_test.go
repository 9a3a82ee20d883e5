package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/tsp"
)

func TestNearestNeighbor_Square(t *testing.T) {
	tour, err := tsp.NearestNeighbor(mustDense(t, square()))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighbor_TieGoesToLowestIndex(t *testing.T) {
	d := [][]float64{
		{0, 5, 5, 5},
		{5, 0, 1, 1},
		{5, 1, 0, 1},
		{5, 1, 1, 0},
	}
	tour, err := tsp.NearestNeighbor(mustDense(t, d))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tour)
}

func TestNearestNeighbor_Asymmetric(t *testing.T) {
	// Row-wise (outgoing) costs drive the walk: 0→2 is cheap, 2→0 is not.
	d := [][]float64{
		{0, 9, 1},
		{1, 0, 9},
		{9, 1, 0},
	}
	tour, err := tsp.NearestNeighbor(mustDense(t, d))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, tour)
}

func TestNearestNeighbor_SingleAndErrors(t *testing.T) {
	tour, err := tsp.NearestNeighbor(mustDense(t, [][]float64{{0}}))
	require.NoError(t, err)
	require.Equal(t, []int{0}, tour)

	_, err = tsp.NearestNeighbor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.NearestNeighbor(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	m := mustDense(t, randomDist(25, 7, true))
	first, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tsp.NearestNeighbor(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.NoError(t, tsp.ValidateTour(first, 25, false))
}
