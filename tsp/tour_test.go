package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name   string
		tour   []int
		n      int
		closed bool
		ok     bool
	}{
		{"single", []int{0}, 1, false, true},
		{"single closed ignored", []int{0}, 1, true, true},
		{"single with tail", []int{0, 0}, 1, false, false},
		{"open", []int{0, 2, 1, 3}, 4, false, true},
		{"closed", []int{0, 2, 1, 3, 0}, 4, true, true},
		{"closed but open expected", []int{0, 2, 1, 3, 0}, 4, false, false},
		{"open but closed expected", []int{0, 2, 1, 3}, 4, true, false},
		{"not rooted", []int{1, 0, 2, 3}, 4, false, false},
		{"duplicate", []int{0, 1, 1, 3}, 4, false, false},
		{"out of range", []int{0, 1, 2, 4}, 4, false, false},
		{"empty", nil, 3, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n, tc.closed)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tsp.ErrInvalidTour)
			}
		})
	}
}

func TestCloseOpenTour(t *testing.T) {
	open := []int{0, 2, 1}
	closed := tsp.CloseTour(open)
	require.Equal(t, []int{0, 2, 1, 0}, closed)
	require.Equal(t, []int{0, 2, 1}, open, "input must not be modified")

	// Closing twice never adds a second depot.
	require.Equal(t, closed, tsp.CloseTour(closed))
	require.Equal(t, []int{0}, tsp.CloseTour([]int{0}))

	require.Equal(t, open, tsp.OpenTour(closed))
	require.Equal(t, open, tsp.OpenTour(open))
	require.True(t, tsp.IsClosed(closed))
	require.False(t, tsp.IsClosed(open))
	require.False(t, tsp.IsClosed([]int{0, 0}))
}

func TestCopyTourIndependent(t *testing.T) {
	src := []int{0, 1, 2}
	cp := tsp.CopyTour(src)
	cp[1] = 9
	require.Equal(t, 1, src[1])
	require.Nil(t, tsp.CopyTour(nil))
}

func TestDebugString(t *testing.T) {
	require.Equal(t, "[0 3 1 2 | 0]", tsp.DebugString([]int{0, 3, 1, 2, 0}))
	require.Equal(t, "[0 3 1 2]", tsp.DebugString([]int{0, 3, 1, 2}))
	require.Equal(t, "[0]", tsp.DebugString([]int{0}))
}
