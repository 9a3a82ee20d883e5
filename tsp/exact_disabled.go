//go:build noexact

package tsp

import (
	"context"
	"time"
)

const exactCompiled = false

func solveExact(context.Context, []float64, []int64, int, bool, Config, time.Time) (Solution, error) {
	return Solution{}, ErrSolverUnavailable
}
