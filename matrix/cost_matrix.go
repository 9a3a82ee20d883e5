// SPDX-License-Identifier: MIT
// Package matrix — CostMatrix, the optimizer's sole input.
//
// A CostMatrix is built once per request by an external distance provider
// and never mutated afterwards. Distance is mandatory; Duration is optional
// and only used to report totals along a chosen order.

package matrix

import "fmt"

// Unreachable is the conventional finite cost for pairs with no route.
// It keeps the table complete so solvers never meet a missing entry; tours
// that use it are valid but expensive.
const Unreachable = 1e9

// CostMatrix bundles pairwise travel distances with optional durations.
type CostMatrix struct {
	// Distance[i][j] is the non-negative travel distance from i to j.
	Distance Matrix

	// Duration[i][j] is the travel time from i to j in whole units
	// (minutes by convention). May be nil.
	Duration [][]int64
}

// NewCostMatrix copies distance (and duration, when non-nil) into a validated
// CostMatrix.
//
// Errors: see ValidateCosts and ValidateDurations; ErrRagged for uneven rows.
// Complexity: O(n²).
func NewCostMatrix(distance [][]float64, duration [][]int64) (*CostMatrix, error) {
	d, err := NewDenseFrom(distance)
	if err != nil {
		return nil, err
	}
	cm := &CostMatrix{Distance: d, Duration: copyDurations(duration)}
	if err = cm.Validate(); err != nil {
		return nil, err
	}

	return cm, nil
}

// Size returns N, the number of locations.
func (cm *CostMatrix) Size() int {
	if cm == nil || cm.Distance == nil {
		return 0
	}

	return cm.Distance.Rows()
}

// Validate runs ValidateCosts on Distance and ValidateDurations on Duration.
func (cm *CostMatrix) Validate() error {
	if cm == nil {
		return validatorErrorf("CostMatrix.Validate", ErrNilMatrix)
	}
	if err := ValidateCosts(cm.Distance); err != nil {
		return err
	}

	return ValidateDurations(cm.Duration, cm.Distance.Rows())
}

// DurationAt returns Duration[i][j], or 0 when no duration table is present.
func (cm *CostMatrix) DurationAt(i, j int) (int64, error) {
	if cm.Duration == nil {
		return 0, nil
	}
	if i < 0 || i >= len(cm.Duration) || j < 0 || j >= len(cm.Duration[i]) {
		return 0, fmt.Errorf("CostMatrix.DurationAt(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return cm.Duration[i][j], nil
}

func copyDurations(src [][]int64) [][]int64 {
	if src == nil {
		return nil
	}
	out := make([][]int64, len(src))
	for i := range src {
		out[i] = append([]int64(nil), src[i]...)
	}

	return out
}
