// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for cost-table validation.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Full value scans are O(n²).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateCosts verifies a travel-cost table: square, N ≥ 1, zero diagonal,
// every value finite and non-negative. Large finite values (see Unreachable)
// are accepted as-is.
//
// Errors: those of ValidateSquare, then ErrNaNInf, ErrNegative, ErrNonZeroDiagonal
// (first offending cell in row-major order wins).
// Complexity: O(n²).
func ValidateCosts(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	var (
		n    = m.Rows()
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateCosts", err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("ValidateCosts: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			if x < 0 {
				return fmt.Errorf("ValidateCosts: cell (%d,%d)=%g: %w", i, j, x, ErrNegative)
			}
			if i == j && x != 0 {
				return fmt.Errorf("ValidateCosts: cell (%d,%d)=%g: %w", i, j, x, ErrNonZeroDiagonal)
			}
		}
	}

	return nil
}

// ValidateDurations checks an integer duration table against order n.
// A nil table is valid (durations are optional).
//
// Errors: ErrDurationShape, ErrNegative, ErrNonZeroDiagonal.
// Complexity: O(n²).
func ValidateDurations(d [][]int64, n int) error {
	if d == nil {
		return nil
	}
	if len(d) != n {
		return validatorErrorf("ValidateDurations", ErrDurationShape)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(d[i]) != n {
			return fmt.Errorf("ValidateDurations: row %d: %w", i, ErrDurationShape)
		}
		for j = 0; j < n; j++ {
			if d[i][j] < 0 {
				return fmt.Errorf("ValidateDurations: cell (%d,%d)=%d: %w", i, j, d[i][j], ErrNegative)
			}
			if i == j && d[i][j] != 0 {
				return fmt.Errorf("ValidateDurations: cell (%d,%d)=%d: %w", i, j, d[i][j], ErrNonZeroDiagonal)
			}
		}
	}

	return nil
}
