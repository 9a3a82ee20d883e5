// Package tsp - validation utilities.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - Matrix checks delegate to package matrix and are re-tagged with
//     ErrInvalidMatrix so callers can match either sentinel.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/matrix"
)

// validateCostMatrix verifies the optimizer precondition.
//
// Complexity: O(n²).
func validateCostMatrix(cm *matrix.CostMatrix) error {
	if cm == nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatrix, matrix.ErrNilMatrix)
	}
	if err := cm.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}

	return nil
}

// validateConfig rejects settings that have no meaningful interpretation.
//
// Complexity: O(1).
func validateConfig(c Config) error {
	switch {
	case c.Threshold < 0,
		c.MaxPasses < 0,
		c.Eps < 0,
		c.Scale <= 0,
		c.HeldKarpMaxN < 0 || c.HeldKarpMaxN > heldKarpHardMax,
		c.MaxNodes < 0,
		c.TimeLimit < 0:
		return ErrInvalidConfig
	}
	if c.Policy != FirstImprovement && c.Policy != BestImprovement {
		return ErrInvalidConfig
	}

	return nil
}
