// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every validator and accessor in this package returns one of these sentinels,
// optionally wrapped with a call-site tag; tests match them via errors.Is.

package matrix

import "errors"

var (
	// ErrEmpty is returned when a matrix has no rows (N == 0).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that the rows of a [][]float64 input differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNonZeroDiagonal signals a diagonal entry other than zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegative signals a negative travel cost.
	ErrNegative = errors.New("matrix: negative value")

	// ErrNaNInf signals a NaN or ±Inf value; unreachable pairs must use the
	// finite Unreachable sentinel instead.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDurationShape signals a duration table whose shape differs from the
	// distance matrix.
	ErrDurationShape = errors.New("matrix: duration table shape mismatch")

	// ErrBadCoordinate signals a latitude/longitude outside the valid range.
	ErrBadCoordinate = errors.New("matrix: coordinate out of range")
)
