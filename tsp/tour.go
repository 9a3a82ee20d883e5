// Package tsp - tour utilities shared by the constructor, the improver and
// the exact engines.
//
// A tour is a []int rooted at Depot. It is either open (a permutation of
// {0..n-1}, length n) or closed (the same permutation followed by a trailing
// Depot, length n+1). Helpers here never touch a cost matrix.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutation where documented.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the tour invariants for n nodes:
//
//	tour[0] == Depot,
//	tour[0:n] is a permutation of {0..n-1},
//	if closed: len == n+1 and tour[n] == Depot; else len == n.
//
// n == 1 admits only [0].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, closed bool) error {
	if n <= 0 || len(tour) == 0 || tour[0] != Depot {
		return ErrInvalidTour
	}
	if n == 1 {
		if len(tour) != 1 {
			return ErrInvalidTour
		}

		return nil
	}
	if closed {
		if len(tour) != n+1 || tour[n] != Depot {
			return ErrInvalidTour
		}
	} else if len(tour) != n {
		return ErrInvalidTour
	}

	return ValidatePermutation(tour[:n], n)
}

// IsClosed reports whether tour ends with a trailing Depot after at least
// one other node.
//
// Complexity: O(1).
func IsClosed(tour []int) bool {
	return len(tour) > 2 && tour[len(tour)-1] == Depot
}

// CloseTour returns tour with a trailing Depot appended unless it already
// ends at Depot. The input is not modified.
//
// Complexity: O(n).
func CloseTour(tour []int) []int {
	out := make([]int, len(tour), len(tour)+1)
	copy(out, tour)
	if len(out) == 0 || out[len(out)-1] == Depot {
		return out
	}

	return append(out, Depot)
}

// OpenTour drops a trailing Depot from a closed tour. The input is not modified.
//
// Complexity: O(n).
func OpenTour(tour []int) []int {
	if IsClosed(tour) {
		return CopyTour(tour[:len(tour)-1])
	}

	return CopyTour(tour)
}

// reverseInPlace reverses the inclusive segment tour[i..k].
// This is the 2-opt primitive; callers guarantee 1 ≤ i < k < len(tour)-1
// so that neither the depot nor the final position moves.
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact representation such as "[0 3 1 2 | 0]",
// where the bar marks the closing depot of a closed tour.
//
// Complexity: O(n).
func DebugString(tour []int) string {
	var (
		sb     strings.Builder
		closed = IsClosed(tour)
		end    = len(tour)
		i      int
	)
	if closed {
		end--
	}
	sb.WriteByte('[')
	for i = 0; i < end; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	if closed {
		sb.WriteString(" | ")
		sb.WriteString(strconv.Itoa(tour[end]))
	}
	sb.WriteByte(']')

	return sb.String()
}
