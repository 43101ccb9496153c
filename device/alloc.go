// SPDX-License-Identifier: MIT
// Package device: bounded transient allocation.
//
// Carry buffers and similar per-call scratch go through NewArray so the one
// externally observable failure mode — resource exhaustion — surfaces as a
// propagated error instead of silently truncated work.

package device

import "errors"

// ErrAllocFailed indicates a transient device-array request that cannot be
// satisfied (negative or above the MaxArrayLen cap).
var ErrAllocFailed = errors.New("device: transient array allocation failed")

// NewArray allocates a zeroed transient buffer of n elements.
// Returns ErrAllocFailed for n < 0 or n > MaxArrayLen; the check runs before
// any allocation is attempted. n == 0 yields a valid empty slice.
func NewArray[T any](n int) ([]T, error) {
	if n < 0 || n > MaxArrayLen {
		return nil, ErrAllocFailed
	}

	return make([]T, n), nil
}
