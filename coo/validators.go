// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//   - Provide a single, canonical source of truth for the guard checks shared
//     by builders and the spmv kernels.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Everything is O(1) except the explicitly-advisory sorted probes, which
//     scan all E entries.
//
// Note:
//   - ValidateOperands is the composite the multiply uses: NotNil → Arrays →
//     Dimensions. It deliberately does NOT include ValidateRowSorted — the
//     sorted invariant is caller-supplied and never re-checked on the hot
//     path.

package coo

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateParallelArrays ensures the three entry arrays agree in length.
// Assumes m is non-nil (caller must ensure). Complexity: O(1).
func ValidateParallelArrays(m *Matrix) error {
	if len(m.RowIndices) != len(m.Values) || len(m.ColIndices) != len(m.Values) {
		return ErrLengthMismatch
	}

	return nil
}

// ValidateVectors ensures the dense operands cover the matrix shape:
// len(x) ≥ NumCols and len(y) ≥ NumRows. Longer slices are accepted, the
// excess is simply never touched. Complexity: O(1).
func ValidateVectors(m *Matrix, x, y []float64) error {
	if len(x) < m.NumCols || len(y) < m.NumRows {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateOperands is the composite guard used by the multiply entry points:
// nil check, parallel-array check, operand-length check — in that fixed
// order. Complexity: O(1).
func ValidateOperands(m *Matrix, x, y []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateParallelArrays(m); err != nil {
		return err
	}
	if err := ValidateVectors(m, x, y); err != nil {
		return err
	}

	return nil
}

// IsRowSorted reports whether RowIndices is non-decreasing. Advisory only:
// the multiply never calls this (unsorted input is a contract violation, not
// a runtime fault). Complexity: O(E).
func IsRowSorted(m *Matrix) bool {
	for i := 1; i < len(m.RowIndices); i++ {
		if m.RowIndices[i] < m.RowIndices[i-1] {
			return false
		}
	}

	return true
}

// ValidateRowSorted is the error-returning form of IsRowSorted, for callers
// ingesting foreign data who want an errors.Is-matchable result once, up
// front. Complexity: O(E).
func ValidateRowSorted(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !IsRowSorted(m) {
		return ErrNotSorted
	}

	return nil
}
