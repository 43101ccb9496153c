// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coo
// package. All constructors and validators MUST return these sentinels and
// tests MUST check them via errors.Is. No builder panics on user-triggered
// error conditions; panics are reserved for programmer errors.

package coo

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow easy
// grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at
// the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or cols). Zero-by-zero is a legal, empty matrix.
	ErrBadShape = errors.New("coo: invalid shape")

	// ErrOutOfRange indicates that a row or column index lies outside the
	// matrix shape. Append MUST return this, not panic.
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrLengthMismatch indicates the parallel arrays disagree in length.
	ErrLengthMismatch = errors.New("coo: parallel arrays differ in length")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is
	// required.
	ErrNilMatrix = errors.New("coo: matrix is nil")

	// ErrNotSorted is reported by the advisory IsRowSorted/ValidateRowSorted
	// probes when RowIndices is not non-decreasing. The multiply itself never
	// returns this; sortedness is a caller-supplied invariant there.
	ErrNotSorted = errors.New("coo: row indices not sorted")

	// ErrDimensionMismatch indicates that a dense operand is too short for
	// the matrix shape (len(x) < NumCols or len(y) < NumRows).
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")
)
