// SPDX-License-Identifier: MIT

// Package coo: domain types for the sorted-COO data model.
// This file intentionally contains ONLY the Matrix and Entry types and their
// O(1) accessors. Builders live in builder.go, validators in validators.go,
// errors in errors.go per the package conventions.
package coo

// Entry is one (row, col, value) triple used for ingestion via FromEntries.
// It is a small value type; slices of Entry are copied, never retained.
type Entry struct {
	Row int     // row index, 0 ≤ Row < NumRows
	Col int     // column index, 0 ≤ Col < NumCols
	Val float64 // stored value; zeros are kept if explicitly appended
}

// Matrix is a sparse matrix in coordinate (COO) layout: three parallel
// arrays of equal length plus the logical shape.
//
// Invariant (builder-maintained, kernel-assumed): RowIndices is
// non-decreasing. Entries within one row may appear in any order, and
// duplicate (row, col) pairs are legal — they contribute additively.
//
// The struct is exported field-by-field on purpose: the kernels iterate the
// raw slices directly, exactly as written, and hot loops must not pay an
// accessor call per element.
type Matrix struct {
	// RowIndices holds the row index of each stored entry (non-decreasing).
	RowIndices []int

	// ColIndices holds the column index of each stored entry.
	ColIndices []int

	// Values holds the numeric value of each stored entry.
	Values []float64

	// NumRows and NumCols define the logical dense shape.
	NumRows int
	NumCols int
}

// NumEntries returns the number of stored entries.
// Complexity: O(1).
func (m *Matrix) NumEntries() int {
	return len(m.Values)
}

// Entry returns the k-th stored triple. It is a convenience accessor for
// tests and diagnostics; kernels read the parallel slices directly.
// Complexity: O(1). Panics on out-of-range k (programmer error).
func (m *Matrix) Entry(k int) Entry {
	return Entry{Row: m.RowIndices[k], Col: m.ColIndices[k], Val: m.Values[k]}
}

// Clone returns a deep copy of the matrix. The returned Matrix is
// independent of the original.
// Complexity: O(E).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		RowIndices: make([]int, len(m.RowIndices)),
		ColIndices: make([]int, len(m.ColIndices)),
		Values:     make([]float64, len(m.Values)),
		NumRows:    m.NumRows,
		NumCols:    m.NumCols,
	}
	copy(c.RowIndices, m.RowIndices)
	copy(c.ColIndices, m.ColIndices)
	copy(c.Values, m.Values)

	return c
}
