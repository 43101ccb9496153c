// SPDX-License-Identifier: MIT
// Package coo: builders for row-sorted COO matrices.
//
// Purpose:
//   - Provide the canonical constructors that GUARANTEE the row-sorted
//     invariant the spmv kernels rely on.
//   - Keep ingestion deterministic: stable sort preserves the caller's
//     within-row entry order, so duplicate (row, col) pairs accumulate in a
//     reproducible order.
//
// Determinism & Policy:
//   - FromEntries uses sort.SliceStable keyed on Row only; column order
//     within a row is exactly the input order.
//   - FromDense walks rows outer, columns inner — already row-sorted.
//   - Append performs bounds checks but does NOT enforce row order; callers
//     appending out of order must finish with SortByRow.

package coo

import "sort"

// New returns an empty rows×cols matrix with capacity reserved for cap
// entries. A 0×0 shape is legal (the empty matrix); negative dimensions or
// capacity surface ErrBadShape.
// Complexity: O(1) beyond the three slice allocations.
func New(rows, cols, capacity int) (*Matrix, error) {
	if rows < 0 || cols < 0 || capacity < 0 {
		return nil, ErrBadShape
	}

	return &Matrix{
		RowIndices: make([]int, 0, capacity),
		ColIndices: make([]int, 0, capacity),
		Values:     make([]float64, 0, capacity),
		NumRows:    rows,
		NumCols:    cols,
	}, nil
}

// Append adds one entry to the matrix. Bounds are checked against the
// logical shape; ErrOutOfRange on violation. Row order is NOT enforced here
// (see SortByRow).
// Complexity: O(1) amortized.
func (m *Matrix) Append(row, col int, val float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.NumRows || col < 0 || col >= m.NumCols {
		return ErrOutOfRange
	}
	m.RowIndices = append(m.RowIndices, row)
	m.ColIndices = append(m.ColIndices, col)
	m.Values = append(m.Values, val)

	return nil
}

// SortByRow re-establishes the non-decreasing row invariant in place using
// a stable sort, preserving the relative order of entries within each row.
// Complexity: O(E log E) time, O(E) scratch for the permutation.
func (m *Matrix) SortByRow() error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateParallelArrays(m); err != nil {
		return err
	}

	n := m.NumEntries()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Stable on the permutation: equal rows keep input order.
	sort.SliceStable(perm, func(a, b int) bool {
		return m.RowIndices[perm[a]] < m.RowIndices[perm[b]]
	})

	rows := make([]int, n)
	cols := make([]int, n)
	vals := make([]float64, n)
	for i, p := range perm {
		rows[i] = m.RowIndices[p]
		cols[i] = m.ColIndices[p]
		vals[i] = m.Values[p]
	}
	m.RowIndices, m.ColIndices, m.Values = rows, cols, vals

	return nil
}

// FromEntries builds a row-sorted matrix from an arbitrary-order entry list.
// The input slice is not retained or mutated. Entries with out-of-shape
// indices surface ErrOutOfRange; column order within a row follows the input
// order (stable sort on Row only).
// Complexity: O(E log E).
func FromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	m, err := New(rows, cols, len(entries))
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Append(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}
	if err = m.SortByRow(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromDense extracts the nonzero structure of a dense row-major grid.
// Ragged input (rows of unequal length) surfaces ErrBadShape. The result is
// row-sorted by construction (outer row loop, inner column loop).
// Complexity: O(rows * cols).
func FromDense(dense [][]float64) (*Matrix, error) {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}

	m, err := New(rows, cols, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		if len(dense[i]) != cols {
			return nil, ErrBadShape
		}
		for j := 0; j < cols; j++ {
			if dense[i][j] != 0 {
				// Bounds hold by construction; Append cannot fail here.
				_ = m.Append(i, j, dense[i][j])
			}
		}
	}

	return m, nil
}
