// Package coo provides the sorted coordinate (COO) sparse-matrix data model
// consumed by the spmv kernels, together with builders and validators.
//
// What
//
//   - Matrix: three parallel arrays (RowIndices, ColIndices, Values) plus the
//     logical shape (NumRows, NumCols).
//   - Builders: New (empty, with capacity), FromEntries (stable row sort),
//     FromDense (nonzero extraction in row-major order).
//   - Validators: shape, parallel-array and operand-length checks, plus an
//     advisory IsRowSorted probe.
//
// Invariants
//
//   - RowIndices is non-decreasing for any matrix produced by the builders.
//     Entries within one row may appear in any order; duplicate (row, col)
//     pairs are permitted and are summed by the kernels, never deduplicated.
//   - The multiply itself does NOT re-check sortedness: unsorted rows are a
//     caller contract violation, not a runtime-detected fault. IsRowSorted
//     exists for callers who ingest foreign data and want to check once.
//   - A Matrix is treated as immutable for the duration of a multiply.
//
// Complexity (E = number of stored entries)
//
//   - Append:      O(1) amortized
//   - FromEntries: O(E log E) stable sort
//   - FromDense:   O(rows * cols) scan
//   - Validators:  O(1), except IsRowSorted which is O(E)
//
// See the spmv package for the operations that consume this model.
package coo
