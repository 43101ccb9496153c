// Package spmv computes sparse matrix–dense vector products y += A·x for
// row-sorted COO matrices, using the flattened two-level segmented-reduction
// scheme.
//
// What
//
//   - Partition the nonzero stream into contiguous intervals, one per
//     fixed-width cooperative unit (warp), every interval a multiple of the
//     warp width.
//   - Level 1: each unit walks its interval in warp-wide strides, multiplies
//     val * x[col] per lane, and runs a same-row segmented scan across the
//     lanes. Lanes whose row differs from their successor hold a complete
//     row sum and accumulate it into y with a plain add (interior rows are
//     single-writer by partitioning). The unit's last lane becomes the
//     carry: an unresolved partial sum whose row may continue into the next
//     stride or the next unit.
//   - Level 2: carries are resolved by one of two policies.
//     Deferred: carries land in a transient buffer; after a whole-device
//     barrier a single block-wide segmented reduction merges same-row
//     carries and flushes each row once (deterministic summation order).
//     A scatter fallback compacts and applies the buffer directly when it
//     is small relative to the reduce-group width.
//     Atomic: no buffer and no second pass; boundary rows are combined into
//     y with a race-safe atomic add as the unit resolves them.
//   - Tail: the last few entries that do not fill one full warp are applied
//     by a sequential pass — which is also the whole computation for
//     matrices smaller than one warp. The phases never overlap: level 1 is
//     awaited before the tail runs, and the tail before level 2.
//
// Operations
//
//   - Flat             — deferred policy, direct reads
//   - FlatCached       — deferred policy, texture-cached reads
//   - FlatAtomic       — atomic policy, direct reads
//   - FlatAtomicCached — atomic policy, texture-cached reads
//   - Serial           — in-order reference kernel (the test oracle)
//
// All five accumulate into y (the contract is accumulation, not
// assignment — zero y first for a fresh product) and agree within
// floating-point summation-order tolerance.
//
// Contract
//
//	RowIndices non-decreasing (builder-guaranteed, never re-checked here);
//	x read-only during the call; duplicates summed; every entry contributes
//	to exactly one accumulation event into y.
//
// Errors
//
//	coo.ErrNilMatrix / coo.ErrDimensionMismatch from operand validation,
//	ErrOptionViolation from bad options, device.ErrAllocFailed if the
//	transient carry buffer cannot be allocated, device.ErrTextureBound if a
//	cached variant finds the texture slot occupied. All wrapped with the
//	operation tag; match with errors.Is.
//
// Complexity (E entries, U active units, W warp width)
//
//   - Time:   O(E/U + W log W) per unit at level 1, O(U log U) at level 2
//   - Memory: O(U) transient carry buffer (deferred policy only)
package spmv
