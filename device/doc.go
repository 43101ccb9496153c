// Package device models the massively parallel execution environment the
// spmv kernels were designed for, re-architected as portable Go primitives.
//
// The model has four pieces:
//
//   - Group: a fixed-width set of cooperating lanes with indexed local
//     scratch storage and an explicit Barrier. Group.SegmentedScan is the
//     same-key doubling-distance parallel prefix used at both reduction
//     levels (warp width and block width).
//   - Accumulators: Add is the plain read-modify-write used for rows proven
//     single-writer by partitioning; AtomicAdd is the race-safe combine
//     required where distinct units may touch the same row concurrently.
//   - Transient allocation: NewArray hands out bounded scratch buffers and
//     surfaces ErrAllocFailed instead of truncating work.
//   - Texture binding: a process-wide, single-owner, scoped handle granting
//     cached read access to one vector at a time.
//
// Dispatch launches one goroutine per execution block and its Wait is the
// whole-device barrier: nothing started after Dispatch returns can observe a
// partially written buffer from inside it. Blocks run with no defined
// relative order; kernels must not depend on one.
package device
