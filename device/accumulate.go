// SPDX-License-Identifier: MIT
// Package device: the two accumulation primitives for the shared output
// vector.
//
// The kernels need both:
//   - Add: plain read-modify-write. Safe ONLY where partitioning proves a
//     single writer — rows strictly interior to one unit's interval.
//   - AtomicAdd: race-safe combine for rows at unit boundaries, where
//     distinct units may resolve carries for the same row concurrently.
//
// AtomicAdd serializes through a striped lock table rather than a CAS loop
// over raw bits: the library avoids package unsafe, and float64 slice
// elements cannot be CAS'd without it. The stripe count bounds contention;
// boundary rows are a small fraction of the workload by construction.

package device

import "sync"

// accumulateStripes is the size of the lock table. Power of two so the
// index mask stays a single AND.
const accumulateStripes = 256

var accumulateLocks [accumulateStripes]sync.Mutex

// Add performs y[i] += v with a plain read-modify-write.
// Callers must guarantee no concurrent writer for index i.
func Add(y []float64, i int, v float64) {
	y[i] += v
}

// AtomicAdd performs y[i] += v safely under concurrent writers of the same
// index. Distinct indices may map to the same stripe; that costs waiting,
// never correctness.
func AtomicAdd(y []float64, i int, v float64) {
	mu := &accumulateLocks[i&(accumulateStripes-1)]
	mu.Lock()
	y[i] += v
	mu.Unlock()
}
