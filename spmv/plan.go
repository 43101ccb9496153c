// SPDX-License-Identifier: MIT
// Package spmv: the partition planner.
//
// Purpose:
//   - Size one launch: how many full-width units exist, how many run
//     concurrently, how long each unit's interval is, and where the
//     sequential tail begins.
//
// Determinism:
//   - Pure integer arithmetic on (numEntries, blockSize, maxBlocks); the
//     same inputs always produce the same geometry.
//
// Invariants (relied on by the kernels):
//   - intervalSize is a multiple of WarpSize, so every stride inside
//     [0, tail) is a full warp load — no partial strides at level 1.
//   - tail is a multiple of WarpSize; entries [tail, numEntries) number
//     fewer than WarpSize and go to the sequential tail handler.
//   - Unit u's interval is [u*intervalSize, min(+intervalSize, tail));
//     intervals are contiguous, non-overlapping, and cover [0, tail).
//   - activeUnits = ceil(tail/intervalSize) units receive non-empty
//     intervals; exactly that many carries are produced.

package spmv

import "github.com/lorynj/cusplibrary/device"

// plan is the launch geometry for one multiply. Transient: created and
// destroyed within one invocation.
type plan struct {
	warpsPerBlock int // units per execution block
	numBlocks     int // blocks to dispatch
	numUnits      int // full-width units available: numEntries / WarpSize
	activeUnits   int // units with work; size of the carry buffer
	intervalSize  int // entries per unit: WarpSize * iters
	tail          int // first entry handled sequentially: numUnits * WarpSize
}

// interval returns unit u's [begin, end) slice of the entry stream.
// Units beyond activeUnits get begin >= end and must idle.
func (p plan) interval(unit int) (begin, end int) {
	begin = unit * p.intervalSize
	end = min(begin+p.intervalSize, p.tail)

	return begin, end
}

// newPlan sizes the launch. Callers guarantee numEntries >= WarpSize (the
// degenerate cases short-circuit to the serial path before planning).
func newPlan(numEntries, blockSize, maxBlocks int) plan {
	warpsPerBlock := blockSize / device.WarpSize

	numUnits := numEntries / device.WarpSize
	launchUnits := min(numUnits, warpsPerBlock*maxBlocks)
	iters := divideInto(numUnits, launchUnits)

	p := plan{
		warpsPerBlock: warpsPerBlock,
		numBlocks:     divideInto(launchUnits, warpsPerBlock),
		numUnits:      numUnits,
		intervalSize:  device.WarpSize * iters,
		tail:          numUnits * device.WarpSize,
	}
	p.activeUnits = divideInto(p.tail, p.intervalSize)

	return p
}

// flatMaxBlocks derives the block cap for the deferred kernel from the
// thread budget. Half occupancy leaves headroom for the carry traffic.
func flatMaxBlocks(maxThreads int) int {
	return max(1, maxThreads/(2*device.BlockSize))
}

// atomicMaxBlocks derives the block cap for the atomic kernel: narrower
// blocks, oversubscribed fourfold.
func atomicMaxBlocks(maxThreads int) int {
	return max(1, 4*maxThreads/device.AtomicBlockSize)
}

// divideInto is ceiling division for positive divisors.
func divideInto(n, d int) int {
	return (n + d - 1) / d
}
