// SPDX-License-Identifier: MIT
// Package spmv — public API facades.
//
// Purpose:
//   - Provide the four policy-complete entry points over one shared driver
//     per level-2 policy; facades never duplicate kernel logic.
//   - Keep the phase ordering explicit: the level-1 dispatch is awaited
//     before the tail runs, and the tail completes before level-2 starts.
//     Both orderings are correctness requirements (shared rows between
//     phases), not scheduling assumptions.
//
// Determinism & Policy:
//   - The deferred policy fixes the summation order; repeated calls produce
//     bitwise-identical results. The atomic policy resolves boundary rows
//     in scheduler order and is deterministic only up to floating-point
//     addition order.
//   - All four operations accumulate into y; zero it first for a fresh
//     product.

package spmv

import (
	"github.com/lorynj/cusplibrary/coo"
	"github.com/lorynj/cusplibrary/device"
)

// Flat computes y += A·x with the deferred-reduction policy and direct
// vector reads.
func Flat(m *coo.Matrix, x, y []float64, opts ...Option) error {
	return flat(opFlat, m, x, y, false, opts)
}

// FlatCached is Flat with x reads routed through the read-only texture
// binding for the duration of the call.
func FlatCached(m *coo.Matrix, x, y []float64, opts ...Option) error {
	return flat(opFlatCached, m, x, y, true, opts)
}

// FlatAtomic computes y += A·x with the immediate-atomic policy and direct
// vector reads: no carry buffer, no second pass, atomic combines on
// boundary rows.
func FlatAtomic(m *coo.Matrix, x, y []float64, opts ...Option) error {
	return flatAtomic(opFlatAtomic, m, x, y, false, opts)
}

// FlatAtomicCached is FlatAtomic with texture-cached reads.
func FlatAtomicCached(m *coo.Matrix, x, y []float64, opts ...Option) error {
	return flatAtomic(opFlatAtomicCached, m, x, y, true, opts)
}

// flat is the deferred-policy driver: plan → bind → allocate carries →
// level-1 dispatch → tail → level-2.
func flat(tag string, m *coo.Matrix, x, y []float64, cached bool, opts []Option) error {
	o, err := gatherOptions(opts...)
	if err != nil {
		return opErrorf(tag, err)
	}
	if err = coo.ValidateOperands(m, x, y); err != nil {
		return opErrorf(tag, err)
	}

	numEntries := m.NumEntries()
	if numEntries == 0 {
		return nil // well-defined no-op: no writes to y
	}
	if numEntries < device.WarpSize {
		// Too small for one full unit: the whole matrix is tail.
		serialRange(m, x, y, 0, numEntries)
		return nil
	}

	read, release, err := newReader(x, cached)
	if err != nil {
		return opErrorf(tag, err)
	}
	defer release()

	p := newPlan(numEntries, device.BlockSize, flatMaxBlocks(o.maxThreads))

	// Transient carry buffer: one {row, partial} per active unit. The only
	// externally observable failure mode of the reduction.
	carryRows, err := device.NewArray[int](p.activeUnits)
	if err != nil {
		return opErrorf(tag, err)
	}
	carryVals, err := device.NewArray[float64](p.activeUnits)
	if err != nil {
		return opErrorf(tag, err)
	}

	// Level 1. The Wait inside Dispatch is the whole-device barrier: the
	// carry buffer is complete once it returns.
	if err = device.Dispatch(p.numBlocks, func(block int) error {
		flatBlock(block, p, m, read, y, carryRows, carryVals)
		return nil
	}); err != nil {
		return opErrorf(tag, err)
	}

	// Tail: strictly after level 1 (tail rows may continue the last unit's
	// interval) and strictly before level 2 (which may flush those rows).
	serialRange(m, x, y, p.tail, numEntries)

	// Level 2: scatter fallback for small carry buffers, block reduction
	// otherwise.
	if o.scatterThreshold > 0 && p.activeUnits <= o.scatterThreshold {
		scatterUpdate(carryRows, carryVals, y)
		return nil
	}
	if err = device.Dispatch(1, func(int) error {
		reduceUpdate(carryRows, carryVals, y)
		return nil
	}); err != nil {
		return opErrorf(tag, err)
	}

	return nil
}

// flatAtomic is the atomic-policy driver: plan → bind → level-1 dispatch →
// tail. No carry buffer, no level 2.
func flatAtomic(tag string, m *coo.Matrix, x, y []float64, cached bool, opts []Option) error {
	o, err := gatherOptions(opts...)
	if err != nil {
		return opErrorf(tag, err)
	}
	if err = coo.ValidateOperands(m, x, y); err != nil {
		return opErrorf(tag, err)
	}

	numEntries := m.NumEntries()
	if numEntries == 0 {
		return nil // well-defined no-op
	}
	if numEntries < device.WarpSize {
		serialRange(m, x, y, 0, numEntries)
		return nil
	}

	read, release, err := newReader(x, cached)
	if err != nil {
		return opErrorf(tag, err)
	}
	defer release()

	p := newPlan(numEntries, device.AtomicBlockSize, atomicMaxBlocks(o.maxThreads))

	if err = device.Dispatch(p.numBlocks, func(block int) error {
		atomicBlock(block, p, m, read, y)
		return nil
	}); err != nil {
		return opErrorf(tag, err)
	}

	// Tail after the dispatch wait: its rows may be boundary rows that the
	// kernel combines atomically; sequencing removes the overlap entirely.
	serialRange(m, x, y, p.tail, numEntries)

	return nil
}
