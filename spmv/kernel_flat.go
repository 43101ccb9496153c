// SPDX-License-Identifier: MIT
// Package spmv: level-1 kernel, deferred-carry policy.
//
// Each active unit walks its interval in warp-wide strides: load one
// row/col/val triple per lane, multiply against x, fold or flush the held
// carry, segmented-scan the lanes, flush every lane whose row terminates
// inside the stride, and keep the last lane as the new carry. The unit's
// final carry is recorded in the carry buffer for level 2 — never written
// to y here, because only level 2 can tell whether it merges with the next
// unit's first row.
//
// Race discipline: every y write in this file is a plain device.Add. That
// is safe because each flushed row terminates strictly inside this unit's
// interval — no other unit, and neither the tail nor level 2 (both of which
// run only after this dispatch is awaited), can be writing it concurrently.

package spmv

import (
	"github.com/lorynj/cusplibrary/coo"
	"github.com/lorynj/cusplibrary/device"
)

// flatBlock runs one execution block of the deferred kernel: its warps in
// sequence, one shared group scratch.
func flatBlock(block int, p plan, m *coo.Matrix, read reader, y []float64, carryRows []int, carryVals []float64) {
	group := device.NewGroup(device.WarpSize)

	for w := 0; w < p.warpsPerBlock; w++ {
		unit := block*p.warpsPerBlock + w
		begin, end := p.interval(unit)
		if begin >= end {
			continue // unit has no work to do
		}
		flatInterval(group, unit, begin, end, m, read, y, carryRows, carryVals)
	}
}

// flatInterval reduces one unit's interval [begin, end).
// Preconditions from the planner: begin < end, both multiples of the warp
// width, so every stride is a full warp load.
func flatInterval(g *device.Group, unit, begin, end int, m *coo.Matrix, read reader, y []float64, carryRows []int, carryVals []float64) {
	lanes := g.Width()

	// The carry starts as an empty partial of the interval's first row, so
	// the first stride always folds rather than flushes.
	carryRow := m.RowIndices[begin]
	carryVal := 0.0

	for n := begin; n < end; n += lanes {
		// Load phase: one triple per lane.
		for lane := 0; lane < lanes; lane++ {
			g.Rows[lane] = m.RowIndices[n+lane]
			g.Vals[lane] = m.Values[n+lane] * read(m.ColIndices[n+lane])
		}
		g.Barrier()

		// Lane 0 resolves the held carry against the stride's first row.
		if g.Rows[0] == carryRow {
			g.Vals[0] += carryVal // row continues into this stride
		} else {
			// Row terminated strictly inside the previous stride: interior,
			// single-writer, plain add.
			device.Add(y, carryRow, carryVal)
		}
		g.Barrier()

		g.SegmentedScan()

		// Every lane whose row differs from its successor holds a complete
		// row sum; the last lane instead becomes the new carry.
		for lane := 0; lane < lanes-1; lane++ {
			if g.Rows[lane] != g.Rows[lane+1] {
				device.Add(y, g.Rows[lane], g.Vals[lane]) // row terminated
			}
		}
		carryRow = g.Rows[lanes-1]
		carryVal = g.Vals[lanes-1]
	}

	// Final carry: unresolved until level 2 merges unit boundaries.
	carryRows[unit] = carryRow
	carryVals[unit] = carryVal
}
