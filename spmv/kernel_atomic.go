// SPDX-License-Identifier: MIT
// Package spmv: level-1 kernel, immediate-atomic policy.
//
// Same stride walk as the deferred kernel, but no carry buffer and no
// second pass: whenever a boundary carry resolves it goes straight into y
// with an atomic add. The discriminator is the interval's FIRST row: only a
// row equal to it can also be the previous unit's final carry row, so only
// those flushes can race with a neighboring unit. Every other row is
// interior and keeps the plain add.
//
// The unit's final carry always goes through the atomic path — its row may
// continue into the next unit's interval, whose owner may be flushing it
// concurrently.

package spmv

import (
	"github.com/lorynj/cusplibrary/coo"
	"github.com/lorynj/cusplibrary/device"
)

// atomicBlock runs one execution block of the atomic kernel.
func atomicBlock(block int, p plan, m *coo.Matrix, read reader, y []float64) {
	group := device.NewGroup(device.WarpSize)

	for w := 0; w < p.warpsPerBlock; w++ {
		unit := block*p.warpsPerBlock + w
		begin, end := p.interval(unit)
		if begin >= end {
			continue // unit has no work to do
		}
		atomicInterval(group, begin, end, m, read, y)
	}
}

// atomicInterval reduces one unit's interval [begin, end), resolving
// boundary rows atomically in place.
func atomicInterval(g *device.Group, begin, end int, m *coo.Matrix, read reader, y []float64) {
	lanes := g.Width()

	// Rows equal to firstRow may straddle the boundary with the previous
	// unit; they are the only rows needing the atomic combine.
	firstRow := m.RowIndices[begin]

	carryRow := firstRow
	carryVal := 0.0

	for n := begin; n < end; n += lanes {
		for lane := 0; lane < lanes; lane++ {
			g.Rows[lane] = m.RowIndices[n+lane]
			g.Vals[lane] = m.Values[n+lane] * read(m.ColIndices[n+lane])
		}
		g.Barrier()

		switch {
		case g.Rows[0] == carryRow:
			g.Vals[0] += carryVal // row continues into this stride
		case carryRow != firstRow:
			device.Add(y, carryRow, carryVal) // terminated, interior
		default:
			device.AtomicAdd(y, carryRow, carryVal) // terminated, spans unit boundary
		}
		g.Barrier()

		g.SegmentedScan()

		for lane := 0; lane < lanes-1; lane++ {
			if g.Rows[lane] != g.Rows[lane+1] { // row terminates here
				if g.Rows[lane] != firstRow {
					device.Add(y, g.Rows[lane], g.Vals[lane])
				} else {
					device.AtomicAdd(y, g.Rows[lane], g.Vals[lane])
				}
			}
		}
		carryRow = g.Rows[lanes-1]
		carryVal = g.Vals[lanes-1]
	}

	// Final carry: may merge with the next unit's first row, so atomic.
	device.AtomicAdd(y, carryRow, carryVal)
}
