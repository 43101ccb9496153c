// SPDX-License-Identifier: MIT
// Package spmv: level-2 carry resolution, deferred policy.
//
// After the level-1 dispatch is awaited, the carry buffer holds exactly one
// {row, partial} per active unit, row-sorted because units cover ascending
// entry ranges of a row-sorted stream. Two resolvers:
//
//   - reduceUpdate: one large cooperative group spans the buffer and applies
//     the same same-key segmented scan at block granularity, flushing each
//     row once where its successor differs. Deterministic summation order,
//     single accumulation per row, work-efficient for large carry counts.
//   - scatterUpdate: compacts adjacent same-row carries then applies each
//     surviving carry independently. Simpler; preferred when the buffer is
//     small relative to the reduce-group width.
//
// Both run strictly after level 1 and the tail, so plain adds are safe: at
// this point there is exactly one writer of y.

package spmv

import "github.com/lorynj/cusplibrary/device"

// sentinelRow is a key no real row can carry (builders reject negative
// indices); idle lanes and the successor slot use it.
const sentinelRow = -1

// reduceUpdate resolves the carry buffer with a block-wide segmented
// reduction: full group-width chunks first, then the ragged remainder with
// idle lanes parked on the sentinel.
func reduceUpdate(carryRows []int, carryVals []float64, y []float64) {
	g := device.NewGroup(device.ReduceBlockSize)
	width := g.Width()
	n := len(carryRows)

	// Successor sentinel: the group's last lane always sees a differing
	// row, so the last segment of each chunk flushes.
	g.Rows[width] = sentinelRow
	g.Vals[width] = 0
	g.Barrier()

	full := n - n%width
	for i := 0; i < full; i += width {
		for lane := 0; lane < width; lane++ {
			g.Rows[lane] = carryRows[i+lane]
			g.Vals[lane] = carryVals[i+lane]
		}
		g.Barrier()

		g.SegmentedScan()

		for lane := 0; lane < width; lane++ {
			if g.Rows[lane] != g.Rows[lane+1] {
				device.Add(y, g.Rows[lane], g.Vals[lane])
			}
		}
		g.Barrier()
	}

	if full < n {
		for lane := 0; lane < width; lane++ {
			if i := full + lane; i < n {
				g.Rows[lane] = carryRows[i]
				g.Vals[lane] = carryVals[i]
			} else {
				g.Rows[lane] = sentinelRow
				g.Vals[lane] = 0
			}
		}
		g.Barrier()

		g.SegmentedScan()

		for lane := 0; lane < width && full+lane < n; lane++ {
			if g.Rows[lane] != g.Rows[lane+1] {
				device.Add(y, g.Rows[lane], g.Vals[lane])
			}
		}
	}
}

// scatterUpdate resolves a small carry buffer without a scan: in-place
// compaction of adjacent same-row carries (the buffer is row-sorted), then
// one independent add per surviving carry. Mutates the buffer, which is
// transient by contract.
func scatterUpdate(carryRows []int, carryVals []float64, y []float64) {
	if len(carryRows) == 0 {
		return
	}

	unique := 0
	for s := 1; s < len(carryRows); s++ {
		if carryRows[unique] == carryRows[s] {
			carryVals[unique] += carryVals[s]
		} else {
			unique++
			carryRows[unique] = carryRows[s]
			carryVals[unique] = carryVals[s]
		}
	}

	for i := 0; i <= unique; i++ {
		device.Add(y, carryRows[i], carryVals[i])
	}
}
