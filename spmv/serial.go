// SPDX-License-Identifier: MIT
// Package spmv: the sequential kernel.
//
// One worker, in entry order, plain accumulation. Three duties:
//   - the tail handler for entries past the planner's tail boundary,
//   - the whole computation for matrices smaller than one warp,
//   - the reference implementation the parallel kernels are tested against.

package spmv

import (
	"github.com/lorynj/cusplibrary/coo"
	"github.com/lorynj/cusplibrary/device"
)

// serialRange accumulates entries [from, to) into y, in order, with plain
// adds. Single-worker: callers must not run it concurrently with any other
// writer of y (the drivers sequence it strictly between the level-1 wait
// and level-2).
func serialRange(m *coo.Matrix, x, y []float64, from, to int) {
	for n := from; n < to; n++ {
		device.Add(y, m.RowIndices[n], m.Values[n]*x[m.ColIndices[n]])
	}
}

// Serial computes y += A·x entirely sequentially, in entry order. It is the
// deterministic reference the parallel operations must match within
// floating-point tolerance, and shares their accumulation contract.
func Serial(m *coo.Matrix, x, y []float64) error {
	if err := coo.ValidateOperands(m, x, y); err != nil {
		return opErrorf(opSerial, err)
	}
	serialRange(m, x, y, 0, m.NumEntries())

	return nil
}
