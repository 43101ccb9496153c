// SPDX-License-Identifier: MIT
// Package spmv: error surface.
// The multiply produces no error taxonomy of its own beyond option
// validation; everything else propagates coo/device sentinels wrapped with
// the operation tag so call sites read "FlatCached: device: ...".

package spmv

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("spmv: invalid option supplied")

// Operation name constants for unified error wrapping; no magic strings at
// call sites.
const (
	opFlat             = "Flat"
	opFlatCached       = "FlatCached"
	opFlatAtomic       = "FlatAtomic"
	opFlatAtomicCached = "FlatAtomicCached"
	opSerial           = "Serial"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is/As. Callers must ensure err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
