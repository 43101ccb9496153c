// SPDX-License-Identifier: MIT
// Package spmv: the cached-read accessor.
//
// Wraps reads of x[col] behind one function type so the kernels are
// agnostic to the policy: a direct slice read, or a read routed through the
// device's read-only texture binding (worthwhile because column indices are
// not access-pattern-friendly).
//
// The binding is scoped to the call: newReader acquires it, the returned
// release func frees it, and drivers defer the release so every exit path —
// including allocation failures — unbinds. The sequential tail reads x
// directly in both policies; only warp lanes go through the cache.

package spmv

import "github.com/lorynj/cusplibrary/device"

// reader reads one element of the input vector.
type reader func(col int) float64

// noRelease is the release func for the direct policy.
func noRelease() {}

// newReader returns the read policy plus its release func. For cached
// reads, the texture slot is acquired here and must be released by the
// caller on every exit path; device.ErrTextureBound propagates when the
// slot is occupied.
func newReader(x []float64, cached bool) (reader, func(), error) {
	if !cached {
		return func(col int) float64 { return x[col] }, noRelease, nil
	}

	tex, err := device.BindTexture(x)
	if err != nil {
		return nil, nil, err
	}

	return tex.Fetch, tex.Release, nil
}
