// SPDX-License-Identifier: MIT
// Package spmv: functional configuration for the multiply entry points.
//
// Design goals:
//   - Deterministic behavior: no global state, documented defaults as the
//     single source of truth.
//   - No dead switches: each knob changes the launch geometry or the
//     level-2 policy selection and is covered by tests.
//   - Invalid values are recorded and surfaced as ErrOptionViolation when
//     the operation is invoked, never panicked on.

package spmv

import "github.com/lorynj/cusplibrary/device"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxThreads is the device thread budget handed to the planner.
	// It bounds the number of concurrently active units, not the matrix
	// size: fewer threads mean longer intervals per unit.
	DefaultMaxThreads = device.MaxThreads

	// DefaultScatterThreshold selects the level-2 scatter fallback whenever
	// the carry buffer holds at most this many carries — "small relative to
	// the reduce-group width". Zero disables the fallback entirely.
	DefaultScatterThreshold = device.WarpSize
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	maxThreads       int
	scatterThreshold int

	// first violation recorded during option application
	err error
}

func defaultOptions() Options {
	return Options{
		maxThreads:       DefaultMaxThreads,
		scatterThreshold: DefaultScatterThreshold,
	}
}

// WithMaxThreads overrides the device thread budget used by the planner.
// n must be at least one warp (device.WarpSize); smaller values are an
// option violation. Shrinking the budget is mostly a testing lever: it
// forces long intervals and many iterations per unit.
func WithMaxThreads(n int) Option {
	return func(o *Options) {
		if n < device.WarpSize {
			o.recordViolation()
			return
		}
		o.maxThreads = n
	}
}

// WithScatterThreshold sets the carry-buffer size at or below which level 2
// uses the scatter-update fallback instead of the block-wide reduction.
// n == 0 disables the fallback; negative n is an option violation.
func WithScatterThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.recordViolation()
			return
		}
		o.scatterThreshold = n
	}
}

// recordViolation keeps the FIRST violation; later valid options still
// apply, but the operation will refuse to run.
func (o *Options) recordViolation() {
	if o.err == nil {
		o.err = ErrOptionViolation
	}
}

// gatherOptions resolves defaults plus setters and surfaces any recorded
// violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
