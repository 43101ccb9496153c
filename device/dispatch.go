// SPDX-License-Identifier: MIT
// Package device: block dispatch.
//
// Dispatch is the launch primitive: one goroutine per execution block, no
// ordering guarantees between blocks, and a collective wait. The wait is
// the whole-device barrier the two-phase reduction relies on — a second
// dispatch must not start reading a buffer until every block of the first
// has finished writing it, and that ordering is explicit here, never an
// assumption about scheduling.
//
// Failures inside a block surface only after the dispatch completes, as a
// single post-call error signal (first error wins).

package device

import "golang.org/x/sync/errgroup"

// Dispatch runs kernel once per block id in [0, blocks), each on its own
// goroutine, and waits for all of them. Returns the first kernel error, or
// nil. blocks ≤ 0 is a no-op.
func Dispatch(blocks int, kernel func(block int) error) error {
	var g errgroup.Group
	for b := 0; b < blocks; b++ {
		b := b
		g.Go(func() error {
			return kernel(b)
		})
	}

	return g.Wait()
}
