// SPDX-License-Identifier: MIT
// Package device: launch-geometry constants.
// Single source of truth for the fixed widths the planner and kernels use.

package device

const (
	// WarpSize is the fixed width W of one cooperative unit. Every level-1
	// interval is a multiple of WarpSize; entries that do not fill one full
	// warp are the tail, handled sequentially.
	WarpSize = 32

	// BlockSize is the thread width of one execution block in the deferred
	// (carry-buffer) kernel: BlockSize/WarpSize warps share one block.
	BlockSize = 256

	// AtomicBlockSize is the narrower block width used by the atomic kernel,
	// which trades block occupancy for more concurrent blocks.
	AtomicBlockSize = 128

	// ReduceBlockSize is the width of the single large group that performs
	// the level-2 segmented reduction over the carry buffer.
	ReduceBlockSize = 512

	// MaxThreads is the device-wide concurrent thread budget. The planner
	// derives its maximum active block count from it; it is a sizing knob,
	// not a hard scheduling limit for goroutines.
	MaxThreads = 8 * 1024

	// MaxArrayLen caps one transient allocation, in elements. Requests above
	// it surface ErrAllocFailed rather than attempting the allocation.
	MaxArrayLen = 1<<31 - 1
)
