// SPDX-License-Identifier: MIT
// Package device: the cooperative-group abstraction.
//
// Purpose:
//   - Replace the hardware warp/block primitive with an explicit fixed-size
//     unit: indexed scratch storage plus an explicit barrier.
//   - Host the same-key doubling-distance scan shared by both reduction
//     levels (warp width 32, block width 512).
//
// Concurrency model:
//   - One Group belongs to exactly one goroutine; it simulates its lanes in
//     lockstep phases. Lane reads and lane writes of the same distance are
//     separated into two phases with a Barrier between them, mirroring the
//     mandatory synchronization of the lockstep original. The scan result is
//     therefore independent of lane iteration order.
//   - Groups never share scratch; cross-group communication goes through
//     device memory (the caller's slices) only.

package device

const panicGroupWidth = "device: NewGroup: width must be a power of two, at least 2"

// Group is a fixed-width set of cooperating lanes with local scratch.
// Rows and Vals expose one slot per lane plus one extra successor slot at
// index Width(), used as a sentinel by block-level reductions.
type Group struct {
	width int

	// Rows and Vals are the lane scratch: segment keys and running values.
	Rows []int
	Vals []float64

	// left buffers the neighbor reads of one scan distance so that the
	// write phase never observes a same-distance write.
	left []float64

	// phase counts completed barriers; diagnostic only.
	phase int
}

// NewGroup returns a group of the given width with zeroed scratch.
// Width must be a power of two ≥ 2 (the scan doubles distances up to
// width/2); violations panic — programmer error, not input error.
func NewGroup(width int) *Group {
	if width < 2 || width&(width-1) != 0 {
		panic(panicGroupWidth)
	}

	return &Group{
		width: width,
		Rows:  make([]int, width+1),
		Vals:  make([]float64, width+1),
		left:  make([]float64, width),
	}
}

// Width returns the number of lanes.
func (g *Group) Width() int { return g.width }

// Barrier marks a synchronization point between lane phases. All lane
// writes of the previous phase are visible to all lanes afterwards. In the
// lockstep simulation this is a phase-count bump; the call sites mark where
// a hardware unit must synchronize.
func (g *Group) Barrier() { g.phase++ }

// Phase returns the number of barriers passed since creation.
func (g *Group) Phase() int { return g.phase }

// SegmentedScan combines Vals of lanes sharing the same Rows key into an
// inclusive prefix sum per segment: afterwards, the last lane of each
// segment holds the segment's total.
//
// Classic doubling-distance parallel prefix, restricted by a same-key
// predicate: at distances 1, 2, 4, ..., width/2 each lane adds the value
// held by the lane `distance` positions earlier iff their keys are equal.
// Each distance is split into a read phase and a write phase with barriers
// between them, so no lane observes a same-distance update.
//
// Complexity: O(width log width) lane-steps, log2(width) distances.
func (g *Group) SegmentedScan() {
	for distance := 1; distance < g.width; distance <<= 1 {
		// Read phase: capture the neighbor value, gated on key equality.
		for lane := distance; lane < g.width; lane++ {
			if g.Rows[lane] == g.Rows[lane-distance] {
				g.left[lane] = g.Vals[lane-distance]
			} else {
				g.left[lane] = 0
			}
		}
		g.Barrier()

		// Write phase: fold the captured values in.
		for lane := distance; lane < g.width; lane++ {
			g.Vals[lane] += g.left[lane]
		}
		g.Barrier()
	}
}
