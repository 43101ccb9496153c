// Package spmv_test verifies the flattened-COO multiply: all four policy
// variants against the sequential reference, the degenerate and boundary
// geometries, and the error surface.
package spmv_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lorynj/cusplibrary/coo"
	"github.com/lorynj/cusplibrary/device"
	"github.com/lorynj/cusplibrary/spmv"
	"github.com/stretchr/testify/require"
)

// Tolerances mirror the reference harness: |a-b| ≤ rtol*(|a|+|b|) + atol.
const (
	absTol = 1e-4
	relTol = 1e-4
)

// variant pairs an operation with its name for table-driven runs.
type variant struct {
	name string
	op   func(*coo.Matrix, []float64, []float64, ...spmv.Option) error
}

func allVariants() []variant {
	return []variant{
		{name: "Flat", op: spmv.Flat},
		{name: "FlatCached", op: spmv.FlatCached},
		{name: "FlatAtomic", op: spmv.FlatAtomic},
		{name: "FlatAtomicCached", op: spmv.FlatAtomicCached},
	}
}

// requireVecNear asserts element-wise closeness under the combined
// absolute/relative tolerance.
func requireVecNear(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		diff := math.Abs(want[i] - got[i])
		bound := relTol*(math.Abs(want[i])+math.Abs(got[i])) + absTol
		require.LessOrEqualf(t, diff, bound, "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// randomMatrix builds a row-sorted random matrix with nnz entries (duplicate
// positions allowed, values integer-valued in [-10, 10]).
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols, nnz int) *coo.Matrix {
	t.Helper()
	entries := make([]coo.Entry, nnz)
	for i := range entries {
		entries[i] = coo.Entry{
			Row: rng.Intn(rows),
			Col: rng.Intn(cols),
			Val: float64(rng.Intn(21) - 10),
		}
	}
	m, err := coo.FromEntries(rows, cols, entries)
	require.NoError(t, err)
	require.True(t, coo.IsRowSorted(m))

	return m
}

// randomVector fills a vector with integer values in [-10, 10], the same
// distribution the reference harness uses.
func randomVector(rng *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(rng.Intn(21) - 10)
	}

	return x
}

// serialReference computes the oracle product into a fresh vector.
func serialReference(t *testing.T, m *coo.Matrix, x []float64) []float64 {
	t.Helper()
	y := make([]float64, m.NumRows)
	require.NoError(t, spmv.Serial(m, x, y))

	return y
}

func TestConcreteCase(t *testing.T) {
	// 3×3 with (0,0,2) (0,1,3) (1,1,4) (2,0,1) (2,2,5), x = [1,1,1].
	m, err := coo.FromEntries(3, 3, []coo.Entry{
		{Row: 0, Col: 0, Val: 2},
		{Row: 0, Col: 1, Val: 3},
		{Row: 1, Col: 1, Val: 4},
		{Row: 2, Col: 0, Val: 1},
		{Row: 2, Col: 2, Val: 5},
	})
	require.NoError(t, err)
	x := []float64{1, 1, 1}

	for _, v := range allVariants() {
		t.Run(v.name, func(t *testing.T) {
			y := make([]float64, 3)
			require.NoError(t, v.op(m, x, y))
			require.Equal(t, []float64{5, 4, 6}, y)
		})
	}
}

func TestVariantsMatchSerial_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	shapes := []struct {
		rows, cols, nnz int
	}{
		{rows: 10, cols: 10, nnz: 40},      // a single unit plus tail
		{rows: 100, cols: 80, nnz: 1000},   // a handful of units
		{rows: 500, cols: 300, nnz: 10007}, // many units, non-multiple-of-W tail
		{rows: 64, cols: 64, nnz: 4096},    // exact multiple, empty tail
		{rows: 7, cols: 9000, nnz: 20000},  // few long rows straddling many units
	}

	for _, s := range shapes {
		m := randomMatrix(t, rng, s.rows, s.cols, s.nnz)
		x := randomVector(rng, s.cols)
		want := serialReference(t, m, x)

		for _, v := range allVariants() {
			y := make([]float64, s.rows)
			require.NoError(t, v.op(m, x, y), "%s nnz=%d", v.name, s.nnz)
			requireVecNear(t, want, y)
		}
	}
}

func TestRowSumInvariant_EveryEntryExactlyOnce(t *testing.T) {
	// All-ones values with an all-ones x: y[row] must equal the exact entry
	// count of that row — integer adds are exact in float64, so any dropped
	// or double-counted entry shows as a hard mismatch.
	rng := rand.New(rand.NewSource(4242))
	const rows, cols, nnz = 37, 53, 8192

	entries := make([]coo.Entry, nnz)
	counts := make([]float64, rows)
	for i := range entries {
		r := rng.Intn(rows)
		entries[i] = coo.Entry{Row: r, Col: rng.Intn(cols), Val: 1}
		counts[r]++
	}
	m, err := coo.FromEntries(rows, cols, entries)
	require.NoError(t, err)
	x := make([]float64, cols)
	for i := range x {
		x[i] = 1
	}

	for _, v := range allVariants() {
		y := make([]float64, rows)
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, counts, y, v.name)
	}
}

func TestZeroMatrix_LeavesYUntouched(t *testing.T) {
	m, err := coo.New(4, 4, 0)
	require.NoError(t, err)
	x := []float64{1, 2, 3, 4}

	for _, v := range allVariants() {
		y := []float64{9, 8, 7, 6} // pre-existing content must survive
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, []float64{9, 8, 7, 6}, y)
	}
}

func TestAccumulationContract(t *testing.T) {
	// The operations accumulate: a pre-seeded y ends at seed + A·x.
	m, err := coo.FromEntries(2, 2, []coo.Entry{
		{Row: 0, Col: 0, Val: 3},
		{Row: 1, Col: 1, Val: 5},
	})
	require.NoError(t, err)
	x := []float64{2, 2}

	for _, v := range allVariants() {
		y := []float64{100, 200}
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, []float64{106, 210}, y)
	}
}

func TestTailOnly_WarpPlusThree(t *testing.T) {
	// nnz = W + 3: one full unit plus a 3-entry tail. The tail entries land
	// on a dedicated row so a dropped tail is unmissable.
	const nnz = device.WarpSize + 3
	entries := make([]coo.Entry, 0, nnz)
	for i := 0; i < device.WarpSize; i++ {
		entries = append(entries, coo.Entry{Row: 0, Col: i % 8, Val: 1})
	}
	for i := 0; i < 3; i++ {
		entries = append(entries, coo.Entry{Row: 1, Col: i, Val: 2})
	}
	m, err := coo.FromEntries(2, 8, entries)
	require.NoError(t, err)
	x := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	for _, v := range allVariants() {
		y := make([]float64, 2)
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, []float64{float64(device.WarpSize), 6}, y, v.name)
	}
}

func TestDegenerate_SmallerThanWarp(t *testing.T) {
	// Fewer entries than one warp: the serial fallback carries the whole
	// computation and must match the reference exactly.
	rng := rand.New(rand.NewSource(7))
	m := randomMatrix(t, rng, 5, 5, device.WarpSize-1)
	x := randomVector(rng, 5)
	want := serialReference(t, m, x)

	for _, v := range allVariants() {
		y := make([]float64, 5)
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, want, y, v.name)
	}
}

func TestBoundaryStraddle_SingleUnitBoundary(t *testing.T) {
	// 128 entries → four units of 32 under the default geometry. Row 5 owns
	// entries 20..39, straddling exactly the unit 0 / unit 1 boundary; the
	// split sum must match the serial whole.
	entries := make([]coo.Entry, 0, 128)
	row := 0
	for i := 0; i < 128; i++ {
		switch {
		case i < 20:
			row = i / 4 // rows 0..4
		case i < 40:
			row = 5 // the straddling row
		default:
			row = 6 + (i-40)/4
		}
		entries = append(entries, coo.Entry{Row: row, Col: i % 16, Val: float64(i%7) - 3})
	}
	m, err := coo.FromEntries(28, 16, entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	x := randomVector(rng, 16)
	want := serialReference(t, m, x)

	for _, v := range allVariants() {
		y := make([]float64, 28)
		require.NoError(t, v.op(m, x, y))
		requireVecNear(t, want, y)
	}
}

func TestSingleRowSpansEveryUnit(t *testing.T) {
	// One row owns the entire stream: every unit's carry lands on the same
	// row, maximal pressure on level-2 merging / atomic contention.
	const nnz = 4096
	entries := make([]coo.Entry, nnz)
	for i := range entries {
		entries[i] = coo.Entry{Row: 0, Col: i % 32, Val: 1}
	}
	m, err := coo.FromEntries(1, 32, entries)
	require.NoError(t, err)
	x := make([]float64, 32)
	for i := range x {
		x[i] = 1
	}

	for _, v := range allVariants() {
		y := make([]float64, 1)
		require.NoError(t, v.op(m, x, y))
		require.Equal(t, float64(nnz), y[0], v.name)
	}
}

func TestConstrainedThreadBudget_ManyItersPerUnit(t *testing.T) {
	// The minimum legal budget forces one block and long multi-stride
	// intervals (iters > 1), exercising the carry fold across strides.
	rng := rand.New(rand.NewSource(2024))
	m := randomMatrix(t, rng, 60, 40, 5000)
	x := randomVector(rng, 40)
	want := serialReference(t, m, x)

	for _, v := range allVariants() {
		y := make([]float64, 60)
		require.NoError(t, v.op(m, x, y, spmv.WithMaxThreads(device.WarpSize)))
		requireVecNear(t, want, y)
	}
}

func TestLargeCarryBuffer_FullReduceBlocks(t *testing.T) {
	// A raised thread budget yields more active units than one reduce group
	// width (512), driving the full-chunk path of the level-2 reduction.
	rng := rand.New(rand.NewSource(31415))
	const rows, cols, nnz = 700, 64, 600 * device.WarpSize
	m := randomMatrix(t, rng, rows, cols, nnz)
	x := randomVector(rng, cols)
	want := serialReference(t, m, x)

	y := make([]float64, rows)
	require.NoError(t, spmv.Flat(m, x, y, spmv.WithMaxThreads(1<<18)))
	requireVecNear(t, want, y)
}

func TestScatterFallback_MatchesReduce(t *testing.T) {
	rng := rand.New(rand.NewSource(555))
	m := randomMatrix(t, rng, 200, 100, 20000)
	x := randomVector(rng, 100)

	// Force the scatter path...
	scatter := make([]float64, 200)
	require.NoError(t, spmv.Flat(m, x, scatter, spmv.WithScatterThreshold(1<<20)))

	// ...and forbid it.
	reduced := make([]float64, 200)
	require.NoError(t, spmv.Flat(m, x, reduced, spmv.WithScatterThreshold(0)))

	requireVecNear(t, reduced, scatter)
	requireVecNear(t, serialReference(t, m, x), scatter)
}

func TestFlat_Deterministic(t *testing.T) {
	// The deferred policy fixes the summation order: repeated runs must be
	// bitwise identical, regardless of scheduling.
	rng := rand.New(rand.NewSource(8080))
	m := randomMatrix(t, rng, 300, 200, 50000)
	x := make([]float64, 200)
	for i := range x {
		x[i] = rng.Float64()*2 - 1 // non-integer values: order would show
	}

	first := make([]float64, 300)
	require.NoError(t, spmv.Flat(m, x, first))
	for run := 0; run < 5; run++ {
		y := make([]float64, 300)
		require.NoError(t, spmv.Flat(m, x, y))
		require.Equal(t, first, y, "run %d", run)
	}
}

func TestOperandValidation(t *testing.T) {
	m, err := coo.FromEntries(3, 3, []coo.Entry{{Row: 0, Col: 0, Val: 1}})
	require.NoError(t, err)

	for _, v := range allVariants() {
		require.ErrorIs(t, v.op(nil, []float64{1}, []float64{1}), coo.ErrNilMatrix, v.name)
		require.ErrorIs(t, v.op(m, []float64{1}, make([]float64, 3)), coo.ErrDimensionMismatch, v.name)
		require.ErrorIs(t, v.op(m, make([]float64, 3), []float64{1}), coo.ErrDimensionMismatch, v.name)
	}

	require.ErrorIs(t, spmv.Serial(nil, nil, nil), coo.ErrNilMatrix)
}

func TestOptionViolations(t *testing.T) {
	m, err := coo.FromEntries(1, 1, []coo.Entry{{Row: 0, Col: 0, Val: 1}})
	require.NoError(t, err)
	x, y := []float64{1}, []float64{0}

	require.ErrorIs(t, spmv.Flat(m, x, y, spmv.WithMaxThreads(0)), spmv.ErrOptionViolation)
	require.ErrorIs(t, spmv.Flat(m, x, y, spmv.WithScatterThreshold(-1)), spmv.ErrOptionViolation)

	// A violated option must fail BEFORE any accumulation happens.
	require.Equal(t, 0.0, y[0])
}

func TestCachedVariants_TextureDiscipline(t *testing.T) {
	rng := rand.New(rand.NewSource(606))
	m := randomMatrix(t, rng, 50, 50, 2000)
	x := randomVector(rng, 50)

	// While a foreign binding is live, cached variants must refuse...
	tex, err := device.BindTexture([]float64{1})
	require.NoError(t, err)
	y := make([]float64, 50)
	require.ErrorIs(t, spmv.FlatCached(m, x, y), device.ErrTextureBound)
	require.ErrorIs(t, spmv.FlatAtomicCached(m, x, y), device.ErrTextureBound)
	tex.Release()

	// ...and afterwards succeed, releasing their own binding on exit so a
	// follow-up bind is possible.
	require.NoError(t, spmv.FlatCached(m, x, y))
	tex2, err := device.BindTexture(x)
	require.NoError(t, err)
	tex2.Release()
}
