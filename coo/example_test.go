package coo_test

import (
	"fmt"

	"github.com/lorynj/cusplibrary/coo"
)

// ExampleFromEntries demonstrates building a row-sorted COO matrix from an
// arbitrary-order entry list.
func ExampleFromEntries() {
	m, _ := coo.FromEntries(3, 3, []coo.Entry{
		{Row: 2, Col: 2, Val: 5},
		{Row: 0, Col: 0, Val: 2},
		{Row: 1, Col: 1, Val: 4},
	})
	fmt.Println("sorted:", coo.IsRowSorted(m))
	fmt.Println("rows:  ", m.RowIndices)
	// Output:
	// sorted: true
	// rows:   [0 1 2]
}

// ExampleFromDense extracts the nonzero entries of a dense grid.
func ExampleFromDense() {
	m, _ := coo.FromDense([][]float64{
		{2, 3, 0},
		{0, 4, 0},
		{1, 0, 5},
	})
	fmt.Println("entries:", m.NumEntries())
	// Output:
	// entries: 5
}
