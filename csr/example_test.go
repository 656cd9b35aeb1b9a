package csr_test

import (
	"fmt"

	"github.com/gaecan04/PARCO-Computing-2026-244005/csr"
	"github.com/gaecan04/PARCO-Computing-2026-244005/mmio"
)

// ExampleFromTriplets converts a scattered triplet list and prints the
// compressed layout: rows grouped, columns ascending within each row.
func ExampleFromTriplets() {
	ts := []mmio.Triplet{
		{Row: 2, Col: 2, Val: 6},
		{Row: 0, Col: 0, Val: 4},
		{Row: 1, Col: 1, Val: 5},
	}
	m, err := csr.FromTriplets(3, 3, ts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("RowPtr:", m.RowPtr)
	fmt.Println("ColIdx:", m.ColIdx)
	fmt.Println("Val:   ", m.Val)
	// Output:
	// RowPtr: [0 1 2 3]
	// ColIdx: [0 1 2]
	// Val:    [4 5 6]
}
