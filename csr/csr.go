// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"sort"

	"github.com/gaecan04/PARCO-Computing-2026-244005/mmio"
)

// FromCoordinate builds a CSR matrix from a loaded coordinate matrix.
// Returns ErrNilCoordinate on nil input; otherwise see FromTriplets.
func FromCoordinate(c *mmio.Coordinate) (*Matrix, error) {
	if c == nil {
		return nil, ErrNilCoordinate
	}

	return FromTriplets(c.Rows, c.Cols, c.Entries)
}

// FromTriplets builds a CSR matrix from an unordered triplet list.
//
// The input slice is not modified: the sort works on a copy. Triplets
// are ordered stably by (row, col) so that the output is deterministic
// regardless of input order, duplicates included. Complexity:
// O(N log N) time for the sort, O(N + R) for histogram and scatter.
//
// Returns ErrBadShape for non-positive dimensions and ErrIndexRange
// for any triplet outside [0,rows)×[0,cols).
func FromTriplets(rows, cols int, ts []mmio.Triplet) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	for i, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("%w: entry %d has (row=%d, col=%d), valid ranges row [0,%d), col [0,%d)",
				ErrIndexRange, i+1, t.Row, t.Col, rows, cols)
		}
	}

	nnz := len(ts)
	sorted := make([]mmio.Triplet, nnz)
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	// Histogram of row frequencies, prefix-summed into offsets.
	rowPtr := make([]int, rows+1)
	for _, t := range sorted {
		rowPtr[t.Row+1]++
	}
	for r := 0; r < rows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}

	// Scatter through per-row write cursors. The sorted order keeps
	// each row segment column-ascending.
	colIdx := make([]int, nnz)
	val := make([]float64, nnz)
	cursor := make([]int, rows)
	copy(cursor, rowPtr[:rows])
	for _, t := range sorted {
		dst := cursor[t.Row]
		colIdx[dst] = t.Col
		val[dst] = t.Val
		cursor[t.Row]++
	}

	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		RowPtr: rowPtr,
		ColIdx: colIdx,
		Val:    val,
	}, nil
}
