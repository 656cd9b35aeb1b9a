// SPDX-License-Identifier: MIT

package sellcs

import (
	"sort"

	"github.com/gaecan04/PARCO-Computing-2026-244005/csr"
)

// FromCSR builds a SELL-C-σ matrix from CSR storage.
//
// Steps:
//  1. compute each row's nonzero count;
//  2. within each σ-row window, stably sort row positions by
//     descending nonzero count, recording the permutation;
//  3. cut the reordered rows into slices of height C;
//  4. per slice, length = max nonzero count among its rows;
//  5. lay out each slice as a column-major C×length rectangle,
//     zero-padding short rows.
//
// The input matrix is read-only throughout; row reordering happens
// only in the permutation. Complexity: O(R log σ + padded cells).
//
// Returns ErrNilCSR or ErrOptionViolation.
func FromCSR(a *csr.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilCSR
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows := a.Rows
	rowLen := make([]int, rows)
	for r := 0; r < rows; r++ {
		rowLen[r] = a.RowNNZ(r)
	}

	// Sigma-window sort: descending nonzero count, stable so equal-
	// length rows keep their relative order (deterministic layout).
	perm := make([]int, rows)
	for i := range perm {
		perm[i] = i
	}
	for b := 0; b < rows; b += o.sigma {
		end := min(b+o.sigma, rows)
		window := perm[b:end]
		sort.SliceStable(window, func(i, j int) bool {
			return rowLen[window[i]] > rowLen[window[j]]
		})
	}

	slices := (rows + o.chunk - 1) / o.chunk
	sliceLen := make([]int, slices)
	slicePtr := make([]int, slices+1)
	for s := 0; s < slices; s++ {
		start, send := s*o.chunk, min((s+1)*o.chunk, rows)
		maxLen := 0
		for r := start; r < send; r++ {
			if l := rowLen[perm[r]]; l > maxLen {
				maxLen = l
			}
		}
		sliceLen[s] = maxLen
		slicePtr[s+1] = slicePtr[s] + maxLen*o.chunk
	}

	// make() zero-fills, so only real entries need writing: padding
	// cells and ghost rows of a partial last slice are already
	// (col 0, val 0.0).
	total := slicePtr[slices]
	colIdx := make([]int, total)
	val := make([]float64, total)
	for s := 0; s < slices; s++ {
		start, send := s*o.chunk, min((s+1)*o.chunk, rows)
		base := slicePtr[s]
		for r := start; r < send; r++ {
			orig := perm[r]
			lane := r - start
			for k, j := 0, a.RowPtr[orig]; j < a.RowPtr[orig+1]; k, j = k+1, j+1 {
				pos := base + k*o.chunk + lane
				colIdx[pos] = a.ColIdx[j]
				val[pos] = a.Val[j]
			}
		}
	}

	return &Matrix{
		Chunk:    o.chunk,
		Sigma:    o.sigma,
		Rows:     rows,
		Cols:     a.Cols,
		Slices:   slices,
		SliceLen: sliceLen,
		SlicePtr: slicePtr,
		ColIdx:   colIdx,
		Val:      val,
		Perm:     perm,
	}, nil
}
