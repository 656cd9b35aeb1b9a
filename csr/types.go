// SPDX-License-Identifier: MIT

// Package csr: types and sentinel errors for compressed sparse row storage.
package csr

import "errors"

// Sentinel errors for CSR construction.
var (
	// ErrBadShape is returned for non-positive row or column counts.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrIndexRange indicates a triplet index outside the declared shape.
	ErrIndexRange = errors.New("csr: triplet index out of range")

	// ErrNilCoordinate is returned when a nil *mmio.Coordinate is passed.
	ErrNilCoordinate = errors.New("csr: coordinate matrix is nil")
)

// Matrix is a sparse matrix in compressed sparse row form.
// Immutable once built; safe for concurrent readers.
//
// Within a row segment entries are ordered by column ascending
// (a construction guarantee, not a format requirement); duplicate
// (row, col) entries appear adjacently, unmerged.
type Matrix struct {
	Rows, Cols int

	RowPtr []int
	ColIdx []int
	Val    []float64
}

// NNZ returns the stored entry count.
func (m *Matrix) NNZ() int { return len(m.Val) }

// RowNNZ returns the number of stored entries in row r.
// Panics on out-of-range r, as slice indexing would.
func (m *Matrix) RowNNZ(r int) int { return m.RowPtr[r+1] - m.RowPtr[r] }
