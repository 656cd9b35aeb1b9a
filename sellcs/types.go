// SPDX-License-Identifier: MIT

// Package sellcs: types, options, and sentinel errors for the
// SELL-C-σ builder.
package sellcs

import (
	"errors"
	"fmt"
)

// Sentinel errors for SELL-C-σ construction.
var (
	// ErrNilCSR is returned when a nil *csr.Matrix is passed.
	ErrNilCSR = errors.New("sellcs: csr matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sellcs: invalid option supplied")
)

// Defaults for the builder tunables.
const (
	// DefaultChunk is the slice height C when WithChunk is not given.
	DefaultChunk = 32

	// DefaultSigma is the sort window σ when WithSigma is not given.
	DefaultSigma = 128
)

// Matrix is a sparse matrix in SELL-C-σ form. Built once from CSR,
// immutable thereafter, safe for concurrent readers.
type Matrix struct {
	// Chunk is the slice height C; Sigma the sort window σ.
	Chunk, Sigma int

	Rows, Cols int

	// Slices = ceil(Rows/Chunk). The last slice's rectangle is still
	// Chunk rows tall; positions past Rows stay zero-filled and are
	// never visited by kernels.
	Slices int

	// SliceLen[s] is the max nonzero count among slice s's rows.
	// SlicePtr is the prefix sum of SliceLen[s]*Chunk, length Slices+1.
	SliceLen []int
	SlicePtr []int

	// ColIdx and Val hold the padded rectangles, column-major within
	// each slice. Padding cells carry column 0 and value 0.0.
	ColIdx []int
	Val    []float64

	// Perm[r] is the original CSR row stored at reordered position r.
	Perm []int
}

// PaddedNNZ returns the total stored cell count including padding.
func (m *Matrix) PaddedNNZ() int { return m.SlicePtr[m.Slices] }

// Option configures the builder via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when FromCSR is invoked.
type Option func(*buildOptions)

type buildOptions struct {
	chunk int
	sigma int

	// internal error recorded during option parsing
	err error
}

func defaultBuildOptions() buildOptions {
	return buildOptions{chunk: DefaultChunk, sigma: DefaultSigma}
}

// WithChunk sets the slice height C. Must be positive.
func WithChunk(c int) Option {
	return func(o *buildOptions) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: chunk height must be positive, got %d", ErrOptionViolation, c)
			return
		}
		o.chunk = c
	}
}

// WithSigma sets the sort window σ. Must be positive. A σ larger than
// the row count simply makes a single window spanning all rows.
func WithSigma(s int) Option {
	return func(o *buildOptions) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: sigma must be positive, got %d", ErrOptionViolation, s)
			return
		}
		o.sigma = s
	}
}
