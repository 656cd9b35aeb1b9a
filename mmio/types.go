// Package mmio defines the coordinate types, options, and sentinel
// errors for the sparse-matrix loader.
package mmio

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading operations.
var (
	// ErrBadHeader indicates a malformed header line or non-positive counts.
	ErrBadHeader = errors.New("mmio: invalid matrix header")

	// ErrTruncated indicates the stream ended before all declared entries were read.
	ErrTruncated = errors.New("mmio: unexpected end of stream")

	// ErrBadEntry indicates an entry line that failed to parse.
	ErrBadEntry = errors.New("mmio: invalid matrix entry")

	// ErrIndexRange indicates an entry index outside the declared shape.
	ErrIndexRange = errors.New("mmio: entry index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mmio: invalid option supplied")
)

// Triplet is a single (row, col, value) coordinate entry.
// Triplets are ephemeral: they exist between load and CSR conversion.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// Coordinate holds a loaded matrix in unordered coordinate form.
// Indices are always 0-based after loading, regardless of the file's
// index base. Duplicate (row, col) pairs are kept as-is; merging (or
// not) is the concern of downstream format builders.
type Coordinate struct {
	Rows    int
	Cols    int
	Entries []Triplet
}

// NNZ returns the number of stored entries.
func (c *Coordinate) NNZ() int { return len(c.Entries) }

// Option configures loading via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Read is invoked.
type Option func(*readOptions)

// readOptions holds loader tunables.
type readOptions struct {
	marker byte // comment-line marker, first byte of a skipped line

	// internal error recorded during option parsing
	err error
}

// defaultReadOptions returns the loader defaults: '%' comment marker.
func defaultReadOptions() readOptions {
	return readOptions{marker: '%'}
}

// WithCommentMarker sets the byte that opens a comment line.
// Whitespace and digit markers are rejected, since they would make the
// header line ambiguous.
func WithCommentMarker(m byte) Option {
	return func(o *readOptions) {
		if m == ' ' || m == '\t' || (m >= '0' && m <= '9') {
			o.err = fmt.Errorf("%w: comment marker %q would shadow data lines", ErrOptionViolation, m)
			return
		}
		o.marker = m
	}
}
