package mmio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaecan04/PARCO-Computing-2026-244005/mmio"
)

// sample is a 1-based file with two comment lines, exercising both the
// comment skipper and the base-detection heuristic.
const sample = `% auto-generated test matrix
% rows cols nnz
4 4 2
1 1 2.0
4 4 3.0
`

// TestRead_CommentsAndOneBased verifies comment skipping plus 1-based
// conversion: (1,1) and (4,4) must land on (0,0) and (3,3).
func TestRead_CommentsAndOneBased(t *testing.T) {
	c, err := mmio.Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Rows)
	assert.Equal(t, 4, c.Cols)
	require.Equal(t, 2, c.NNZ())
	assert.Equal(t, mmio.Triplet{Row: 0, Col: 0, Val: 2.0}, c.Entries[0])
	assert.Equal(t, mmio.Triplet{Row: 3, Col: 3, Val: 3.0}, c.Entries[1])
}

// TestRead_ZeroBasedUntouched verifies that a file which never touches
// row==rows nor col==cols keeps its indices as written.
func TestRead_ZeroBasedUntouched(t *testing.T) {
	in := "3 3 2\n0 0 1.5\n1 2 -2.5\n"
	c, err := mmio.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, mmio.Triplet{Row: 0, Col: 0, Val: 1.5}, c.Entries[0])
	assert.Equal(t, mmio.Triplet{Row: 1, Col: 2, Val: -2.5}, c.Entries[1])
}

// TestRead_HeaderErrors covers malformed headers: the "3 3" two-field
// header from the loader contract must fail before any entry is read.
func TestRead_HeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"two fields", "3 3\n"},
		{"four fields", "3 3 3 3\n"},
		{"non-integer", "3 x 3\n"},
		{"zero count", "3 0 1\n0 0 1.0\n"},
		{"negative count", "-3 3 1\n0 0 1.0\n"},
		{"only comments", "% nothing\n% here\n"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mmio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, mmio.ErrBadHeader)
		})
	}
}

// TestRead_EntryErrors covers per-entry parse failures with entry detail.
func TestRead_EntryErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"bad row", "2 2 1\nx 1 1.0\n", mmio.ErrBadEntry},
		{"bad col", "2 2 1\n1 y 1.0\n", mmio.ErrBadEntry},
		{"bad value", "2 2 1\n1 1 zz\n", mmio.ErrBadEntry},
		{"two fields", "2 2 1\n1 1\n", mmio.ErrBadEntry},
		{"truncated", "2 2 3\n1 1 1.0\n", mmio.ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mmio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRead_IndexRange verifies the post-normalization bounds check.
// (5,1) in a 3×3 file is neither valid 1-based nor 0-based.
func TestRead_IndexRange(t *testing.T) {
	in := "3 3 2\n5 1 1.0\n1 1 1.0\n"
	_, err := mmio.Read(strings.NewReader(in))
	require.ErrorIs(t, err, mmio.ErrIndexRange)
	assert.Contains(t, err.Error(), "entry 1")
}

// TestRead_HeuristicShiftsBothAxes: max row hitting the declared count
// is enough to shift columns too, as the axes share one base.
func TestRead_HeuristicShiftsBothAxes(t *testing.T) {
	in := "2 5 2\n2 1 1.0\n1 3 4.0\n"
	c, err := mmio.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, mmio.Triplet{Row: 1, Col: 0, Val: 1.0}, c.Entries[0])
	assert.Equal(t, mmio.Triplet{Row: 0, Col: 2, Val: 4.0}, c.Entries[1])
}

// TestRead_Idempotent: loading the same content twice yields identical
// coordinate output.
func TestRead_Idempotent(t *testing.T) {
	a, err := mmio.Read(strings.NewReader(sample))
	require.NoError(t, err)
	b, err := mmio.Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestRead_CustomMarker exercises WithCommentMarker and its validation.
func TestRead_CustomMarker(t *testing.T) {
	in := "# custom comment\n2 2 1\n1 1 7.0\n"
	c, err := mmio.Read(strings.NewReader(in), mmio.WithCommentMarker('#'))
	require.NoError(t, err)
	assert.Equal(t, 1, c.NNZ())

	_, err = mmio.Read(strings.NewReader(in), mmio.WithCommentMarker('7'))
	assert.ErrorIs(t, err, mmio.ErrOptionViolation)
}

// TestReadFile_Missing verifies the file wrapper reports open failures.
func TestReadFile_Missing(t *testing.T) {
	_, err := mmio.ReadFile("definitely/not/here.mtx")
	require.Error(t, err)
}
