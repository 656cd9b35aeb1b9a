package csr_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gaecan04/PARCO-Computing-2026-244005/csr"
	"github.com/gaecan04/PARCO-Computing-2026-244005/mmio"
)

// TestFromTriplets_Errors verifies shape and index validation.
func TestFromTriplets_Errors(t *testing.T) {
	_, err := csr.FromTriplets(0, 3, nil)
	assert.ErrorIs(t, err, csr.ErrBadShape)

	_, err = csr.FromTriplets(3, -1, nil)
	assert.ErrorIs(t, err, csr.ErrBadShape)

	_, err = csr.FromTriplets(2, 2, []mmio.Triplet{{Row: 2, Col: 0, Val: 1}})
	assert.ErrorIs(t, err, csr.ErrIndexRange)

	_, err = csr.FromTriplets(2, 2, []mmio.Triplet{{Row: 0, Col: -1, Val: 1}})
	assert.ErrorIs(t, err, csr.ErrIndexRange)

	_, err = csr.FromCoordinate(nil)
	assert.ErrorIs(t, err, csr.ErrNilCoordinate)
}

// TestFromTriplets_RowPtrInvariants checks the offset-array contract:
// length R+1, non-decreasing, last offset = nnz, row-length sum = nnz.
func TestFromTriplets_RowPtrInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const rows, cols, nnz = 40, 30, 500

	ts := make([]mmio.Triplet, nnz)
	for i := range ts {
		ts[i] = mmio.Triplet{Row: rng.Intn(rows), Col: rng.Intn(cols), Val: rng.NormFloat64()}
	}
	m, err := csr.FromTriplets(rows, cols, ts)
	require.NoError(t, err)

	require.Len(t, m.RowPtr, rows+1)
	assert.Equal(t, 0, m.RowPtr[0])
	assert.Equal(t, nnz, m.RowPtr[rows])
	assert.Equal(t, nnz, m.NNZ())

	sum := 0
	for r := 0; r < rows; r++ {
		require.LessOrEqual(t, m.RowPtr[r], m.RowPtr[r+1], "RowPtr must be non-decreasing at %d", r)
		sum += m.RowNNZ(r)
	}
	assert.Equal(t, nnz, sum)
}

// TestFromTriplets_RowSegmentsSorted checks the deterministic layout:
// within each row, columns ascend.
func TestFromTriplets_RowSegmentsSorted(t *testing.T) {
	ts := []mmio.Triplet{
		{Row: 1, Col: 2, Val: 3},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 2},
		{Row: 0, Col: 0, Val: 0.5},
	}
	m, err := csr.FromTriplets(2, 3, ts)
	require.NoError(t, err)

	for r := 0; r < m.Rows; r++ {
		for j := m.RowPtr[r] + 1; j < m.RowPtr[r+1]; j++ {
			assert.LessOrEqual(t, m.ColIdx[j-1], m.ColIdx[j])
		}
	}
	assert.Equal(t, []int{0, 2, 4}, m.RowPtr)
	assert.Equal(t, []int{0, 1, 0, 2}, m.ColIdx)
	assert.Equal(t, []float64{0.5, 1, 2, 3}, m.Val)
}

// TestFromTriplets_DuplicatesKept: duplicate (row,col) pairs survive as
// separate adjacent entries, in input order (stable sort).
func TestFromTriplets_DuplicatesKept(t *testing.T) {
	ts := []mmio.Triplet{
		{Row: 0, Col: 1, Val: 10},
		{Row: 0, Col: 1, Val: 20},
	}
	m, err := csr.FromTriplets(1, 2, ts)
	require.NoError(t, err)

	require.Equal(t, 2, m.NNZ())
	assert.Equal(t, []float64{10, 20}, m.Val)
	// The dense expansion sums duplicates.
	assert.Equal(t, 30.0, m.Dense()[0][1])
}

// TestFromTriplets_DeterministicAcrossOrder: shuffled input must yield
// the identical CSR layout.
func TestFromTriplets_DeterministicAcrossOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const rows, cols, nnz = 20, 20, 200

	ts := make([]mmio.Triplet, nnz)
	for i := range ts {
		ts[i] = mmio.Triplet{Row: rng.Intn(rows), Col: rng.Intn(cols), Val: float64(i)}
	}
	a, err := csr.FromTriplets(rows, cols, ts)
	require.NoError(t, err)

	shuffled := make([]mmio.Triplet, nnz)
	copy(shuffled, ts)
	rng.Shuffle(nnz, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	b, err := csr.FromTriplets(rows, cols, shuffled)
	require.NoError(t, err)

	assert.Equal(t, a.RowPtr, b.RowPtr)
	assert.Equal(t, a.ColIdx, b.ColIdx)
	// Values may differ only where true (row,col) duplicates exist;
	// with distinct values per slot the dense views still must agree.
	assert.Equal(t, a.Dense(), b.Dense())
}

// TestDense_RoundTrip compares the CSR dense expansion against a dense
// matrix accumulated directly from the triplets (gonum mat.Dense).
func TestDense_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const rows, cols, nnz = 15, 12, 60

	ts := make([]mmio.Triplet, nnz)
	want := mat.NewDense(rows, cols, nil)
	for i := range ts {
		ts[i] = mmio.Triplet{Row: rng.Intn(rows), Col: rng.Intn(cols), Val: rng.Float64()}
		want.Set(ts[i].Row, ts[i].Col, want.At(ts[i].Row, ts[i].Col)+ts[i].Val)
	}
	m, err := csr.FromTriplets(rows, cols, ts)
	require.NoError(t, err)

	got := m.Dense()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, want.At(r, c), got[r][c], "mismatch at (%d,%d)", r, c)
		}
	}
}

// TestFromCoordinate_Scenario covers the loader contract scenario:
// comments + "4 4 2" header + 1-based (1,1) and (4,4) must produce
// RowPtr [0,1,1,1,2].
func TestFromCoordinate_Scenario(t *testing.T) {
	const file = "% c1\n% c2\n4 4 2\n1 1 2.0\n4 4 3.0\n"
	c, err := mmio.Read(strings.NewReader(file))
	require.NoError(t, err)

	m, err := csr.FromCoordinate(c)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 1, 1, 2}, m.RowPtr)
	assert.Equal(t, []int{0, 3}, m.ColIdx)
	assert.Equal(t, []float64{2.0, 3.0}, m.Val)
}

// TestFromTriplets_Boundaries covers nnz=1, all-in-one-row, and rows=1.
func TestFromTriplets_Boundaries(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		m, err := csr.FromTriplets(3, 3, []mmio.Triplet{{Row: 1, Col: 2, Val: 9}})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 1, 1}, m.RowPtr)
	})

	t.Run("all entries in one row", func(t *testing.T) {
		ts := []mmio.Triplet{
			{Row: 2, Col: 3, Val: 1}, {Row: 2, Col: 0, Val: 2}, {Row: 2, Col: 1, Val: 3},
		}
		m, err := csr.FromTriplets(4, 4, ts)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 3, 3}, m.RowPtr)
		assert.Equal(t, []int{0, 1, 3}, m.ColIdx)
	})

	t.Run("one row matrix", func(t *testing.T) {
		m, err := csr.FromTriplets(1, 5, []mmio.Triplet{{Row: 0, Col: 4, Val: 1}, {Row: 0, Col: 0, Val: 2}})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, m.RowPtr)
	})

	t.Run("empty triplet list", func(t *testing.T) {
		m, err := csr.FromTriplets(2, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0}, m.RowPtr)
		assert.Equal(t, 0, m.NNZ())
	})
}
