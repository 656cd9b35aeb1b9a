// SPDX-License-Identifier: MIT

package csr

// Dense expands the matrix into a row-major [][]float64.
// Duplicate (row, col) entries sum in the dense view, since CSR keeps
// them as separate stored entries. Intended for verification and
// small matrices only: O(R·C) memory.
func (m *Matrix) Dense() [][]float64 {
	d := make([][]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		d[r] = make([]float64, m.Cols)
		for j := m.RowPtr[r]; j < m.RowPtr[r+1]; j++ {
			d[r][m.ColIdx[j]] += m.Val[j]
		}
	}

	return d
}
