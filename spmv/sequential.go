package spmv

import "github.com/gaecan04/PARCO-Computing-2026-244005/csr"

// sequential is the single-threaded reference kernel: per-row dot
// products in stored (column-ascending) order, fully deterministic.
type sequential struct {
	a *csr.Matrix
}

// NewSequential builds the sequential row kernel over a.
// Its summation order is deterministic, making it the reference the
// parallel kernels are compared against.
func NewSequential(a *csr.Matrix) (Kernel, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	return &sequential{a: a}, nil
}

func (k *sequential) Name() string { return "sequential" }
func (k *sequential) Rows() int    { return k.a.Rows }
func (k *sequential) Cols() int    { return k.a.Cols }

// Close is a no-op: the sequential kernel owns no workers.
func (k *sequential) Close() error { return nil }

func (k *sequential) Multiply(x, y []float64) error {
	if err := checkDims(k.a.Rows, k.a.Cols, x, y); err != nil {
		return err
	}
	csrRowRange(k.a, x, y, 0, k.a.Rows)

	return nil
}

// csrRowRange computes y[r] for rows [start, end) — the shared loop
// body of the sequential and row-parallel kernels.
func csrRowRange(a *csr.Matrix, x, y []float64, start, end int) {
	for r := start; r < end; r++ {
		sum := 0.0
		for j := a.RowPtr[r]; j < a.RowPtr[r+1]; j++ {
			sum += a.Val[j] * x[a.ColIdx[j]]
		}
		y[r] = sum
	}
}
