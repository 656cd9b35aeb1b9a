package spmv

import "github.com/gaecan04/PARCO-Computing-2026-244005/csr"

// rowParallel partitions rows across the pool. Each row's accumulation
// is independent and writes its own y slot, so the barrier at the end
// of parallelFor is the only synchronization.
type rowParallel struct {
	a    *csr.Matrix
	opts Options
	pool *pool
}

// NewRowParallel builds the row-parallel kernel over a.
// Returns ErrNilMatrix or ErrOptionViolation.
func NewRowParallel(a *csr.Matrix, opts ...Option) (Kernel, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &rowParallel{a: a, opts: o, pool: newPool(o.Threads)}, nil
}

func (k *rowParallel) Name() string { return "rows" }
func (k *rowParallel) Rows() int    { return k.a.Rows }
func (k *rowParallel) Cols() int    { return k.a.Cols }

func (k *rowParallel) Close() error {
	k.pool.close()
	return nil
}

func (k *rowParallel) Multiply(x, y []float64) error {
	if err := checkDims(k.a.Rows, k.a.Cols, x, y); err != nil {
		return err
	}
	k.pool.parallelFor(k.a.Rows, k.opts.Schedule, k.opts.Chunk, func(start, end int) {
		csrRowRange(k.a, x, y, start, end)
	})

	return nil
}
