package spmv

import "github.com/gaecan04/PARCO-Computing-2026-244005/sellcs"

// sliceParallel parallelizes over SELL-C-σ slices. Every row belongs
// to exactly one slice, so slice writes are disjoint and need no
// synchronization. Padding cells multiply to zero and are accumulated
// unconditionally; the per-slice permutation entries scatter results
// back to original row identities.
type sliceParallel struct {
	s    *sellcs.Matrix
	opts Options
	pool *pool
}

// NewSliceParallel builds the slice-parallel kernel over s.
// Returns ErrNilMatrix or ErrOptionViolation.
func NewSliceParallel(s *sellcs.Matrix, opts ...Option) (Kernel, error) {
	if s == nil {
		return nil, ErrNilMatrix
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &sliceParallel{s: s, opts: o, pool: newPool(o.Threads)}, nil
}

func (k *sliceParallel) Name() string { return "sellcs" }
func (k *sliceParallel) Rows() int    { return k.s.Rows }
func (k *sliceParallel) Cols() int    { return k.s.Cols }

func (k *sliceParallel) Close() error {
	k.pool.close()
	return nil
}

func (k *sliceParallel) Multiply(x, y []float64) error {
	if err := checkDims(k.s.Rows, k.s.Cols, x, y); err != nil {
		return err
	}
	s, c := k.s, k.s.Chunk

	k.pool.parallelFor(s.Slices, k.opts.Schedule, k.opts.Chunk, func(first, last int) {
		for sl := first; sl < last; sl++ {
			start := sl * c
			end := min(start+c, s.Rows)
			base := s.SlicePtr[sl]

			// Accumulate lane sums over the C×len rectangle, column-major.
			for r := start; r < end; r++ {
				sum := 0.0
				for k2 := 0; k2 < s.SliceLen[sl]; k2++ {
					idx := base + k2*c + (r - start)
					sum += s.Val[idx] * x[s.ColIdx[idx]]
				}
				y[s.Perm[r]] = sum
			}
		}
	})

	return nil
}
