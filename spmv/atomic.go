package spmv

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/gaecan04/PARCO-Computing-2026-244005/csr"
)

// atomicEntry parallelizes over individual nonzero entries instead of
// rows. Each entry's product is combined into its row's accumulator
// with a CAS loop on the float64 bit pattern, so the final sum is
// correct regardless of completion order. Floating-point addition is
// only approximately associative: results match the row kernels within
// tolerance, not bit-for-bit across schedules.
type atomicEntry struct {
	a    *csr.Matrix
	opts Options
	pool *pool

	// acc holds per-row accumulators as float64 bits; scratch space
	// reused across Multiply calls (kernels are single-session).
	acc []uint64
}

// NewAtomic builds the entry-parallel atomic kernel over a.
// Returns ErrNilMatrix or ErrOptionViolation.
func NewAtomic(a *csr.Matrix, opts ...Option) (Kernel, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &atomicEntry{
		a:    a,
		opts: o,
		pool: newPool(o.Threads),
		acc:  make([]uint64, a.Rows),
	}, nil
}

func (k *atomicEntry) Name() string { return "atomic" }
func (k *atomicEntry) Rows() int    { return k.a.Rows }
func (k *atomicEntry) Cols() int    { return k.a.Cols }

func (k *atomicEntry) Close() error {
	k.pool.close()
	return nil
}

func (k *atomicEntry) Multiply(x, y []float64) error {
	if err := checkDims(k.a.Rows, k.a.Cols, x, y); err != nil {
		return err
	}
	a, rows := k.a, k.a.Rows

	// Zero the accumulators, parallelized over rows.
	k.pool.parallelFor(rows, k.opts.Schedule, k.opts.Chunk, func(start, end int) {
		clear(k.acc[start:end])
	})

	// Parallelize over entries. An entry is not tagged with its row,
	// so the owning row is recovered by binary search over RowPtr.
	k.pool.parallelFor(a.NNZ(), k.opts.Schedule, k.opts.Chunk, func(start, end int) {
		for j := start; j < end; j++ {
			row := findRow(a.RowPtr, j)
			atomicAddFloat64(&k.acc[row], a.Val[j]*x[a.ColIdx[j]])
		}
	})

	// Publish the accumulated bits into y, parallelized over rows.
	k.pool.parallelFor(rows, k.opts.Schedule, k.opts.Chunk, func(start, end int) {
		for r := start; r < end; r++ {
			y[r] = math.Float64frombits(k.acc[r])
		}
	})

	return nil
}

// findRow returns the row owning entry index j: the r with
// RowPtr[r] <= j < RowPtr[r+1]. O(log R).
func findRow(rowPtr []int, j int) int {
	return sort.Search(len(rowPtr)-1, func(r int) bool { return rowPtr[r+1] > j })
}

// atomicAddFloat64 adds delta to the float64 stored in bits at addr,
// retrying the compare-and-swap until no concurrent update intervenes.
func atomicAddFloat64(addr *uint64, delta float64) {
	for {
		old := atomic.LoadUint64(addr)
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(addr, old, next) {
			return
		}
	}
}
