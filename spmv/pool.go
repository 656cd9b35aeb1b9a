package spmv

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// pool is a persistent fork-join worker pool. Workers are spawned once
// and reused across Multiply calls; each parallelFor blocks at a
// WaitGroup barrier until every iteration has completed, mirroring the
// implicit barrier of an OpenMP parallel-for region.
type pool struct {
	workers   int
	workC     chan poolTask
	closeOnce sync.Once
	closed    atomic.Bool
}

// poolTask is one worker-sized unit of a parallel loop.
type poolTask struct {
	fn      func()
	barrier *sync.WaitGroup
}

// newPool spawns a pool with n persistent workers; n<=0 means GOMAXPROCS.
func newPool(n int) *pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &pool{
		workers: n,
		workC:   make(chan poolTask, n),
	}
	for i := 0; i < n; i++ {
		go p.worker()
	}

	return p
}

func (p *pool) worker() {
	for task := range p.workC {
		task.fn()
		task.barrier.Done()
	}
}

// close shuts the pool down; in-flight work completes. Safe to call twice.
func (p *pool) close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor executes fn over [0, n) partitioned per sched and chunk,
// and returns only after all iterations finished. fn receives
// half-open [start, end) ranges; ranges are disjoint and cover [0, n)
// exactly once. Iteration order across workers is unspecified.
//
// A closed (or single-worker, or tiny-n) pool degrades to a plain
// sequential call; the computed result is identical either way.
func (p *pool) parallelFor(n int, sched Schedule, chunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	switch sched {
	case Dynamic:
		p.dynamicFor(n, workers, max(chunk, 1), fn)
	case Guided:
		p.guidedFor(n, workers, max(chunk, 1), fn)
	default: // Static and Auto
		p.staticFor(n, workers, chunk, fn)
	}
}

// staticFor deals the iteration space up front: equal contiguous
// ranges when chunk==0, fixed chunks round-robin otherwise.
func (p *pool) staticFor(n, workers, chunk int, fn func(start, end int)) {
	var wg sync.WaitGroup
	wg.Add(workers)

	if chunk <= 0 {
		span := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * span
			end := min(start+span, n)
			if start >= n {
				wg.Done()
				continue
			}
			p.workC <- poolTask{fn: func() { fn(start, end) }, barrier: &wg}
		}
		wg.Wait()
		return
	}

	for w := 0; w < workers; w++ {
		first := w * chunk
		p.workC <- poolTask{fn: func() {
			for start := first; start < n; start += workers * chunk {
				fn(start, min(start+chunk, n))
			}
		}, barrier: &wg}
	}
	wg.Wait()
}

// dynamicFor hands out fixed-size batches from a shared counter.
func (p *pool) dynamicFor(n, workers, chunk int, fn func(start, end int)) {
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- poolTask{fn: func() {
			for {
				start := int(next.Add(int64(chunk))) - chunk
				if start >= n {
					return
				}
				fn(start, min(start+chunk, n))
			}
		}, barrier: &wg}
	}
	wg.Wait()
}

// guidedFor hands out geometrically shrinking batches: each grab takes
// remaining/workers iterations, never fewer than chunk.
func (p *pool) guidedFor(n, workers, chunk int, fn func(start, end int)) {
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- poolTask{fn: func() {
			for {
				start := int(next.Load())
				if start >= n {
					return
				}
				size := max((n-start)/workers, chunk)
				if !next.CompareAndSwap(int64(start), int64(start+size)) {
					continue // lost the race, re-read the counter
				}
				fn(start, min(start+size, n))
			}
		}, barrier: &wg}
	}
	wg.Wait()
}
