// Package spmv implements four interchangeable sparse matrix-vector
// multiply kernels behind one Kernel interface.
//
// # Strategies
//
//   - NewSequential     — per-row dot products, single-threaded,
//     deterministic summation order; the reference kernel.
//   - NewRowParallel    — rows partitioned across a worker pool;
//     write-disjoint, no synchronization beyond the join barrier.
//   - NewAtomic         — parallel over nonzero entries; the owning
//     row is found by binary search over the row offsets and each
//     product is combined into y[row] with an atomic add.
//   - NewSliceParallel  — parallel over SELL-C-σ slices; each slice's
//     padded rectangle is traversed column-major and scattered through
//     the stored permutation.
//
// All four compute the same y = A·x. The parallel kernels agree with
// the sequential one within double-precision summation-order tolerance;
// the atomic kernel additionally gives up bit-reproducibility across
// thread counts, since its additions land in nondeterministic order.
//
// # Concurrency model
//
// Fork-join: a persistent goroutine pool executes a data-parallel loop
// body and the caller blocks at a barrier until every range finished.
// The Schedule option mirrors OpenMP's runtime schedules — Static
// (contiguous or round-robin chunks), Dynamic (fixed batches from a
// shared counter), Guided (shrinking batches), Auto (alias of Static).
// Scheduling affects load balance only, never the computed values.
// There is no cancellation: a Multiply call runs to completion.
//
// Configuration is explicit and per-kernel (WithThreads, WithSchedule,
// WithChunk); nothing is process-wide.
package spmv
