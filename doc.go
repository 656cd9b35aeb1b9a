// Package spmvbench is a benchmark suite for sparse matrix-vector
// multiplication (SpMV) under several parallelization strategies.
//
// 🚀 What is spmvbench?
//
//	A small, deterministic library plus CLI that brings together:
//		• Loading: Matrix-Market-like text files into coordinate form
//		• Formats: CSR (compressed sparse row) and SELL-C-σ (sliced ELLpack)
//		• Kernels: sequential, row-parallel, entry-parallel atomic,
//		  and slice-parallel SELL-C-σ multiplication
//		• Timing: reproducible randomized-vector runs with per-run
//		  wall-clock reporting and percentile summaries
//
// ✨ Why?
//
//   - Deterministic by construction — seeded RNG, stable sorts, no globals
//   - Explicit configuration — thread count, schedule and chunk are
//     plain options passed into each kernel, never process-wide state
//   - Pure Go fork-join parallelism — goroutine pool with a barrier,
//     mirroring OpenMP static/dynamic/guided scheduling
//
// Everything is organized in five subpackages:
//
//	mmio/   — text-format loader producing (row, col, value) triplets
//	csr/    — triplets → compressed sparse row conversion
//	sellcs/ — CSR → SELL-C-σ conversion with permutation tracking
//	spmv/   — the four multiply kernels behind one Kernel interface
//	bench/  — the timing harness and result persistence
//
// The cmd/spmvbench binary wires them into the benchmark CLI:
//
//	spmvbench rows matrix.mtx -r 20 -t 8 -s guided -c 16
//
// See DESIGN.md for the format contracts and scheduling details.
package spmvbench
