// SPDX-License-Identifier: MIT

// Package sellcs converts CSR matrices into the SELL-C-σ (sliced
// ELLpack) format for vectorization-friendly, slice-parallel access.
//
// # Layout
//
// Rows are first reordered: within each contiguous window of σ rows
// (the last window may be shorter), rows are stably sorted by
// descending nonzero count. Grouping rows of similar sparsity
// minimizes padding waste while bounding the reordering distance to σ.
// The reordered rows are then cut into slices of C consecutive rows.
//
// Each slice s stores a perfect C×SliceLen[s] rectangle in column-major
// order: element k of the row at reordered position r lives at
//
//	SlicePtr[s] + k*C + (r - s*C)
//
// where SliceLen[s] is the maximum nonzero count among the slice's
// rows and SlicePtr is the prefix sum of SliceLen[s]*C. Rows shorter
// than SliceLen[s] are padded with column index 0 and value 0.0, so a
// kernel may traverse the rectangle unconditionally — padding
// contributes exactly zero.
//
// # Permutation tracking
//
// The sparsity-grouping reorder changes which logical row lives at
// each stored position. The builder records the mapping in Perm:
// Perm[r] is the original CSR row stored at reordered position r.
// Multiply kernels scatter through Perm so the output vector keeps
// original row identities and agrees with the CSR kernels exactly.
package sellcs
