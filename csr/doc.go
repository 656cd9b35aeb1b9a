// SPDX-License-Identifier: MIT

// Package csr converts coordinate (triplet) matrices into compressed
// sparse row storage.
//
// # Layout
//
// A Matrix with R rows and N nonzeros holds:
//
//	RowPtr — length R+1, monotonically non-decreasing,
//	         RowPtr[0]=0, RowPtr[R]=N; row r owns the half-open
//	         segment [RowPtr[r], RowPtr[r+1]) of ColIdx and Val.
//	ColIdx — length N, column index per stored entry.
//	Val    — length N, value per stored entry.
//
// # Construction
//
// FromTriplets builds the RowPtr histogram in O(N+R), sorts the
// triplets stably by (row, col) in O(N log N), and scatters each
// triplet into its row segment with a per-row write cursor. The
// column tie-break makes output deterministic for any input order.
// Duplicate (row, col) pairs are NOT merged — both entries are kept,
// adjacent within their row segment.
//
// The result is immutable once built and safe for concurrent reads.
package csr
