// Package mmio reads sparse matrices from a Matrix-Market-like text
// format into an unordered coordinate (triplet) list.
//
// # Format
//
// The accepted stream looks like:
//
//	% any number of comment lines
//	% (first character is the comment marker, '%' by default)
//	rows cols nnz
//	row col value
//	row col value
//	...
//
// The header carries three positive integers; exactly nnz entry lines
// must follow, each holding two integers and one floating-point value,
// all whitespace-delimited.
//
// # Index base detection
//
// Files in the wild are written both 1-based (Matrix Market proper)
// and 0-based. After reading all entries, mmio applies a heuristic:
// if the maximum observed row equals the declared row count, or the
// maximum observed column equals the declared column count, every
// index is shifted down by one. The heuristic can misfire only on
// 0-based files that never touch their last row nor last column with
// an out-of-range index — such files would be rejected either way.
// After normalization every index must lie in [0,rows)×[0,cols), or
// Read fails with ErrIndexRange naming the offending entry.
//
// # Errors
//
//   - ErrBadHeader       — malformed header or non-positive counts
//   - ErrTruncated       — stream ends before nnz entries are read
//   - ErrBadEntry        — an entry line fails to parse
//   - ErrIndexRange      — an index is outside the declared shape
//   - ErrOptionViolation — an invalid Option was supplied
//
// All failures abort the load; no partial matrix is ever returned.
package mmio
