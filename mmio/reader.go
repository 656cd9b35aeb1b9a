package mmio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses a sparse matrix from r into coordinate form.
//
// Leading comment lines are skipped, the three-integer header is
// parsed, then exactly nnz entry lines. Index base is auto-detected
// and normalized to 0-based (see the package documentation), and all
// indices are validated against the declared shape.
//
// Returns ErrBadHeader, ErrTruncated, ErrBadEntry, ErrIndexRange, or
// ErrOptionViolation. On any error the partially read data is discarded.
func Read(r io.Reader, opts ...Option) (*Coordinate, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	header, ok := nextDataLine(sc, o.marker)
	if !ok {
		return nil, fmt.Errorf("%w: stream holds only comments or is empty", ErrBadHeader)
	}
	rows, cols, nnz, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	entries := make([]Triplet, 0, nnz)
	for i := 0; i < nnz; i++ {
		line, ok := nextDataLine(sc, o.marker)
		if !ok {
			return nil, fmt.Errorf("%w: got %d of %d entries", ErrTruncated, i, nnz)
		}
		t, err := parseEntry(line, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	normalizeBase(entries, rows, cols)
	if err := validateIndices(entries, rows, cols); err != nil {
		return nil, err
	}

	return &Coordinate{Rows: rows, Cols: cols, Entries: entries}, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// nextDataLine advances past comment and blank lines and returns the
// next payload line, or ok=false at end of stream.
func nextDataLine(sc *bufio.Scanner, marker byte) (string, bool) {
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if line[0] == marker {
			continue
		}

		return trimmed, true
	}

	return "", false
}

// parseHeader reads "rows cols nnz" and checks all three are positive.
func parseHeader(line string) (rows, cols, nnz int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want 3 integers, got %d fields in %q", ErrBadHeader, len(fields), line)
	}
	vals := make([]int, 3)
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: field %d (%q) is not an integer", ErrBadHeader, i+1, f)
		}
		if v <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: counts must be positive, got %d", ErrBadHeader, v)
		}
		vals[i] = v
	}

	return vals[0], vals[1], vals[2], nil
}

// parseEntry reads one "row col value" line. idx is the 0-based entry
// ordinal, reported 1-based in errors to match the file's line content.
func parseEntry(line string, idx int) (Triplet, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Triplet{}, fmt.Errorf("%w: entry %d: want 'row col value', got %q", ErrBadEntry, idx+1, line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: entry %d: row %q is not an integer", ErrBadEntry, idx+1, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: entry %d: col %q is not an integer", ErrBadEntry, idx+1, fields[1])
	}
	val, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Triplet{}, fmt.Errorf("%w: entry %d: value %q is not a float", ErrBadEntry, idx+1, fields[2])
	}

	return Triplet{Row: row, Col: col, Val: val}, nil
}

// normalizeBase shifts all indices down by one when the entries look
// 1-based: max observed row == declared rows, or max observed col ==
// declared cols. Heuristic, not proof; validateIndices runs after.
func normalizeBase(entries []Triplet, rows, cols int) {
	maxRow, maxCol := 0, 0
	for _, t := range entries {
		if t.Row > maxRow {
			maxRow = t.Row
		}
		if t.Col > maxCol {
			maxCol = t.Col
		}
	}
	if maxRow != rows && maxCol != cols {
		return
	}
	for i := range entries {
		entries[i].Row--
		entries[i].Col--
	}
}

// validateIndices checks every entry lies in [0,rows)×[0,cols).
func validateIndices(entries []Triplet, rows, cols int) error {
	for i, t := range entries {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return fmt.Errorf("%w: entry %d has (row=%d, col=%d), valid ranges row [0,%d), col [0,%d)",
				ErrIndexRange, i+1, t.Row, t.Col, rows, cols)
		}
	}

	return nil
}
