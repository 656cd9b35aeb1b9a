// Package spmv defines the kernel interface, scheduling options, and
// sentinel errors for sparse matrix-vector multiplication.
package spmv

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for kernel construction and invocation.
var (
	// ErrNilMatrix is returned when a kernel is built over a nil matrix.
	ErrNilMatrix = errors.New("spmv: matrix is nil")

	// ErrDimensionMismatch indicates x or y does not match the matrix shape.
	ErrDimensionMismatch = errors.New("spmv: vector dimension mismatch")

	// ErrBadSchedule is returned by ParseSchedule for unknown names.
	ErrBadSchedule = errors.New("spmv: unknown schedule")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spmv: invalid option supplied")
)

// Schedule selects how parallel loop iterations are handed to workers.
// It tunes load balance only; every schedule computes the same result.
type Schedule int

const (
	// Static splits the iteration space into contiguous equal ranges,
	// one per worker (with a chunk size: fixed chunks dealt round-robin).
	Static Schedule = iota

	// Dynamic hands out fixed-size batches (Chunk, default 1) from a
	// shared counter; workers grab the next batch as they finish.
	Dynamic

	// Guided hands out geometrically shrinking batches — large up
	// front, never smaller than Chunk — from a shared counter.
	Guided

	// Auto leaves the choice to the runtime; this implementation maps
	// it to Static.
	Auto
)

// scheduleNames doubles as the ParseSchedule lookup and String table.
var scheduleNames = map[Schedule]string{
	Static:  "static",
	Dynamic: "dynamic",
	Guided:  "guided",
	Auto:    "auto",
}

// String returns the lower-case schedule name.
func (s Schedule) String() string {
	if n, ok := scheduleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("schedule(%d)", int(s))
}

// ParseSchedule maps a (case-insensitive) name to a Schedule.
// Returns ErrBadSchedule for anything outside static|dynamic|guided|auto.
func ParseSchedule(name string) (Schedule, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for s, n := range scheduleNames {
		if n == want {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want static|dynamic|guided|auto)", ErrBadSchedule, name)
}

// Option configures a parallel kernel via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the kernel constructor.
type Option func(*Options)

// Options holds the explicit per-kernel runtime configuration.
// There is deliberately no process-wide equivalent: every kernel
// carries its own copy, so two kernels with different thread counts
// can coexist in one process.
type Options struct {
	// Threads is the worker count; 0 means GOMAXPROCS.
	Threads int

	// Schedule picks the iteration-partitioning policy.
	Schedule Schedule

	// Chunk is the schedule's batch size; 0 means the schedule default
	// (equal split for Static, 1 for Dynamic, shrink floor 1 for Guided).
	Chunk int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the kernel defaults: GOMAXPROCS workers,
// Guided schedule, schedule-default chunk.
func DefaultOptions() Options {
	return Options{Threads: 0, Schedule: Guided, Chunk: 0}
}

// WithThreads sets the worker count. 0 keeps the GOMAXPROCS default;
// negative counts are invalid.
func WithThreads(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: threads cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Threads = n
	}
}

// WithSchedule sets the partitioning policy.
func WithSchedule(s Schedule) Option {
	return func(o *Options) {
		if _, ok := scheduleNames[s]; !ok {
			o.err = fmt.Errorf("%w: %v", ErrBadSchedule, s)
			return
		}
		o.Schedule = s
	}
}

// WithChunk sets the schedule batch size. 0 keeps the schedule
// default; negative sizes are invalid.
func WithChunk(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: chunk cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Chunk = c
	}
}

// Kernel is one multiply strategy over a fixed sparse matrix.
//
// Multiply computes y = A·x; len(x) must equal Cols() and len(y)
// Rows(), or ErrDimensionMismatch is returned. The matrix is read-only
// and shared; x is read-only per call; y is overwritten. A Kernel is
// not safe for concurrent Multiply calls on itself.
//
// Close releases the kernel's worker pool. A closed kernel falls back
// to sequential execution rather than failing.
type Kernel interface {
	Name() string
	Rows() int
	Cols() int
	Multiply(x, y []float64) error
	Close() error
}

// checkDims validates vector lengths against a kernel's shape.
func checkDims(rows, cols int, x, y []float64) error {
	if len(x) != cols {
		return fmt.Errorf("%w: len(x)=%d, want %d", ErrDimensionMismatch, len(x), cols)
	}
	if len(y) != rows {
		return fmt.Errorf("%w: len(y)=%d, want %d", ErrDimensionMismatch, len(y), rows)
	}

	return nil
}

// gatherOptions applies opts over the defaults and surfaces any
// recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
