// Package bench: options, result types, and sentinel errors for the
// timing harness.
package bench

import (
	"errors"
	"fmt"
)

// Sentinel errors for harness execution and persistence.
var (
	// ErrNilKernel is returned when Run is given a nil kernel.
	ErrNilKernel = errors.New("bench: kernel is nil")

	// ErrKernel wraps a kernel failure during a timed run.
	ErrKernel = errors.New("bench: kernel multiply failed")

	// ErrSink indicates the result file could not be written. Timings
	// already reported through the run hook are unaffected.
	ErrSink = errors.New("bench: result sink unwritable")

	// ErrEmptySeries is returned when summarizing or filtering no runs.
	ErrEmptySeries = errors.New("bench: series is empty")

	// ErrBadFraction is returned for a keep-fraction outside (0, 1].
	ErrBadFraction = errors.New("bench: keep fraction out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bench: invalid option supplied")
)

// Series is the ordered per-run elapsed milliseconds of one session.
type Series []float64

// Summary condenses a Series into its usual reporting percentiles.
type Summary struct {
	Runs   int
	MinMs  float64
	MaxMs  float64
	MeanMs float64
	P50Ms  float64
	P90Ms  float64
}

// Option configures a timing session via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*runOptions)

type runOptions struct {
	runs  int
	seed  int64
	onRun func(run int, ms float64)

	// internal error recorded during option parsing
	err error
}

// defaultRunOptions: 10 runs, fixed default seed, no-op hook.
func defaultRunOptions() runOptions {
	return runOptions{
		runs:  10,
		seed:  0,
		onRun: func(int, float64) {},
	}
}

// WithRuns sets the number of timed multiplications. Must be positive.
func WithRuns(n int) Option {
	return func(o *runOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: runs must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.runs = n
	}
}

// WithSeed sets the RNG seed for the per-run x vectors.
// Seed 0 keeps the fixed default stream, so sessions are reproducible
// unless a caller opts into a different one.
func WithSeed(seed int64) Option {
	return func(o *runOptions) { o.seed = seed }
}

// WithOnRun registers a hook invoked immediately after each timed run
// with the 1-based run number and its elapsed milliseconds.
func WithOnRun(fn func(run int, ms float64)) Option {
	return func(o *runOptions) {
		if fn != nil {
			o.onRun = fn
		}
	}
}
