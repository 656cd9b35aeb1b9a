package bench

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/gaecan04/PARCO-Computing-2026-244005/spmv"
)

// Run executes a timing session over k: for each run, fill a fresh x
// with uniform [0,1) values, time one Multiply, record the elapsed
// milliseconds, and fire the per-run hook. The kernel's configuration
// (threads, schedule, chunk) was fixed at construction; the session
// only drives it.
//
// Returns the full Series, or ErrNilKernel / ErrOptionViolation /
// ErrKernel. On a kernel failure the session aborts; runs completed so
// far are discarded (failures are deterministic, a partial series
// would only mislead).
func Run(k spmv.Kernel, opts ...Option) (Series, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rng := rngFromSeed(o.seed)
	x := make([]float64, k.Cols())
	y := make([]float64, k.Rows())
	series := make(Series, 0, o.runs)

	for run := 1; run <= o.runs; run++ {
		fillUniform(x, rng)

		start := time.Now()
		err := k.Multiply(x, y)
		elapsed := time.Since(start)

		if err != nil {
			return nil, fmt.Errorf("%w: run %d: %v", ErrKernel, run, err)
		}
		ms := float64(elapsed) / float64(time.Millisecond)
		series = append(series, ms)
		o.onRun(run, ms)
	}

	return series, nil
}

// Best returns the fastest ⌊frac·len⌋ runs (at least one), sorted
// ascending. The receiver is unchanged. Returns ErrEmptySeries or
// ErrBadFraction.
func (s Series) Best(frac float64) (Series, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if frac <= 0 || frac > 1 {
		return nil, fmt.Errorf("%w: %v not in (0,1]", ErrBadFraction, frac)
	}

	sorted := make(Series, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	keep := max(int(frac*float64(len(s))), 1)

	return sorted[:keep], nil
}

// Summarize computes the session percentiles. Returns ErrEmptySeries
// on an empty series.
func (s Series) Summarize() (Summary, error) {
	if len(s) == 0 {
		return Summary{}, ErrEmptySeries
	}

	sorted := make([]float64, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	return Summary{
		Runs:   len(s),
		MinMs:  sorted[0],
		MaxMs:  sorted[len(sorted)-1],
		MeanMs: stat.Mean(sorted, nil),
		P50Ms:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90Ms:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}, nil
}
