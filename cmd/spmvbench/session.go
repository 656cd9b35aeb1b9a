package main

import (
	"fmt"
	"log"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/tebeka/atexit"
	"golang.org/x/sys/cpu"

	"github.com/gaecan04/PARCO-Computing-2026-244005/bench"
	"github.com/gaecan04/PARCO-Computing-2026-244005/csr"
	"github.com/gaecan04/PARCO-Computing-2026-244005/mmio"
	"github.com/gaecan04/PARCO-Computing-2026-244005/sellcs"
	"github.com/gaecan04/PARCO-Computing-2026-244005/spmv"
)

const (
	variantSequential = "sequential"
	variantRows       = "rows"
	variantAtomic     = "atomic"
	variantSellCS     = "sellcs"
)

// Result-file defaults follow the variant convention: the sequential
// benchmark keeps its best runs, the parallel ones keep everything.
const (
	defaultBestOut = "best_runs.txt"
	defaultAllOut  = "all_runs.txt"

	bestFraction = 0.9
)

var (
	runLabel = color.New(color.FgCyan).SprintfFunc()
	warnLine = color.New(color.FgYellow).SprintfFunc()
)

// runSession is the whole benchmark flow for one variant: load,
// convert, build the kernel, time the runs, persist the series.
// Configuration errors abort before any computation.
func runSession(variant, path string, flags *sessionFlags) error {
	kern, err := buildKernel(variant, path, flags)
	if err != nil {
		return err
	}
	atexit.Register(func() { _ = kern.Close() })
	defer kern.Close()

	printBanner(variant, flags)

	series, err := bench.Run(kern,
		bench.WithRuns(flags.runs),
		bench.WithOnRun(func(run int, ms float64) {
			fmt.Printf("%s: %.6f ms\n", runLabel("Run %d", run), ms)
		}),
	)
	if err != nil {
		return err
	}

	if sum, serr := series.Summarize(); serr == nil {
		fmt.Printf("min %.6f  mean %.6f  p50 %.6f  p90 %.6f  max %.6f (ms)\n",
			sum.MinMs, sum.MeanMs, sum.P50Ms, sum.P90Ms, sum.MaxMs)
	}

	persist(variant, kern.Name(), series, flags)

	return nil
}

// buildKernel loads the matrix and constructs the variant's kernel.
func buildKernel(variant, path string, flags *sessionFlags) (spmv.Kernel, error) {
	opts, err := kernelOptions(variant, flags)
	if err != nil {
		return nil, err
	}

	coord, err := mmio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := csr.FromCoordinate(coord)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %dx%d matrix, nnz=%d\n", a.Rows, a.Cols, a.NNZ())

	switch variant {
	case variantSequential:
		return spmv.NewSequential(a)
	case variantRows:
		return spmv.NewRowParallel(a, opts...)
	case variantAtomic:
		return spmv.NewAtomic(a, opts...)
	case variantSellCS:
		s, serr := sellcs.FromCSR(a, sellcsOptions(flags)...)
		if serr != nil {
			return nil, serr
		}
		return spmv.NewSliceParallel(s, spmv.WithThreads(flags.threads))
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

// kernelOptions maps the shared flags onto spmv options. For the
// sellcs variant -s and -c configure the format instead, so only the
// thread count passes through here.
func kernelOptions(variant string, flags *sessionFlags) ([]spmv.Option, error) {
	opts := []spmv.Option{spmv.WithThreads(flags.threads)}
	if variant == variantSequential || variant == variantSellCS {
		return opts, nil
	}

	if flags.schedule != "" {
		sched, err := spmv.ParseSchedule(flags.schedule)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spmv.WithSchedule(sched))
	}
	opts = append(opts, spmv.WithChunk(flags.chunk))

	return opts, nil
}

// sellcsOptions maps -c to the chunk height and -s to sigma.
func sellcsOptions(flags *sessionFlags) []sellcs.Option {
	var opts []sellcs.Option
	if flags.chunk > 0 {
		opts = append(opts, sellcs.WithChunk(flags.chunk))
	}
	if flags.schedule != "" {
		// For this variant -s carries the sigma sort window. A
		// non-integer falls through to WithSigma's validation.
		sigma, err := strconv.Atoi(flags.schedule)
		if err != nil {
			sigma = -1
		}
		opts = append(opts, sellcs.WithSigma(sigma))
	}
	return opts
}

// printBanner reports the machine and session configuration once.
func printBanner(variant string, flags *sessionFlags) {
	threads := flags.threads
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	fmt.Printf("kernel=%s threads=%d runs=%d avx2=%v avx512=%v\n",
		variant, threads, flags.runs, cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
}

// persist writes the series to the result file; sink failures are
// logged and swallowed so already-reported timings are never lost.
func persist(variant, kernelName string, series bench.Series, flags *sessionFlags) {
	out := flags.out
	toWrite := series

	if variant == variantSequential {
		if out == "" {
			out = defaultBestOut
		}
		best, err := series.Best(bestFraction)
		if err == nil {
			toWrite = best
		}
	} else if out == "" {
		out = defaultAllOut
	}

	if err := bench.WriteFile(out, toWrite, bench.Header(kernelName, len(series))); err != nil {
		log.Print(warnLine("results not persisted: %v", err))
		return
	}
	fmt.Printf("Saved %d timing(s) to %s\n", len(toWrite), out)
}
