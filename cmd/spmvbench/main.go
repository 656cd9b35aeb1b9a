// Command spmvbench benchmarks sparse matrix-vector multiplication
// under four parallelization strategies, one subcommand per kernel:
//
//	spmvbench sequential <matrix>              — single-threaded CSR
//	spmvbench rows       <matrix> [flags]      — row-parallel CSR
//	spmvbench atomic     <matrix> [flags]      — entry-parallel CSR
//	spmvbench sellcs     <matrix> [flags]      — slice-parallel SELL-C-σ
//
// Shared flags: -r runs, -t threads, -c chunk, -s schedule (rows and
// atomic: static|dynamic|guided|auto; sellcs: the σ sort window),
// -o result file. Per-run timings print immediately; the series is
// persisted at session end (best 90% for sequential, all runs
// otherwise). An unwritable result file is logged, never fatal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// sessionFlags carries the CLI surface shared by all variants.
type sessionFlags struct {
	runs     int
	threads  int
	schedule string // schedule name (rows/atomic) or sigma (sellcs)
	chunk    int
	out      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	flags := &sessionFlags{}

	root := &cobra.Command{
		Use:   "spmvbench",
		Short: "Benchmark sparse matrix-vector multiplication kernels",
		Long: `spmvbench loads a Matrix-Market-like sparse matrix, converts it to
CSR (and SELL-C-sigma for the sellcs variant), and times repeated
multiplications against randomized dense vectors.`,
		// Flag mistakes still print usage; runtime failures (below, on
		// the variant commands) do not.
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&flags.runs, "runs", "r", 10, "number of timed runs")
	pf.IntVarP(&flags.threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	pf.StringVarP(&flags.schedule, "schedule", "s", "",
		"schedule name (rows/atomic) or sigma sort window (sellcs)")
	pf.IntVarP(&flags.chunk, "chunk", "c", 0,
		"schedule chunk size (rows/atomic) or chunk height C (sellcs)")
	pf.StringVarP(&flags.out, "out", "o", "", "result file (default per variant)")

	for _, variant := range []string{variantSequential, variantRows, variantAtomic, variantSellCS} {
		root.AddCommand(newVariantCmd(variant, flags))
	}

	return root
}

func newVariantCmd(variant string, flags *sessionFlags) *cobra.Command {
	short := map[string]string{
		variantSequential: "Sequential CSR kernel (reference)",
		variantRows:       "Row-parallel CSR kernel",
		variantAtomic:     "Entry-parallel CSR kernel with atomic accumulation",
		variantSellCS:     "Slice-parallel SELL-C-sigma kernel",
	}[variant]

	return &cobra.Command{
		Use:          variant + " <matrix-file>",
		Short:        short,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(variant, args[0], flags)
		},
	}
}
