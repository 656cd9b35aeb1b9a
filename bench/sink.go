package bench

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/xid"
)

// Header builds the comment line written atop a result file: a unique
// session id plus the kernel name and run count, so result files can
// be told apart after the fact.
func Header(kernel string, runs int) string {
	return fmt.Sprintf("# session %s kernel=%s runs=%d", xid.New(), kernel, runs)
}

// WriteFile persists a Series to path: the optional header line first
// (pass "" to skip), then one float-milliseconds value per line.
//
// Any failure — create, write, or close — is reported as ErrSink.
// Callers treat it as non-fatal: the timings were already delivered
// through the run hook, only persistence is lost.
func WriteFile(path string, s Series, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}

	w := bufio.NewWriter(f)
	if header != "" {
		if _, err = fmt.Fprintln(w, header); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w: %v", ErrSink, err)
		}
	}
	for _, ms := range s {
		if _, err = fmt.Fprintf(w, "%.6f\n", ms); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w: %v", ErrSink, err)
		}
	}

	if err = w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}

	return nil
}
