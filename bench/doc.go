// Package bench drives repeated, randomized-vector SpMV runs with
// wall-clock timing, immediate per-run reporting, and plain-text
// result persistence.
//
// # Session model
//
// Run builds a fresh x vector per run — uniform values in [0,1) from a
// deterministic seeded RNG — invokes the kernel, and records the
// elapsed wall-clock milliseconds (sub-millisecond resolution). The
// per-run hook fires immediately so callers can print timings as they
// happen; the full Series is returned at session end.
//
// # Results
//
// A Series can be summarized (min/max/mean/median/p90 via gonum stat),
// filtered to its best fraction (ascending sort, used by the
// sequential benchmark variant to drop warm-up outliers), and
// persisted with WriteFile: one float-milliseconds value per line with
// an optional comment header carrying a unique session id.
//
// An unwritable result sink yields ErrSink — callers are expected to
// log it and carry on, since every timing was already reported through
// the hook. Persistence is best-effort; measurement is not.
package bench
