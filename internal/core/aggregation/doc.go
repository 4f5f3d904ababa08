// Package aggregation turns a flat set of transactions into the derived figures the
// dashboards show: period totals, balance, budget utilization, a trailing daily series
// and per-category net totals.
//
// Every function is a pure computation over caller-supplied data. Nothing here performs
// I/O or holds state, so concurrent callers need no coordination. The only error the
// package returns is apperrors.ErrInvalidConfig; empty or partial inputs produce zero
// values instead.
package aggregation
