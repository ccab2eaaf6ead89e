// SPDX-License-Identifier: MIT

package neighbours

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/proxima/point"
	"golang.org/x/sync/errgroup"
)

// Find returns the neighbour mapping of the first n points of positions.
//
// Algorithm:
//  1. Validate n, the options, and the shape of positions[:n].
//  2. Copy positions[:n] into an owned point.Set.
//  3. For each i in 0..n-1, measure the distance from i to every j in 0..n-1
//     (symmetry is not exploited), keep j when distance < Cutoff and j != i.
//  4. Store the kept indices, ascending, as m[i].
//
// Points beyond n are ignored and not validated. n == 0 yields an empty,
// non-nil Mapping. opts == nil means DefaultOptions().
//
// Errors (all match ErrInvalidInput):
//   - ErrNegativeCount, ErrCountExceedsPositions: bad n.
//   - point.ErrEmptyVector, point.ErrDimensionMismatch: bad shape.
//   - ErrBadCutoff, ErrBadWorkers: bad options.
//
// Complexity: O(n²·D) time, O(n·D + output) memory.
func Find(positions [][]float64, n int, opts *Options) (Mapping, error) {
	return FindContext(context.Background(), positions, n, opts)
}

// FindContext is Find with cancellation checked between rows.
// On cancellation it returns ctx.Err() and no mapping.
func FindContext(ctx context.Context, positions [][]float64, n int, opts *Options) (Mapping, error) {
	o := resolve(opts)
	log := loggerOf(o)
	if err := validateCount(n, len(positions)); err != nil {
		log.Debug("neighbour search rejected", "error", err)
		return nil, err
	}
	set, err := point.NewSet(positions[:n])
	if err != nil {
		err = invalidf("positions", err)
		log.Debug("neighbour search rejected", "error", err)
		return nil, err
	}

	return search(ctx, set, n, o, log)
}

// FindSet is Find over an already validated position set.
// Only the first n points of set take part.
func FindSet(set *point.Set, n int, opts *Options) (Mapping, error) {
	return FindSetContext(context.Background(), set, n, opts)
}

// FindSetContext is FindSet with cancellation checked between rows.
func FindSetContext(ctx context.Context, set *point.Set, n int, opts *Options) (Mapping, error) {
	o := resolve(opts)
	log := loggerOf(o)
	if set == nil {
		err := invalidf("FindSet", ErrNilSet)
		log.Debug("neighbour search rejected", "error", err)
		return nil, err
	}
	if err := validateCount(n, set.Len()); err != nil {
		log.Debug("neighbour search rejected", "error", err)
		return nil, err
	}

	return search(ctx, set, n, o, log)
}

// search validates options and runs the row loop, sequentially or fanned out.
func search(ctx context.Context, set *point.Set, n int, o Options, log *slog.Logger) (Mapping, error) {
	if err := validateOptions(&o); err != nil {
		log.Debug("neighbour search rejected", "error", err)
		return nil, err
	}

	rows := make([][]int, n)
	workers := effectiveWorkers(o.Workers, n)
	var err error
	if workers <= 1 {
		err = fillRows(ctx, set, n, o.Cutoff, rows, 0, n)
	} else {
		err = fillRowsParallel(ctx, set, n, o.Cutoff, rows, workers)
	}
	if err != nil {
		return nil, err
	}

	m := make(Mapping, n)
	links := 0
	for i, row := range rows {
		m[i] = row
		links += len(row)
	}
	log.Debug("neighbour search completed",
		"n", n,
		"dim", set.Dim(),
		"cutoff", o.Cutoff,
		"workers", workers,
		"links", links,
	)

	return m, nil
}

// fillRows computes rows[lo:hi].
func fillRows(ctx context.Context, set *point.Set, n int, cutoff float64, rows [][]int, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows[i] = neighbourRow(set, n, i, cutoff)
	}

	return nil
}

// fillRowsParallel splits [0,n) into contiguous chunks, one goroutine each,
// at most workers running at once. Each goroutine writes only its own rows.
func fillRowsParallel(ctx context.Context, set *point.Set, n int, cutoff float64, rows [][]int, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo // per-iteration copy (pre-Go 1.22 loop semantics)
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fillRows(gctx, set, n, cutoff, rows, lo, hi)
		})
	}

	return g.Wait()
}

// neighbourRow returns, ascending, every j in [0,n) with j != i and
// distance(i,j) < cutoff. The result is never nil.
func neighbourRow(set *point.Set, n, i int, cutoff float64) []int {
	row := make([]int, 0)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if set.Distance(i, j) < cutoff {
			row = append(row, j)
		}
	}

	return row
}

// effectiveWorkers resolves AutoWorkers and never exceeds n.
func effectiveWorkers(workers, n int) int {
	if workers == AutoWorkers {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	return workers
}

// resolve returns a copy of opts, or the defaults when opts is nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// loggerOf returns o.Logger or a logger that discards everything.
func loggerOf(o Options) *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
