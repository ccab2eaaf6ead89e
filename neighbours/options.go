// SPDX-License-Identifier: MIT

package neighbours

import (
	"log/slog"
	"math"
)

const (
	panicCutoffInvalid  = "neighbours: WithCutoff: cutoff must be non-negative and not NaN"
	panicWorkersInvalid = "neighbours: WithWorkers: workers must be >= -1"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); Find itself never panics on user input.
type Option func(*Options)

// NewOptions starts from DefaultOptions and applies opts in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// WithCutoff sets the strict neighbour threshold.
func WithCutoff(cutoff float64) Option {
	if cutoff < 0 || math.IsNaN(cutoff) {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.Cutoff = cutoff }
}

// WithRadii sets the cutoff to r1 + r2, the contact distance of two spheres.
func WithRadii(r1, r2 float64) Option {
	cutoff, err := CutoffFromRadii(r1, r2)
	if err != nil {
		panic("neighbours: WithRadii: " + err.Error())
	}

	return func(o *Options) { o.Cutoff = cutoff }
}

// WithWorkers sets the outer-loop parallelism.
func WithWorkers(workers int) Option {
	if workers < AutoWorkers {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = workers }
}

// WithLogger sets the debug logger. nil restores the discarding default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// CutoffFromRadii returns r1 + r2.
// Returns ErrBadRadius if either radius is negative or NaN.
func CutoffFromRadii(r1, r2 float64) (float64, error) {
	if r1 < 0 || math.IsNaN(r1) || r2 < 0 || math.IsNaN(r2) {
		return 0, ErrBadRadius
	}

	return r1 + r2, nil
}
