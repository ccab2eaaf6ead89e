// SPDX-License-Identifier: MIT

package neighbours

import "log/slog"

const (
	// DefaultCutoff is the reference interaction distance: radii 1 + 2.
	DefaultCutoff = 3.0

	// DefaultWorkers runs the search sequentially.
	DefaultWorkers = 1

	// AutoWorkers sizes the worker pool to runtime.GOMAXPROCS(0).
	AutoWorkers = -1
)

// Options configures Find.
//
// Fields:
//   - Cutoff: strict distance threshold; pairs at exactly Cutoff are not
//     neighbours. Must be >= 0 and not NaN. +Inf links every finite pair.
//   - Workers: 0 or 1 run sequentially; >1 splits the outer loop across that
//     many goroutines; AutoWorkers uses GOMAXPROCS. Results never depend on it.
//   - Logger: receives one Debug record per call. nil discards.
//
// Example:
//
//	opts := neighbours.Options{Cutoff: 1.5, Workers: neighbours.AutoWorkers}
//	nb, err := neighbours.Find(positions, n, &opts)
type Options struct {
	Cutoff  float64
	Workers int
	Logger  *slog.Logger
}

// DefaultOptions returns Options with Cutoff=DefaultCutoff,
// Workers=DefaultWorkers and no logger.
func DefaultOptions() Options {
	return Options{
		Cutoff:  DefaultCutoff,
		Workers: DefaultWorkers,
	}
}

// Mapping maps each point index 0..n-1 to the ascending indices of its
// neighbours. Every key is present; a point without neighbours maps to an
// empty, non-nil slice.
type Mapping map[int][]int

// Pair is an unordered neighbour relation, stored with I < J.
type Pair struct {
	I, J int
}
