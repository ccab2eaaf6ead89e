// SPDX-License-Identifier: MIT

package neighbours

import "errors"

// Every input error returned by Find and its variants matches ErrInvalidInput
// and, in addition, the specific sentinel below (or a point.Err* sentinel for
// shape problems). Match with errors.Is.
var (
	// ErrInvalidInput is the umbrella condition for rejected inputs.
	ErrInvalidInput = errors.New("neighbours: invalid input")

	// ErrNegativeCount indicates n < 0.
	ErrNegativeCount = errors.New("neighbours: point count must be non-negative")

	// ErrCountExceedsPositions indicates n > number of supplied positions.
	ErrCountExceedsPositions = errors.New("neighbours: point count exceeds supplied positions")

	// ErrBadCutoff indicates a negative or NaN cutoff.
	ErrBadCutoff = errors.New("neighbours: cutoff must be a non-negative number")

	// ErrBadRadius indicates a negative or NaN interaction radius.
	ErrBadRadius = errors.New("neighbours: radius must be a non-negative number")

	// ErrBadWorkers indicates Workers < AutoWorkers.
	ErrBadWorkers = errors.New("neighbours: workers must be >= -1")

	// ErrNilSet indicates a nil *point.Set passed to FindSet.
	ErrNilSet = errors.New("neighbours: position set is nil")

	// ErrInvalidMapping indicates a Mapping that breaks its invariants.
	ErrInvalidMapping = errors.New("neighbours: mapping violates invariants")
)
