// SPDX-License-Identifier: MIT

package point

import "errors"

var (
	// ErrEmptyVector indicates a point with zero coordinates.
	ErrEmptyVector = errors.New("point: vector must have at least one coordinate")

	// ErrDimensionMismatch indicates points of differing dimensionality.
	ErrDimensionMismatch = errors.New("point: all points must have the same dimension")

	// ErrOutOfRange indicates a point index outside [0, Len()).
	ErrOutOfRange = errors.New("point: index out of range")
)
