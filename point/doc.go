// SPDX-License-Identifier: MIT

// Package point stores the positions consumed by proxima's neighbour search.
//
// What is a position set?
//
//	An ordered sequence of N points, each a vector of D real coordinates.
//	The index of a point (0..N-1) is its only identity. D is fixed for the
//	whole set and checked once, when the set is built, so no distance
//	computation can ever run over vectors of different length.
//
// Key features:
//   - Set: owned, read-only, row-major buffer (one allocation for N·D values)
//   - NewSet: deep copy + shape validation (ErrEmptyVector, ErrDimensionMismatch)
//   - Euclidean / SquaredEuclidean: explicit distance kernels for float32 and float64
//
// Usage:
//
//	set, err := point.NewSet([][]float64{{0, 0}, {3, 4}})
//	if err != nil {
//	  // handle ErrEmptyVector or ErrDimensionMismatch
//	}
//	d := set.Distance(0, 1) // 5
//
// Performance:
//
//   - NewSet:   O(N·D) time, O(N·D) memory
//   - Distance: O(D), no allocation
package point
