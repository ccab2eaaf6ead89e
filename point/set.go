// SPDX-License-Identifier: MIT

package point

import "fmt"

// NewSet builds a Set from coords, one row per point.
// The input is deep-copied; later changes to coords do not affect the Set.
// An empty coords slice yields an empty Set with Dim() == 0.
//
// Returns ErrEmptyVector if any point has no coordinates,
// ErrDimensionMismatch if points differ in length.
// Complexity: O(N·D) time and memory.
func NewSet(coords [][]float64) (*Set, error) {
	dim, err := ValidateShape(coords)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, len(coords)*dim)
	for _, row := range coords {
		data = append(data, row...)
	}

	return &Set{data: data, n: len(coords), dim: dim}, nil
}

// Len returns the number of points in the set.
func (s *Set) Len() int {
	return s.n
}

// Dim returns the shared dimensionality of the points (0 for an empty set).
func (s *Set) Dim() int {
	return s.dim
}

// At returns a copy of point i.
// Returns ErrOutOfRange if i is not in [0, Len()).
func (s *Set) At(i int) (Vector, error) {
	if i < 0 || i >= s.n {
		return nil, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}
	v := make(Vector, s.dim)
	copy(v, s.row(i))

	return v, nil
}

// Distance returns the Euclidean distance between points i and j.
// Indices are not checked; callers iterate over [0, Len()).
// Complexity: O(D), no allocation.
func (s *Set) Distance(i, j int) float64 {
	return Euclidean(s.row(i), s.row(j))
}

// row returns the backing slice of point i without copying.
func (s *Set) row(i int) []float64 {
	off := i * s.dim

	return s.data[off : off+s.dim : off+s.dim]
}
