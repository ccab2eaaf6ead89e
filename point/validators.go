// SPDX-License-Identifier: MIT

package point

import "fmt"

// ValidateShape checks that every row of coords has the same, non-zero length.
// It returns that length, or 0 for an empty coords slice.
//
// Errors:
//   - ErrEmptyVector: some row has no coordinates.
//   - ErrDimensionMismatch: rows disagree on length.
//
// Complexity: O(N).
func ValidateShape(coords [][]float64) (int, error) {
	if len(coords) == 0 {
		return 0, nil
	}
	dim := len(coords[0])
	for i, row := range coords {
		if len(row) == 0 {
			return 0, fmt.Errorf("ValidateShape: point %d: %w", i, ErrEmptyVector)
		}
		if len(row) != dim {
			return 0, fmt.Errorf("ValidateShape: point %d has %d coordinates, want %d: %w",
				i, len(row), dim, ErrDimensionMismatch)
		}
	}

	return dim, nil
}
