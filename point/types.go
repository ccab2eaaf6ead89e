// SPDX-License-Identifier: MIT

package point

// Vector is a single point: one real coordinate per dimension.
type Vector []float64

// Dim returns the number of coordinates in v.
func (v Vector) Dim() int {
	return len(v)
}

// Set is an immutable, ordered collection of points sharing one dimension.
// Coordinates live in a single row-major buffer: point i occupies
// data[i*dim : (i+1)*dim].
type Set struct {
	data []float64
	n    int
	dim  int
}
