// SPDX-License-Identifier: MIT

package point

import (
	"math"

	"golang.org/x/exp/constraints"
)

// SquaredEuclidean returns Σ(a[k]-b[k])², accumulated in float64.
// Assumes len(a) == len(b) (caller's responsibility).
// Complexity: O(D).
func SquaredEuclidean[T constraints.Float](a, b []T) float64 {
	var sum float64
	for k := range a {
		d := float64(a[k]) - float64(b[k])
		sum += d * d
	}

	return sum
}

// Euclidean returns the L2 distance between a and b.
// Assumes len(a) == len(b) (caller's responsibility).
// Complexity: O(D).
func Euclidean[T constraints.Float](a, b []T) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}
