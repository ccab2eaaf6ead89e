// SPDX-License-Identifier: MIT

// Package neighbours finds, for every point of a position set, all other
// points that lie strictly closer than a cutoff distance.
//
// What is a neighbour?
//
//	Point j is a neighbour of point i when i != j and the Euclidean distance
//	between them is strictly less than the cutoff. A point is never its own
//	neighbour, even though its distance to itself (0) is below any positive
//	cutoff. Two distinct points at identical coordinates are neighbours.
//
// Key features:
//   - all-pairs O(N²·D) search, no spatial index, no state between calls
//   - configurable cutoff (DefaultCutoff = 3.0, the sum of radii 1 and 2)
//   - ascending, never-nil neighbour lists for every index 0..n-1
//   - opt-in parallel outer loop (Options.Workers) with identical results
//   - InvalidInput reporting for bad counts, ragged or empty points, bad cutoffs
//
// Usage:
//
//	opts := neighbours.DefaultOptions()
//	opts.Cutoff = 2.5
//
//	nb, err := neighbours.Find(positions, len(positions), &opts)
//	if err != nil {
//	  // errors.Is(err, neighbours.ErrInvalidInput) holds for every input error
//	}
//	for _, p := range nb.Pairs() {
//	  interact(p.I, p.J)
//	}
//
// Floating-point note:
//
//	Distances are computed independently for (i,j) and (j,i). The kernel is
//	symmetric in exact arithmetic, and Mapping.Asymmetries reports any pair
//	for which rounding at the cutoff boundary broke that symmetry. Such pairs
//	are left as computed.
//
// Performance:
//
//   - Time:   O(N²·D)
//   - Memory: O(N·D) for the owned position copy + O(total neighbours) output
package neighbours
