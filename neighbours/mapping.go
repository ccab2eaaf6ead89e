// SPDX-License-Identifier: MIT

package neighbours

import (
	"fmt"
	"slices"
	"sort"
)

// Len returns the number of indexed points.
func (m Mapping) Len() int {
	return len(m)
}

// Degree returns the number of neighbours of i (0 if i is not a key).
func (m Mapping) Degree(i int) int {
	return len(m[i])
}

// Contains reports whether j is listed as a neighbour of i.
// Complexity: O(log Degree(i)).
func (m Mapping) Contains(i, j int) bool {
	_, found := slices.BinarySearch(m[i], j)

	return found
}

// Pairs returns every relation {i, j} with i < j and j in m[i], ordered by
// I then J. Each interaction appears once, as seen from its lower index.
// Complexity: O(n log n + total neighbours).
func (m Mapping) Pairs() []Pair {
	pairs := make([]Pair, 0)
	for _, i := range m.keys() {
		for _, j := range m[i] {
			if j > i {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}

	return pairs
}

// Asymmetries returns every {i, j} (i < j) listed in one direction only.
// In exact arithmetic the relation is symmetric; entries here are rounding
// artifacts at the cutoff boundary and are reported, not repaired.
func (m Mapping) Asymmetries() []Pair {
	out := make([]Pair, 0)
	for _, i := range m.keys() {
		for _, j := range m[i] {
			if !m.Contains(j, i) {
				out = append(out, Pair{I: min(i, j), J: max(i, j)})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})

	return out
}

// Validate checks that m is a well-formed mapping over n points:
// keys are exactly 0..n-1, every list is non-nil, strictly ascending,
// within [0, n) and free of its own key.
// Returns nil or an error wrapping ErrInvalidMapping.
func (m Mapping) Validate(n int) error {
	if len(m) != n {
		return fmt.Errorf("Validate: %d keys, want %d: %w", len(m), n, ErrInvalidMapping)
	}
	for i := 0; i < n; i++ {
		row, ok := m[i]
		if !ok {
			return fmt.Errorf("Validate: missing key %d: %w", i, ErrInvalidMapping)
		}
		if row == nil {
			return fmt.Errorf("Validate: key %d has nil list: %w", i, ErrInvalidMapping)
		}
		prev := -1
		for _, j := range row {
			switch {
			case j == i:
				return fmt.Errorf("Validate: %d lists itself: %w", i, ErrInvalidMapping)
			case j < 0 || j >= n:
				return fmt.Errorf("Validate: %d lists %d outside [0,%d): %w", i, j, n, ErrInvalidMapping)
			case j <= prev:
				return fmt.Errorf("Validate: list of %d not strictly ascending at %d: %w", i, j, ErrInvalidMapping)
			}
			prev = j
		}
	}

	return nil
}

// keys returns the mapping's keys in ascending order.
func (m Mapping) keys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
