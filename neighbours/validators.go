// SPDX-License-Identifier: MIT

package neighbours

import (
	"fmt"
	"math"
)

// invalidf tags err with the calling validator and joins it to ErrInvalidInput.
func invalidf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, err)
}

// validateCount checks 0 <= n <= available.
func validateCount(n, available int) error {
	if n < 0 {
		return invalidf(fmt.Sprintf("n=%d", n), ErrNegativeCount)
	}
	if n > available {
		return invalidf(fmt.Sprintf("n=%d, positions=%d", n, available), ErrCountExceedsPositions)
	}

	return nil
}

// validateOptions checks Cutoff and Workers.
func validateOptions(o *Options) error {
	if o.Cutoff < 0 || math.IsNaN(o.Cutoff) {
		return invalidf(fmt.Sprintf("cutoff=%v", o.Cutoff), ErrBadCutoff)
	}
	if o.Workers < AutoWorkers {
		return invalidf(fmt.Sprintf("workers=%d", o.Workers), ErrBadWorkers)
	}

	return nil
}
