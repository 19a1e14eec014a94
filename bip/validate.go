// SPDX-License-Identifier: MIT

package bip

import "fmt"

// checkVector validates length and entry domain of an assignment
// ({0,1}) or, with allowUnset, of a fixed vector ({Unset,0,1}).
// Complexity: O(n).
func checkVector(method string, n int, x []int8, allowUnset bool) error {
	if len(x) != n {
		return fmt.Errorf("%s: len=%d, vars=%d: %w", method, len(x), n, ErrAssignmentLength)
	}
	for i, v := range x {
		if v == 0 || v == 1 || (allowUnset && v == Unset) {
			continue
		}

		return fmt.Errorf("%s: x[%d]=%d: %w", method, i, v, ErrInvalidValue)
	}

	return nil
}
