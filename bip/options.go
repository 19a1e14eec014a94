// SPDX-License-Identifier: MIT

package bip

import (
	"fmt"
	"time"
)

// Options configures Solve. The zero value is valid and equals DefaultOptions.
type Options struct {
	// Algo selects the solver (default ImplicitEnumeration).
	Algo Algorithm

	// Bound selects the bound-pruning policy of ImplicitEnumeration
	// (default ObjectiveBound). NoBound is for testing only.
	Bound BoundPolicy

	// TimeLimit is a soft wall-clock budget; 0 means unlimited. The deadline
	// is checked every 4096 nodes, so overshoot is bounded by that many nodes.
	TimeLimit time.Duration

	// Listener receives node events; nil means NopListener.
	// Ignored by Exhaustive.
	Listener NodeListener
}

// DefaultOptions returns the deterministic defaults: ImplicitEnumeration,
// ObjectiveBound, no time limit, no listener.
func DefaultOptions() Options {
	return Options{
		Algo:     ImplicitEnumeration,
		Bound:    ObjectiveBound,
		Listener: NopListener{},
	}
}

// validateOptions checks Options without referencing the Problem.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit=%s: %w", opts.TimeLimit, ErrInvalidOptions)
	}
	switch opts.Algo {
	case ImplicitEnumeration, Exhaustive:
	default:
		return fmt.Errorf("%s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
	switch opts.Bound {
	case ObjectiveBound, NoBound:
	default:
		return fmt.Errorf("BoundPolicy(%d): %w", int(opts.Bound), ErrUnsupportedAlgorithm)
	}

	return nil
}
