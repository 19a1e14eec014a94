// SPDX-License-Identifier: MIT
// Package bip: sentinel error set.
// Construction and mutation return these sentinels (optionally wrapped with
// call-site context); callers match with errors.Is. The search itself never
// fails on a validly constructed Problem; only interruption is reported.

package bip

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbip/matrix"
)

var (
	// ErrInvalidDimensions is returned by New when numVars < 1 or numRest < 0.
	ErrInvalidDimensions = errors.New("bip: invalid dimensions")

	// ErrAllocation aliases matrix.ErrAllocation so errors.Is matches the
	// same condition whichever package raised it.
	ErrAllocation = matrix.ErrAllocation

	// ErrShapeMismatch aliases matrix.ErrShapeMismatch.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrInvalidRelation is returned for a restriction type outside {EQ, LE, GE}.
	// It is an ErrInvalidDimensions-class error: errors.Is matches both.
	ErrInvalidRelation = fmt.Errorf("bip: invalid restriction relation: %w", ErrInvalidDimensions)

	// ErrCoefficientCount is returned when a coefficient vector's length
	// differs from the number of variables.
	ErrCoefficientCount = fmt.Errorf("bip: coefficient count mismatch: %w", ErrInvalidDimensions)

	// ErrOutOfRange indicates a variable or restriction index outside bounds.
	ErrOutOfRange = errors.New("bip: index out of range")

	// ErrNilProblem indicates that a nil *Problem was passed.
	ErrNilProblem = errors.New("bip: nil problem")

	// ErrReleased indicates use of a Problem after Release.
	ErrReleased = errors.New("bip: problem released")

	// ErrInvalidOptions indicates meaningless solver options (e.g., negative TimeLimit).
	ErrInvalidOptions = errors.New("bip: invalid options")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm or BoundPolicy.
	ErrUnsupportedAlgorithm = errors.New("bip: unsupported algorithm")

	// ErrTooLarge is returned by the exhaustive solver above MaxExhaustiveVars.
	ErrTooLarge = errors.New("bip: instance too large for exhaustive enumeration")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before the
	// search completes. The accompanying Report holds the best incumbent so far.
	ErrTimeLimit = errors.New("bip: time limit exceeded")

	// ErrAssignmentLength indicates an assignment/fixed vector whose length
	// differs from the number of variables.
	ErrAssignmentLength = errors.New("bip: assignment length mismatch")

	// ErrInvalidValue indicates an assignment entry outside {0,1}
	// (or outside {Unset,0,1} for a fixed vector).
	ErrInvalidValue = errors.New("bip: invalid variable value")
)
