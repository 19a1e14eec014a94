// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No method panics on user-triggered errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Methods wrap
// the sentinel with call-site context, e.g. fmt.Errorf("Dense.At(%d,%d): %w"),
// so callers still match with errors.Is.

var (
	// ErrAllocation indicates that the backing buffer could not be obtained:
	// a dimension is < 1, or rows*cols overflows int or exceeds MaxCells.
	ErrAllocation = errors.New("matrix: unable to allocate backing storage")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// It is an ErrAllocation-class error: errors.Is matches both.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", ErrAllocation)

	// ErrShapeMismatch indicates that two matrices were expected to share
	// the same shape (e.g., Copy) but did not.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil or released *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil or released matrix")
)
