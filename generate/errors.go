// SPDX-License-Identifier: MIT
// Package: lvbip/generate
//
// errors.go - sentinel errors for the generate package.
//
// Callers branch with errors.Is; generators attach context with %w.
// Option constructors (WithX) panic on meaningless inputs instead.

package generate

import "errors"

// ErrTooSmall indicates a size parameter (variables, restrictions, batch
// size, universe) below its allowed minimum.
var ErrTooSmall = errors.New("generate: parameter too small")

// ErrInvalidProbability indicates a density outside [0,1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates a stochastic generator called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrDimensionMismatch indicates inconsistent input slices (e.g., values
// and weights of different length, or a set element outside the universe).
var ErrDimensionMismatch = errors.New("generate: dimension mismatch")
