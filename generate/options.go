// SPDX-License-Identifier: MIT
// Package: lvbip/generate
//
// options.go - functional options and the resolved configuration.
//
// Deterministic defaults:
//   - rng         = nil (stochastic generators require WithSeed/WithRand)
//   - coefficient = [-9, 9]
//   - density     = 1.0 (dense rows)
//   - relations   = {LE}
//   - sense       = maximize

package generate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvbip/bip"
)

const (
	defaultCoeffLo = int64(-9)
	defaultCoeffHi = int64(9)
	defaultDensity = 1.0
	probMin        = 0.0
	probMax        = 1.0
)

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// config is the single source of truth for generator knobs.
type config struct {
	rng       *rand.Rand
	lo, hi    int64
	density   float64
	relations []bip.Relation
	maximize  bool
}

// newConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		lo:        defaultCoeffLo,
		hi:        defaultCoeffHi,
		density:   defaultDensity,
		relations: []bip.Relation{bip.LE},
		maximize:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a fresh deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
// A *rand.Rand is not goroutine-safe; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithCoefficientRange sets the closed interval coefficients are drawn from.
// Panics if lo > hi or if the interval holds more than math.MaxInt64 values.
func WithCoefficientRange(lo, hi int64) Option {
	if lo > hi {
		panic(fmt.Sprintf("generate: WithCoefficientRange(%d > %d)", lo, hi))
	}
	// hi >= lo, so the unsigned difference is exact.
	if uint64(hi)-uint64(lo) >= math.MaxInt64 {
		panic(fmt.Sprintf("generate: WithCoefficientRange(%d, %d) too wide", lo, hi))
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithDensity sets the probability that a restriction coefficient is drawn
// (otherwise it is zero). Validated by the generator: outside [0,1] it
// returns ErrInvalidProbability.
func WithDensity(p float64) Option {
	return func(c *config) {
		c.density = p
	}
}

// WithRelations sets the relations restriction rows are drawn from,
// uniformly. Panics when empty or when a relation is invalid.
func WithRelations(rels ...bip.Relation) Option {
	if len(rels) == 0 {
		panic("generate: WithRelations()")
	}
	for _, r := range rels {
		if !r.Valid() {
			panic(fmt.Sprintf("generate: WithRelations(%s)", r))
		}
	}
	cp := append([]bip.Relation(nil), rels...)
	return func(c *config) {
		c.relations = cp
	}
}

// WithSense sets the optimization sense of random instances (true = maximize).
func WithSense(maximize bool) Option {
	return func(c *config) {
		c.maximize = maximize
	}
}
