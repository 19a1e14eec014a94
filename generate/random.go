// SPDX-License-Identifier: MIT
// Package: lvbip/generate
//
// random.go - Random and Batch: seeded programs with a planted solution.
//
// Model:
//   - Objective c_j ~ U[lo,hi].
//   - A hidden assignment h ~ U{0,1}^n is drawn first.
//   - Row i: a_ij ~ U[lo,hi] with probability density, else 0; relation
//     drawn uniformly from the configured set; rhs anchored at a_i·h:
//     LE: a_i·h + s, GE: a_i·h − s, EQ: a_i·h, with slack s ~ U[0, hi−lo].
//
// h satisfies every row, so generated instances are always feasible.
//
// Determinism: draws happen in a fixed order (objective, h, rows in index
// order, coefficients in column order, relation, slack).

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvbip/bip"
)

const (
	methodRandom = "Random"
	methodBatch  = "Batch"
)

// Random returns a feasible random program with numVars variables and
// numRest restrictions.
//
// Errors: ErrTooSmall (numVars < 1 or numRest < 0), ErrInvalidProbability,
// ErrNeedRandSource.
//
// Complexity: O(numVars·numRest).
func Random(numVars, numRest int, opts ...Option) (*bip.Problem, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(methodRandom, numVars, numRest); err != nil {
		return nil, err
	}

	return random(cfg.rng, cfg, numVars, numRest)
}

// Batch returns k independent random programs. Instance i draws from its own
// stream derived from the configured RNG, so the i-th instance does not
// depend on how the others are consumed.
//
// Errors: as Random, plus ErrTooSmall when k < 1.
func Batch(k, numVars, numRest int, opts ...Option) ([]*bip.Problem, error) {
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d < 1: %w", methodBatch, k, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if err := cfg.validate(methodBatch, numVars, numRest); err != nil {
		return nil, err
	}

	out := make([]*bip.Problem, k)
	var err error
	for i := range out {
		out[i], err = random(deriveRNG(cfg.rng, uint64(i)), cfg, numVars, numRest)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", methodBatch, i, err)
		}
	}

	return out, nil
}

// validate checks the stochastic generator contract.
func (c config) validate(method string, numVars, numRest int) error {
	if numVars < 1 || numRest < 0 {
		return fmt.Errorf("%s(%d,%d): %w", method, numVars, numRest, ErrTooSmall)
	}
	if c.density < probMin || c.density > probMax {
		return fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			method, c.density, probMin, probMax, ErrInvalidProbability)
	}
	if c.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

func random(rng *rand.Rand, cfg config, numVars, numRest int) (*bip.Problem, error) {
	p, err := bip.New(numVars, numRest)
	if err != nil {
		return nil, err
	}
	p.SetSense(cfg.maximize)

	span := cfg.hi - cfg.lo + 1
	draw := func() int64 { return cfg.lo + rng.Int63n(span) }

	obj := make([]int64, numVars)
	for j := range obj {
		obj[j] = draw()
	}
	if err = p.SetObjective(obj); err != nil {
		return nil, err
	}

	hidden := make([]int8, numVars)
	for j := range hidden {
		hidden[j] = int8(rng.Intn(2))
	}

	coeffs := make([]int64, numVars)
	var (
		lhs int64
		rhs int64
		rel bip.Relation
	)
	for i := 0; i < numRest; i++ {
		lhs = 0
		for j := range coeffs {
			coeffs[j] = 0
			if rng.Float64() < cfg.density {
				coeffs[j] = draw()
			}
			if hidden[j] == 1 {
				lhs += coeffs[j]
			}
		}
		rel = cfg.relations[rng.Intn(len(cfg.relations))]
		slack := rng.Int63n(span)
		switch rel {
		case bip.LE:
			rhs = lhs + slack
		case bip.GE:
			rhs = lhs - slack
		default:
			rhs = lhs
		}
		if err = p.SetRestriction(i, coeffs, rel, rhs); err != nil {
			return nil, err
		}
	}

	return p, nil
}
