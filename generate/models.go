// SPDX-License-Identifier: MIT
// Package: lvbip/generate
//
// models.go - classic 0/1 models built from plain slices.
//
//	Knapsack:  maximize Σ v_j x_j  s.t.  Σ w_j x_j ≤ C
//	SetCover:  minimize Σ c_j x_j  s.t.  Σ_{j: e ∈ S_j} x_j ≥ 1  ∀ e ∈ U

package generate

import (
	"fmt"

	"github.com/katalvlaran/lvbip/bip"
)

const (
	methodKnapsack = "Knapsack"
	methodSetCover = "SetCover"
)

// Knapsack builds the 0/1 knapsack program over len(values) items.
//
// Errors: ErrTooSmall (no items), ErrDimensionMismatch (len(values) !=
// len(weights)).
func Knapsack(values, weights []int64, capacity int64) (*bip.Problem, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no items: %w", methodKnapsack, ErrTooSmall)
	}
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%s: values=%d weights=%d: %w",
			methodKnapsack, len(values), len(weights), ErrDimensionMismatch)
	}

	p, err := bip.New(len(values), 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodKnapsack, err)
	}
	p.SetSense(true)
	if err = p.SetObjective(values); err != nil {
		return nil, fmt.Errorf("%s: %w", methodKnapsack, err)
	}
	if err = p.SetRestriction(0, weights, bip.LE, capacity); err != nil {
		return nil, fmt.Errorf("%s: %w", methodKnapsack, err)
	}

	return p, nil
}

// SetCover builds the weighted set-cover program: one variable per set, one
// GE row per universe element in [0, universe). An element no set covers
// yields an infeasible row "0 >= 1".
//
// Errors: ErrTooSmall (no sets or universe < 0), ErrDimensionMismatch
// (len(costs) != len(sets), or an element outside [0, universe)).
func SetCover(costs []int64, sets [][]int, universe int) (*bip.Problem, error) {
	if len(sets) == 0 || universe < 0 {
		return nil, fmt.Errorf("%s: sets=%d universe=%d: %w",
			methodSetCover, len(sets), universe, ErrTooSmall)
	}
	if len(costs) != len(sets) {
		return nil, fmt.Errorf("%s: costs=%d sets=%d: %w",
			methodSetCover, len(costs), len(sets), ErrDimensionMismatch)
	}

	rows := make([][]int64, universe)
	for e := range rows {
		rows[e] = make([]int64, len(sets))
	}
	for j, s := range sets {
		for _, e := range s {
			if e < 0 || e >= universe {
				return nil, fmt.Errorf("%s: set %d element %d not in [0,%d): %w",
					methodSetCover, j, e, universe, ErrDimensionMismatch)
			}
			rows[e][j] = 1
		}
	}

	p, err := bip.New(len(sets), universe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSetCover, err)
	}
	p.SetSense(false)
	if err = p.SetObjective(costs); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSetCover, err)
	}
	for e, row := range rows {
		if err = p.SetRestriction(e, row, bip.GE, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSetCover, err)
		}
	}

	return p, nil
}
