// SPDX-License-Identifier: MIT
// Package bip - Bounding Evaluator.
//
// The bound of a node is the objective value of its "workplace": fixed
// variables keep their value and every free variable takes its individually
// best value for the sense, ignoring restrictions.
//
//	maximize: x_i = 1 iff c_i > 0
//	minimize: x_i = 1 iff c_i < 0
//	c_i == 0: x_i = 0 in either sense
//
// Since every free variable gets its best value independently, no completion
// consistent with the fixed prefix can beat the bound: it is an upper bound
// when maximizing and a lower bound when minimizing (admissible).

package bip

// Bound computes the optimistic objective value reachable from fixed and the
// workplace assignment that attains it. fixed has one entry per variable:
// Unset for free variables, 0 or 1 for fixed ones.
//
// Errors: ErrNilProblem, ErrReleased, ErrAssignmentLength, ErrInvalidValue.
//
// Complexity: O(numVars).
func Bound(p *Problem, fixed []int8) (int64, []int8, error) {
	v, err := p.view()
	if err != nil {
		return 0, nil, err
	}
	if err = checkVector("Bound", v.n, fixed, true); err != nil {
		return 0, nil, err
	}
	workplace := make([]int8, v.n)

	return v.bound(fixed, workplace), workplace, nil
}

// bound fills workplace from fixed and the per-variable best values and
// returns objective·workplace. No allocation.
func (v *view) bound(fixed, workplace []int8) int64 {
	var pos, neg int8 = 0, 1 // minimize: take negative coefficients
	if v.maximize {
		pos, neg = 1, 0
	}

	var (
		sum int64
		x   int8
	)
	for i, c := range v.obj {
		x = fixed[i]
		if x == Unset {
			switch {
			case c > 0:
				x = pos
			case c < 0:
				x = neg
			default:
				x = 0
			}
		}
		workplace[i] = x
		if x == 1 {
			sum += c
		}
	}

	return sum
}

// value returns objective·x for a full assignment.
func (v *view) value(x []int8) int64 {
	var sum int64
	for i, c := range v.obj {
		if x[i] == 1 {
			sum += c
		}
	}

	return sum
}

// improves reports whether val strictly beats the incumbent alpha for the
// sense. Without an incumbent every value improves.
func (v *view) improves(val, alpha int64, hasIncumbent bool) bool {
	if !hasIncumbent {
		return true
	}
	if v.maximize {
		return val > alpha
	}

	return val < alpha
}
