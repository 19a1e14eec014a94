// SPDX-License-Identifier: MIT
// Package bip - Future-Feasibility Checker.
//
// For each row, the fixed variables contribute a constant and every free
// variable can move the left-hand side within [min(a_j,0), max(a_j,0)].
// The achievable interval is therefore
//
//	low  = fixedSum + Σ_{free j, a_j<0} a_j
//	high = fixedSum + Σ_{free j, a_j>0} a_j
//
// LE rows need low ≤ b, GE rows need high ≥ b, EQ rows need both. If any
// row fails, no completion of the free variables can ever satisfy it and
// the whole subtree is pruned. The extremes are chosen per row by the sign
// of that row's coefficients, independent of the objective.

package bip

// MayBecomeFeasible reports whether some completion of the free (Unset)
// entries of fixed could satisfy every restriction. With no restrictions it
// is always true. With no free entries it equals IsFeasible.
//
// Errors: ErrNilProblem, ErrReleased, ErrAssignmentLength, ErrInvalidValue.
//
// Complexity: O(numVars·numRest) worst case.
func MayBecomeFeasible(p *Problem, fixed []int8) (bool, error) {
	v, err := p.view()
	if err != nil {
		return false, err
	}
	if err = checkVector("MayBecomeFeasible", v.n, fixed, true); err != nil {
		return false, err
	}

	return v.mayBecomeFeasible(fixed), nil
}

// mayBecomeFeasible is the hot-path form; stops at the first hopeless row.
func (v *view) mayBecomeFeasible(fixed []int8) bool {
	for i := range v.rows {
		if !v.rows[i].reachable(fixed) {
			return false
		}
	}

	return true
}

// reachable reports whether rhs lies on the achievable side(s) of the row's
// [low, high] interval under fixed.
func (r *restriction) reachable(fixed []int8) bool {
	var base, lo, hi int64
	for j, c := range r.coeffs {
		switch fixed[j] {
		case 1:
			base += c
		case Unset:
			if c > 0 {
				hi += c
			} else {
				lo += c
			}
		}
	}

	switch r.rel {
	case LE:
		return base+lo <= r.rhs
	case GE:
		return base+hi >= r.rhs
	default:
		return base+lo <= r.rhs && r.rhs <= base+hi
	}
}
