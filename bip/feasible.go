// SPDX-License-Identifier: MIT
// Package bip - Feasibility Checker.
//
// A full assignment x is feasible iff every restriction row i satisfies
// Σ_j a_ij·x_j (rel_i) b_i. Without restrictions every assignment is feasible.

package bip

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// IsFeasible reports whether assignment satisfies every restriction.
// It stops at the first violated row; use Violations for a full diagnosis.
//
// Errors: ErrNilProblem, ErrReleased, ErrAssignmentLength, ErrInvalidValue.
//
// Complexity: O(numVars·numRest) worst case.
func IsFeasible(p *Problem, assignment []int8) (bool, error) {
	v, err := p.view()
	if err != nil {
		return false, err
	}
	if err = checkVector("IsFeasible", v.n, assignment, false); err != nil {
		return false, err
	}

	return v.feasible(assignment), nil
}

// Violations returns the indices of every restriction row that assignment
// violates. An empty bitmap means assignment is feasible; the result always
// agrees with IsFeasible.
//
// Complexity: O(numVars·numRest).
func Violations(p *Problem, assignment []int8) (*roaring.Bitmap, error) {
	v, err := p.view()
	if err != nil {
		return nil, err
	}
	if err = checkVector("Violations", v.n, assignment, false); err != nil {
		return nil, err
	}
	out := roaring.New()
	for i := range v.rows {
		if !v.rows[i].holds(assignment) {
			out.Add(uint32(i))
		}
	}

	return out, nil
}

// feasible is the short-circuiting hot-path check.
func (v *view) feasible(x []int8) bool {
	for i := range v.rows {
		if !v.rows[i].holds(x) {
			return false
		}
	}

	return true
}

// lhs returns Σ_j a_j·x_j over the entries set to 1.
func (r *restriction) lhs(x []int8) int64 {
	var s int64
	for j, c := range r.coeffs {
		if x[j] == 1 {
			s += c
		}
	}

	return s
}

// holds reports whether the row is satisfied by the full assignment x.
func (r *restriction) holds(x []int8) bool {
	return r.rel.holds(r.lhs(x), r.rhs)
}
