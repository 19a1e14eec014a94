// SPDX-License-Identifier: MIT
// Package bip - Problem context: objective, sense and restriction table.
//
// Layout of the restriction table (numRest × (numVars+2), matrix.Dense):
//
//	col 0 .. numVars-1 : coefficients a_ij
//	col numVars        : Relation tag (EQ/LE/GE)
//	col numVars+1      : right-hand side b_i
//
// With numRest == 0 the table is absent and every assignment is feasible.

package bip

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/lvbip/matrix"
)

// Problem is one 0/1 integer program. It is created with fixed dimensions,
// populated through the Set* methods before solving, and read-only to the
// solver. A Problem is not safe for concurrent mutation; concurrent solves of
// an unmutated Problem are safe.
type Problem struct {
	numVars      int
	numRest      int
	maximize     bool
	objective    []int64
	restrictions *matrix.Dense // nil when numRest == 0
	released     bool
}

// New allocates a Problem with numVars binary variables and numRest
// restrictions; the objective and every restriction start zeroed (EQ, rhs 0).
//
// Errors:
//   - ErrInvalidDimensions when numVars < 1 or numRest < 0.
//   - ErrAllocation when the restriction table cannot be allocated.
//
// Complexity: O(numVars * numRest).
func New(numVars, numRest int) (*Problem, error) {
	if numVars < 1 || numRest < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", numVars, numRest, ErrInvalidDimensions)
	}
	p := &Problem{numVars: numVars, numRest: numRest}
	if numRest > 0 {
		m, err := matrix.NewDense(numRest, numVars+2, 0)
		if err != nil {
			return nil, fmt.Errorf("New(%d,%d): %w", numVars, numRest, err)
		}
		p.restrictions = m
	}
	p.objective = make([]int64, numVars)

	return p, nil
}

// live reports ErrNilProblem / ErrReleased for unusable receivers.
func (p *Problem) live() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.released {
		return ErrReleased
	}

	return nil
}

// NumVars returns the number of binary decision variables.
func (p *Problem) NumVars() int {
	if p == nil {
		return 0
	}

	return p.numVars
}

// NumRestrictions returns the number of restriction rows.
func (p *Problem) NumRestrictions() int {
	if p == nil {
		return 0
	}

	return p.numRest
}

// Maximize reports the optimization sense.
func (p *Problem) Maximize() bool { return p != nil && p.maximize }

// SetSense sets the optimization sense (true = maximize).
func (p *Problem) SetSense(maximize bool) {
	if p == nil {
		return
	}
	p.maximize = maximize
}

// SetObjectiveCoefficient sets the objective coefficient of variable i.
func (p *Problem) SetObjectiveCoefficient(i int, v int64) error {
	if err := p.live(); err != nil {
		return err
	}
	if i < 0 || i >= p.numVars {
		return fmt.Errorf("SetObjectiveCoefficient(%d): %w", i, ErrOutOfRange)
	}
	p.objective[i] = v

	return nil
}

// SetObjective replaces the whole objective vector; len(coeffs) must equal NumVars.
func (p *Problem) SetObjective(coeffs []int64) error {
	if err := p.live(); err != nil {
		return err
	}
	if len(coeffs) != p.numVars {
		return fmt.Errorf("SetObjective(len=%d, vars=%d): %w", len(coeffs), p.numVars, ErrCoefficientCount)
	}
	copy(p.objective, coeffs)

	return nil
}

// ObjectiveCoefficient returns the objective coefficient of variable i.
func (p *Problem) ObjectiveCoefficient(i int) (int64, error) {
	if err := p.live(); err != nil {
		return 0, err
	}
	if i < 0 || i >= p.numVars {
		return 0, fmt.Errorf("ObjectiveCoefficient(%d): %w", i, ErrOutOfRange)
	}

	return p.objective[i], nil
}

// Objective returns a copy of the objective vector.
func (p *Problem) Objective() []int64 {
	if p.live() != nil {
		return nil
	}
	out := make([]int64, p.numVars)
	copy(out, p.objective)

	return out
}

// SetRestriction writes row `row` as  Σ coeffs[j]·x_j (rel) rhs.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, NumRestrictions()).
//   - ErrCoefficientCount when len(coeffs) != NumVars().
//   - ErrInvalidRelation when rel is not EQ, LE or GE.
//
// Complexity: O(numVars).
func (p *Problem) SetRestriction(row int, coeffs []int64, rel Relation, rhs int64) error {
	if err := p.live(); err != nil {
		return err
	}
	if row < 0 || row >= p.numRest {
		return fmt.Errorf("SetRestriction(%d): %w", row, ErrOutOfRange)
	}
	if len(coeffs) != p.numVars {
		return fmt.Errorf("SetRestriction(%d): len=%d, vars=%d: %w", row, len(coeffs), p.numVars, ErrCoefficientCount)
	}
	if !rel.Valid() {
		return fmt.Errorf("SetRestriction(%d): %s: %w", row, rel, ErrInvalidRelation)
	}
	r, err := p.restrictions.Row(row)
	if err != nil {
		return fmt.Errorf("SetRestriction(%d): %w", row, err)
	}
	copy(r[:p.numVars], coeffs)
	r[p.numVars] = int64(rel)
	r[p.numVars+1] = rhs

	return nil
}

// Restriction returns a copy of row `row`'s coefficients, its relation and rhs.
func (p *Problem) Restriction(row int) ([]int64, Relation, int64, error) {
	if err := p.live(); err != nil {
		return nil, EQ, 0, err
	}
	if row < 0 || row >= p.numRest {
		return nil, EQ, 0, fmt.Errorf("Restriction(%d): %w", row, ErrOutOfRange)
	}
	r, err := p.restrictions.Row(row)
	if err != nil {
		return nil, EQ, 0, fmt.Errorf("Restriction(%d): %w", row, err)
	}
	coeffs := make([]int64, p.numVars)
	copy(coeffs, r[:p.numVars])

	return coeffs, Relation(r[p.numVars]), r[p.numVars+1], nil
}

// MemoryFootprint estimates the bytes owned by the Problem: the restriction
// table, the objective vector and the struct itself.
func (p *Problem) MemoryFootprint() int {
	if p.live() != nil {
		return 0
	}

	return p.restrictions.SizeInBytes() +
		p.numVars*int(unsafe.Sizeof(int64(0))) +
		int(unsafe.Sizeof(*p))
}

// Release drops the restriction table and the objective vector.
// Safe on nil; idempotent. Any later use returns ErrReleased.
func (p *Problem) Release() {
	if p == nil || p.released {
		return
	}
	p.restrictions.Release()
	p.restrictions = nil
	p.objective = nil
	p.released = true
}

// restriction is a read-only row view used by the checkers' hot loops.
type restriction struct {
	coeffs []int64
	rel    Relation
	rhs    int64
}

// view is the solver's read-only snapshot of a Problem: no-copy row views
// resolved once, so hot loops skip bounds-checked accessors.
type view struct {
	n        int
	maximize bool
	obj      []int64
	rows     []restriction
}

// view resolves the row table. Complexity: O(numRest).
func (p *Problem) view() (*view, error) {
	if err := p.live(); err != nil {
		return nil, err
	}
	v := &view{n: p.numVars, maximize: p.maximize, obj: p.objective}
	if p.numRest == 0 {
		return v, nil
	}
	v.rows = make([]restriction, p.numRest)
	for i := 0; i < p.numRest; i++ {
		r, err := p.restrictions.Row(i)
		if err != nil {
			return nil, err
		}
		v.rows[i] = restriction{
			coeffs: r[:p.numVars],
			rel:    Relation(r[p.numVars]),
			rhs:    r[p.numVars+1],
		}
	}

	return v, nil
}
