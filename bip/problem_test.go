// Package bip_test validates Problem construction, mutation and teardown.
package bip_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbip/bip"
)

// TestNewInvalidDimensions ensures New rejects numVars < 1 and numRest < 0.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := bip.New(0, 1)
	require.ErrorIs(t, err, bip.ErrInvalidDimensions)

	_, err = bip.New(3, -1)
	require.ErrorIs(t, err, bip.ErrInvalidDimensions)
}

// TestNewAllocationFailure ensures oversize tables fail with ErrAllocation.
func TestNewAllocationFailure(t *testing.T) {
	_, err := bip.New(1<<20, 1<<20)
	require.ErrorIs(t, err, bip.ErrAllocation)
}

// TestNewZeroed verifies the zero-initialised objective and rows.
func TestNewZeroed(t *testing.T) {
	p, err := bip.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, p.NumVars())
	require.Equal(t, 2, p.NumRestrictions())
	require.False(t, p.Maximize())
	require.Equal(t, []int64{0, 0, 0}, p.Objective())

	coeffs, rel, rhs, err := p.Restriction(1)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 0}, coeffs)
	require.Equal(t, bip.EQ, rel)
	require.Zero(t, rhs)
}

// TestNoRestrictions ensures numRest == 0 is valid and every assignment is feasible.
func TestNoRestrictions(t *testing.T) {
	p, err := bip.New(2, 0)
	require.NoError(t, err)
	require.Zero(t, p.NumRestrictions())

	_, _, _, err = p.Restriction(0)
	require.ErrorIs(t, err, bip.ErrOutOfRange)

	ok, err := bip.IsFeasible(p, []int8{1, 1})
	require.NoError(t, err)
	require.True(t, ok)
}

// TestObjectiveSetters covers per-coefficient and whole-vector writes.
func TestObjectiveSetters(t *testing.T) {
	p, err := bip.New(3, 0)
	require.NoError(t, err)

	require.NoError(t, p.SetObjectiveCoefficient(1, -4))
	v, err := p.ObjectiveCoefficient(1)
	require.NoError(t, err)
	require.Equal(t, int64(-4), v)

	require.ErrorIs(t, p.SetObjectiveCoefficient(3, 1), bip.ErrOutOfRange)
	_, err = p.ObjectiveCoefficient(-1)
	require.ErrorIs(t, err, bip.ErrOutOfRange)

	require.NoError(t, p.SetObjective([]int64{5, 6, 7}))
	obj := p.Objective()
	require.Equal(t, []int64{5, 6, 7}, obj)

	// Objective returns a copy.
	obj[0] = 99
	v, _ = p.ObjectiveCoefficient(0)
	require.Equal(t, int64(5), v)

	err = p.SetObjective([]int64{1})
	require.ErrorIs(t, err, bip.ErrCoefficientCount)
	require.ErrorIs(t, err, bip.ErrInvalidDimensions)
}

// TestSetRestriction round-trips a row and checks its validation.
func TestSetRestriction(t *testing.T) {
	p, err := bip.New(3, 2)
	require.NoError(t, err)

	require.NoError(t, p.SetRestriction(0, []int64{1, -2, 3}, bip.GE, -4))
	coeffs, rel, rhs, err := p.Restriction(0)
	require.NoError(t, err)
	require.Equal(t, []int64{1, -2, 3}, coeffs)
	require.Equal(t, bip.GE, rel)
	require.Equal(t, int64(-4), rhs)

	require.ErrorIs(t, p.SetRestriction(2, []int64{1, 1, 1}, bip.LE, 0), bip.ErrOutOfRange)
	require.ErrorIs(t, p.SetRestriction(0, []int64{1, 1}, bip.LE, 0), bip.ErrCoefficientCount)

	err = p.SetRestriction(1, []int64{1, 1, 1}, bip.Relation(7), 0)
	require.ErrorIs(t, err, bip.ErrInvalidRelation)
	require.ErrorIs(t, err, bip.ErrInvalidDimensions)

	// A rejected write leaves the row untouched.
	_, rel, _, err = p.Restriction(1)
	require.NoError(t, err)
	require.Equal(t, bip.EQ, rel)
}

// TestReleaseLifecycle ensures Release is idempotent and later use fails.
func TestReleaseLifecycle(t *testing.T) {
	p := scenarioKnapsack3(t)
	require.Positive(t, p.MemoryFootprint())

	p.Release()
	p.Release()
	require.Zero(t, p.MemoryFootprint())
	require.Nil(t, p.Objective())
	require.ErrorIs(t, p.SetObjectiveCoefficient(0, 1), bip.ErrReleased)
	require.ErrorIs(t, p.SetRestriction(0, []int64{1, 1, 1}, bip.LE, 1), bip.ErrReleased)

	_, err := bip.Solve(p, bip.DefaultOptions())
	require.ErrorIs(t, err, bip.ErrReleased)

	var nilP *bip.Problem
	nilP.Release()
	require.Zero(t, nilP.NumVars())
	_, err = bip.Solve(nilP, bip.DefaultOptions())
	require.True(t, errors.Is(err, bip.ErrNilProblem))
}

// TestMemoryFootprintGrows ensures the estimate scales with the table.
func TestMemoryFootprintGrows(t *testing.T) {
	small, err := bip.New(4, 1)
	require.NoError(t, err)
	large, err := bip.New(4, 50)
	require.NoError(t, err)
	require.Greater(t, large.MemoryFootprint(), small.MemoryFootprint())
}

// TestProblemString checks the plain-text model rendering.
func TestProblemString(t *testing.T) {
	p := mustProblem(t, true, []int64{2, -3, 0},
		row{[]int64{1, 1, 1}, bip.LE, 2},
		row{[]int64{0, 0, 0}, bip.GE, -1},
	)
	want := "Maximize:\n" +
		"  Z = 2a1 - 3b1\n" +
		"Subject to:\n" +
		"  1a1 + 1b1 + 1c1 <= 2\n" +
		"  0 >= -1\n"
	require.Equal(t, want, p.String())

	p.Release()
	require.Empty(t, p.String())
}

// TestVarName checks the a1..z1, a2.. naming scheme.
func TestVarName(t *testing.T) {
	require.Equal(t, "a1", bip.VarName(0))
	require.Equal(t, "z1", bip.VarName(25))
	require.Equal(t, "a2", bip.VarName(26))
	require.Equal(t, "c3", bip.VarName(54))
}

// TestVarNameNegative: negative indices use their magnitude, including MinInt.
func TestVarNameNegative(t *testing.T) {
	require.Equal(t, "b1", bip.VarName(-1))
	require.Equal(t, "a2", bip.VarName(-26))
	require.NotPanics(t, func() { bip.VarName(math.MinInt) })
	require.Equal(t, "i354745078340568301", bip.VarName(math.MinInt))
	require.Equal(t, "h354745078340568301", bip.VarName(math.MaxInt))
}

// TestEnumStrings pins the labels used by logs and metrics.
func TestEnumStrings(t *testing.T) {
	require.Equal(t, "<=", bip.LE.String())
	require.Equal(t, ">=", bip.GE.String())
	require.Equal(t, "=", bip.EQ.String())
	require.False(t, bip.Relation(-1).Valid())

	require.Equal(t, "pruned_by_bound", bip.ReasonPrunedByBound.String())
	require.Equal(t, "new_candidate", bip.ReasonNewCandidate.String())
	require.Equal(t, "pruned_infeasible", bip.ReasonPrunedInfeasible.String())
	require.Equal(t, "expanded", bip.ReasonExpanded.String())

	require.Equal(t, "implicit-enumeration", bip.ImplicitEnumeration.String())
	require.Equal(t, "exhaustive", bip.Exhaustive.String())
}
