// Package bip_test validates the three node checkers in isolation:
// Bound (optimistic completion), IsFeasible/Violations and MayBecomeFeasible.
package bip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbip/bip"
)

const u = bip.Unset

// TestBoundMaximize: free variables take 1 on positive coefficients only.
func TestBoundMaximize(t *testing.T) {
	p := mustProblem(t, true, []int64{4, -2, 0, 3})

	val, wp, err := bip.Bound(p, []int8{u, u, u, u})
	require.NoError(t, err)
	require.Equal(t, []int8{1, 0, 0, 1}, wp)
	require.Equal(t, int64(7), val)

	// Fixed entries are kept even when locally bad.
	val, wp, err = bip.Bound(p, []int8{0, 1, u, u})
	require.NoError(t, err)
	require.Equal(t, []int8{0, 1, 0, 1}, wp)
	require.Equal(t, int64(1), val)
}

// TestBoundMinimize: free variables take 1 on negative coefficients only.
func TestBoundMinimize(t *testing.T) {
	p := mustProblem(t, false, []int64{4, -2, 0, 3})

	val, wp, err := bip.Bound(p, []int8{u, u, u, u})
	require.NoError(t, err)
	require.Equal(t, []int8{0, 1, 0, 0}, wp)
	require.Equal(t, int64(-2), val)
}

// TestBoundAdmissible: no completion of a prefix beats its bound.
func TestBoundAdmissible(t *testing.T) {
	for _, maximize := range []bool{true, false} {
		p := randomProblem(t, 11, 8, 0, maximize)
		fixed := []int8{1, 0, u, u, u, u, u, u}
		bound, _, err := bip.Bound(p, fixed)
		require.NoError(t, err)

		obj := p.Objective()
		for mask := 0; mask < 1<<6; mask++ {
			var val int64
			x := append([]int8(nil), fixed...)
			for i := 2; i < 8; i++ {
				x[i] = int8(mask >> (i - 2) & 1)
			}
			for i, c := range obj {
				val += c * int64(x[i])
			}
			if maximize {
				require.LessOrEqual(t, val, bound)
			} else {
				require.GreaterOrEqual(t, val, bound)
			}
		}
	}
}

// TestBoundValidation covers length and value-domain errors.
func TestBoundValidation(t *testing.T) {
	p := scenarioKnapsack3(t)
	_, _, err := bip.Bound(p, []int8{u, u})
	require.ErrorIs(t, err, bip.ErrAssignmentLength)

	_, _, err = bip.Bound(p, []int8{u, 2, u})
	require.ErrorIs(t, err, bip.ErrInvalidValue)
}

// TestIsFeasibleRelations checks each relation at and around its rhs.
func TestIsFeasibleRelations(t *testing.T) {
	cases := []struct {
		name string
		rel  bip.Relation
		rhs  int64
		x    []int8
		want bool
	}{
		{"LE equal", bip.LE, 2, []int8{1, 1}, true},
		{"LE over", bip.LE, 1, []int8{1, 1}, false},
		{"GE equal", bip.GE, 2, []int8{1, 1}, true},
		{"GE under", bip.GE, 2, []int8{1, 0}, false},
		{"EQ hit", bip.EQ, 1, []int8{0, 1}, true},
		{"EQ miss", bip.EQ, 1, []int8{0, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustProblem(t, true, []int64{1, 1}, row{[]int64{1, 1}, tc.rel, tc.rhs})
			ok, err := bip.IsFeasible(p, tc.x)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

// TestIsFeasibleRejectsUnset: assignments must be complete.
func TestIsFeasibleRejectsUnset(t *testing.T) {
	p := scenarioKnapsack3(t)
	_, err := bip.IsFeasible(p, []int8{1, u, 0})
	require.ErrorIs(t, err, bip.ErrInvalidValue)
}

// TestViolations lists every violated row and agrees with IsFeasible.
func TestViolations(t *testing.T) {
	p := mustProblem(t, true, []int64{1, 1, 1},
		row{[]int64{1, 1, 1}, bip.LE, 1},
		row{[]int64{1, 0, 0}, bip.GE, 1},
		row{[]int64{0, 1, 1}, bip.EQ, 2},
	)
	x := []int8{0, 1, 1}
	v, err := bip.Violations(p, x)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1}, v.ToArray())

	ok, err := bip.IsFeasible(p, x)
	require.NoError(t, err)
	require.False(t, ok)

	v, err = bip.Violations(p, []int8{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, v.ToArray())

	// Agreement over the whole cube.
	for mask := 0; mask < 8; mask++ {
		x = []int8{int8(mask & 1), int8(mask >> 1 & 1), int8(mask >> 2 & 1)}
		v, err = bip.Violations(p, x)
		require.NoError(t, err)
		ok, err = bip.IsFeasible(p, x)
		require.NoError(t, err)
		require.Equal(t, ok, v.IsEmpty(), "x=%v", x)
	}
}

// TestMayBecomeFeasibleIntervals checks the [low, high] reasoning per relation.
func TestMayBecomeFeasibleIntervals(t *testing.T) {
	cases := []struct {
		name  string
		r     row
		fixed []int8
		want  bool
	}{
		// 3a - 2b + c, free b,c: [3-2, 3+1] = [1, 4]
		{"LE reachable", row{[]int64{3, -2, 1}, bip.LE, 1}, []int8{1, u, u}, true},
		{"LE hopeless", row{[]int64{3, -2, 1}, bip.LE, 0}, []int8{1, u, u}, false},
		{"GE reachable", row{[]int64{3, -2, 1}, bip.GE, 4}, []int8{1, u, u}, true},
		{"GE hopeless", row{[]int64{3, -2, 1}, bip.GE, 5}, []int8{1, u, u}, false},
		{"EQ inside", row{[]int64{3, -2, 1}, bip.EQ, 2}, []int8{1, u, u}, true},
		{"EQ below", row{[]int64{3, -2, 1}, bip.EQ, 0}, []int8{1, u, u}, false},
		{"EQ above", row{[]int64{3, -2, 1}, bip.EQ, 5}, []int8{1, u, u}, false},
		// Interval test only: parity gaps are not detected.
		{"EQ gap", row{[]int64{2, 2, 2}, bip.EQ, 3}, []int8{u, u, u}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustProblem(t, true, []int64{0, 0, 0}, tc.r)
			ok, err := bip.MayBecomeFeasible(p, tc.fixed)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

// TestMayBecomeFeasibleFullyFixed equals IsFeasible when nothing is free.
func TestMayBecomeFeasibleFullyFixed(t *testing.T) {
	p := randomProblem(t, 5, 6, 4, true)
	for mask := 0; mask < 1<<6; mask++ {
		x := make([]int8, 6)
		for i := range x {
			x[i] = int8(mask >> i & 1)
		}
		may, err := bip.MayBecomeFeasible(p, x)
		require.NoError(t, err)
		feas, err := bip.IsFeasible(p, x)
		require.NoError(t, err)
		require.Equal(t, feas, may, "x=%v", x)
	}
}

// TestMayBecomeFeasibleNeverPrunesSolutions: a feasible completion implies true.
func TestMayBecomeFeasibleNeverPrunesSolutions(t *testing.T) {
	p := randomProblem(t, 9, 6, 3, false)
	for mask := 0; mask < 1<<6; mask++ {
		x := make([]int8, 6)
		for i := range x {
			x[i] = int8(mask >> i & 1)
		}
		feas, err := bip.IsFeasible(p, x)
		require.NoError(t, err)
		if !feas {
			continue
		}
		for d := 0; d <= 6; d++ {
			prefix := append([]int8(nil), x...)
			for i := d; i < 6; i++ {
				prefix[i] = u
			}
			may, err := bip.MayBecomeFeasible(p, prefix)
			require.NoError(t, err)
			require.True(t, may, "prefix=%v of feasible x=%v", prefix, x)
		}
	}
}

// TestNoRestrictionsCheckers: without rows every check passes.
func TestNoRestrictionsCheckers(t *testing.T) {
	p := mustProblem(t, true, []int64{1, 2})
	may, err := bip.MayBecomeFeasible(p, []int8{u, u})
	require.NoError(t, err)
	require.True(t, may)

	v, err := bip.Violations(p, []int8{0, 1})
	require.NoError(t, err)
	require.True(t, v.IsEmpty())
}
