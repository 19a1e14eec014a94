// Package bip_test provides small helpers shared across *_test.go files:
// problem construction from literals and an event-recording listener.
package bip_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbip/bip"
	"github.com/katalvlaran/lvbip/generate"
)

// row is one restriction literal.
type row struct {
	coeffs []int64
	rel    bip.Relation
	rhs    int64
}

// mustProblem builds a Problem from literals or fails the test.
func mustProblem(t testing.TB, maximize bool, obj []int64, rows ...row) *bip.Problem {
	t.Helper()
	p, err := bip.New(len(obj), len(rows))
	require.NoError(t, err)
	p.SetSense(maximize)
	require.NoError(t, p.SetObjective(obj))
	for i, r := range rows {
		require.NoError(t, p.SetRestriction(i, r.coeffs, r.rel, r.rhs))
	}

	return p
}

// scenarioKnapsack3: maximize 2a+3b+c s.t. a+b+c <= 2.
func scenarioKnapsack3(t testing.TB) *bip.Problem {
	return mustProblem(t, true, []int64{2, 3, 1}, row{[]int64{1, 1, 1}, bip.LE, 2})
}

// scenarioExactlyOne: minimize a+b s.t. a+b = 1.
func scenarioExactlyOne(t testing.TB) *bip.Problem {
	return mustProblem(t, false, []int64{1, 1}, row{[]int64{1, 1}, bip.EQ, 1})
}

// scenarioInfeasible: one variable, x0 = 2.
func scenarioInfeasible(t testing.TB) *bip.Problem {
	return mustProblem(t, false, []int64{0}, row{[]int64{1}, bip.EQ, 2})
}

// parityTrap returns an n-variable program (n >= 2) that is infeasible by
// parity (even coefficients, odd rhs near n) while the interval test keeps
// every balanced prefix alive, so the tree grows exponentially.
func parityTrap(t testing.TB, n int) *bip.Problem {
	obj := make([]int64, n)
	coeffs := make([]int64, n)
	for i := range coeffs {
		obj[i] = int64(i%3 + 1)
		coeffs[i] = 2
	}

	return mustProblem(t, true, obj, row{coeffs, bip.EQ, int64(2*(n/2)) - 1})
}

// randomProblem draws a planted-feasible instance with mixed relations.
func randomProblem(t testing.TB, seed int64, n, m int, maximize bool) *bip.Problem {
	t.Helper()
	p, err := generate.Random(n, m,
		generate.WithSeed(seed),
		generate.WithCoefficientRange(-6, 6),
		generate.WithDensity(0.7),
		generate.WithRelations(bip.LE, bip.GE, bip.EQ),
		generate.WithSense(maximize),
	)
	require.NoError(t, err)

	return p
}

// rawProblem draws an unplanted instance: dense random rows with a small
// random rhs and relation, so a good share of seeds is infeasible.
func rawProblem(t testing.TB, seed int64, n, m int) *bip.Problem {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	draw := func(lo, hi int64) int64 { return lo + rng.Int63n(hi-lo+1) }
	rels := []bip.Relation{bip.LE, bip.GE, bip.EQ}

	obj := make([]int64, n)
	for j := range obj {
		obj[j] = draw(-5, 5)
	}
	rows := make([]row, m)
	for i := range rows {
		coeffs := make([]int64, n)
		for j := range coeffs {
			coeffs[j] = draw(-3, 3)
		}
		rows[i] = row{coeffs, rels[rng.Intn(len(rels))], draw(-5, 5)}
	}

	return mustProblem(t, rng.Intn(2) == 1, obj, rows...)
}

// event is one recorded listener callback.
type event struct {
	Kind   string
	ID     int
	Parent int
	Fixed  []int8
	Reason bip.CloseReason
}

// recorder captures every node event; fixed prefixes are copied.
type recorder struct {
	events []event
	bounds map[int]int64
}

func newRecorder() *recorder { return &recorder{bounds: make(map[int]int64)} }

func (r *recorder) NodeOpened(id, parent int, fixed []int8) {
	r.events = append(r.events, event{Kind: "open", ID: id, Parent: parent, Fixed: append([]int8(nil), fixed...)})
}

func (r *recorder) NodeClosed(id int, reason bip.CloseReason) {
	r.events = append(r.events, event{Kind: "close", ID: id, Reason: reason})
}

func (r *recorder) NodeBounded(id int, _ []int8, bound, _ int64, _ bool) {
	r.bounds[id] = bound
}

// closes returns the close reason of every node id.
func (r *recorder) closes() map[int]bip.CloseReason {
	out := make(map[int]bip.CloseReason)
	for _, e := range r.events {
		if e.Kind == "close" {
			out[e.ID] = e.Reason
		}
	}

	return out
}

// solveWith runs Solve with opts and a fresh recorder attached.
func solveWith(t testing.TB, p *bip.Problem, opts bip.Options) (bip.Report, *recorder) {
	t.Helper()
	rec := newRecorder()
	opts.Listener = rec
	rep, err := bip.Solve(p, opts)
	require.NoError(t, err)

	return rep, rec
}
