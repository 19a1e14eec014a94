// SPDX-License-Identifier: MIT
// Package bip - Implicit enumeration (branch-and-bound over binary variables).
//
// bbEngine explores the binary decision tree depth-first. Node = fixed
// prefix x_0..x_{d-1}; its children fix x_d to 0 then to 1.
//
// Per node:
//  1. Bound: workplace = fixed prefix + per-variable best values (bound.go).
//     Prune (ReasonPrunedByBound) when an incumbent exists and the bound does
//     not strictly improve it: maximize bound ≤ α, minimize bound ≥ α.
//     Strictness keeps the first-found optimum (branch order tie-break).
//  2. Feasibility: if the workplace satisfies every restriction it is the
//     best completion of this subtree; it becomes the incumbent
//     (ReasonNewCandidate) and the node closes.
//  3. Future feasibility: if some row cannot be satisfied by any completion
//     of the free suffix, close (ReasonPrunedInfeasible).
//  4. Otherwise expand (ReasonExpanded) and push both children.
//
// A node with every variable fixed never expands: its workplace equals the
// fixed assignment, so step 2 or step 3 is conclusive.
//
// Traversal uses an explicit frame stack instead of call recursion, so depth
// (== numVars) is bounded by heap, not goroutine stack. Child 1 is pushed
// before child 0, giving the same pre-order (and node ids) as the recursive
// "0 then 1" formulation. Backtracking clears fixed[d:] when a shallower
// frame is popped.
//
// Complexity:
//   - Worst case O(2^n) nodes; O(n·m) work per node (bound, feasibility and
//     future feasibility each scan the restriction table once).
//   - Memory: O(n) for fixed/workplace/incumbent/path + O(n) stack frames.
//
// Soft interruption: context cancellation and Options.TimeLimit are checked
// every 4096 nodes; each node is independently resumable from its prefix,
// so stopping between nodes never leaves an inconsistent incumbent.

package bip

import (
	"context"
	"time"
	"unsafe"
)

// frame is one pending node: the value to assign to variable depth-1.
type frame struct {
	depth int
	value int8
}

// bbEngine holds all search data and policies for one run.
type bbEngine struct {
	// Configuration / policy
	v        *view
	useBound bool
	listener NodeListener
	observer BoundObserver // nil unless listener implements it
	stop     interrupter

	// Current search state
	fixed     []int8  // fixed[0:depth] set, fixed[depth:] == Unset
	depth     int     // number of fixed variables at the current node
	workplace []int8  // bound assignment of the current node
	path      []int   // path[d] = id of the open node at depth d (parent chain)
	stack     []frame // pending nodes, LIFO
	nextID    int     // pre-order node id counter, starts at 1

	// Current best incumbent
	best       []int8
	alpha      int64
	found      bool
	candidates int
}

// newEngine allocates the search buffers for v.
func newEngine(v *view, opts Options, stop interrupter) *bbEngine {
	e := &bbEngine{
		v:         v,
		useBound:  opts.Bound != NoBound,
		listener:  opts.Listener,
		stop:      stop,
		fixed:     make([]int8, v.n),
		workplace: make([]int8, v.n),
		path:      make([]int, v.n+1),
		stack:     make([]frame, 0, v.n+1),
		best:      make([]int8, v.n),
		nextID:    1,
	}
	if e.listener == nil {
		e.listener = NopListener{}
	}
	if bo, ok := e.listener.(BoundObserver); ok {
		e.observer = bo
	}
	for i := range e.fixed {
		e.fixed[i] = Unset
	}

	return e
}

// run drives the search to completion or interruption.
// It returns the interruption error, or nil when the tree was exhausted.
func (e *bbEngine) run() error {
	e.stack = append(e.stack, frame{depth: 0, value: Unset})
	var f frame
	for len(e.stack) > 0 {
		if e.stop.tick() {
			return e.stop.err
		}
		f = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.descend(f)
		e.evaluate(f)
	}

	return nil
}

// descend restores the fixed prefix of frame f: levels fixed by the previous
// branch below f are cleared, then variable f.depth-1 takes f.value.
func (e *bbEngine) descend(f frame) {
	for i := f.depth; i < e.depth; i++ {
		e.fixed[i] = Unset
	}
	if f.depth > 0 {
		e.fixed[f.depth-1] = f.value
	}
	e.depth = f.depth
}

// evaluate opens, classifies and closes the node at the current prefix.
func (e *bbEngine) evaluate(f frame) {
	id := e.nextID
	e.nextID++
	e.path[f.depth] = id
	parent := 0
	if f.depth > 0 {
		parent = e.path[f.depth-1]
	}
	e.listener.NodeOpened(id, parent, e.fixed[:f.depth])

	// 1) Bound.
	bound := e.v.bound(e.fixed, e.workplace)
	if e.observer != nil {
		e.observer.NodeBounded(id, e.workplace, bound, e.alpha, e.found)
	}
	improves := e.v.improves(bound, e.alpha, e.found)
	if e.useBound && !improves {
		e.listener.NodeClosed(id, ReasonPrunedByBound)
		return
	}

	// 2) Feasibility of the bound assignment.
	if e.v.feasible(e.workplace) {
		if !improves {
			// Only reachable under NoBound: the subtree's best is no better.
			// Reported as a bound prune; see NoBound.
			e.listener.NodeClosed(id, ReasonPrunedByBound)
			return
		}
		e.record(bound)
		e.listener.NodeClosed(id, ReasonNewCandidate)
		return
	}

	// 3) Future feasibility of the prefix.
	if f.depth == e.v.n || !e.v.mayBecomeFeasible(e.fixed) {
		e.listener.NodeClosed(id, ReasonPrunedInfeasible)
		return
	}

	// 4) Expand: child 0 must pop first.
	e.listener.NodeClosed(id, ReasonExpanded)
	e.stack = append(e.stack,
		frame{depth: f.depth + 1, value: 1},
		frame{depth: f.depth + 1, value: 0},
	)
}

// record commits the current workplace as the new incumbent.
func (e *bbEngine) record(value int64) {
	copy(e.best, e.workplace)
	e.alpha = value
	e.found = true
	e.candidates++
}

// searchBytes estimates the memory held by the search buffers.
func (e *bbEngine) searchBytes() int {
	return len(e.fixed) + len(e.workplace) + len(e.best) +
		cap(e.path)*int(unsafe.Sizeof(int(0))) +
		cap(e.stack)*int(unsafe.Sizeof(frame{})) +
		int(unsafe.Sizeof(*e))
}

// implicitEnumeration runs bbEngine on p and builds the Report.
func implicitEnumeration(ctx context.Context, p *Problem, v *view, opts Options) (Report, error) {
	start := time.Now()
	e := newEngine(v, opts, newInterrupter(ctx, opts.TimeLimit))
	err := e.run()

	rep := Report{
		Success:     e.found,
		Complete:    err == nil,
		Elapsed:     time.Since(start),
		MemoryBytes: p.MemoryFootprint() + e.searchBytes(),
		Nodes:       e.nextID - 1,
		Candidates:  e.candidates,
		Algo:        ImplicitEnumeration,
	}
	if e.found {
		rep.Assignment = e.best
		rep.Value = e.alpha
	}

	return rep, err
}
