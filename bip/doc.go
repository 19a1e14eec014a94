// Package bip solves 0/1 (binary) integer linear programs by implicit
// enumeration: branch-and-bound specialised to binary variables, in the
// tradition of Balas' additive algorithm.
//
// A Problem holds an integer objective over numVars binary variables, the
// optimization sense and numRest linear restrictions (<=, >=, =):
//
//	p, _ := bip.New(3, 1)
//	p.SetSense(true)
//	_ = p.SetObjective([]int64{2, 3, 1})
//	_ = p.SetRestriction(0, []int64{1, 1, 1}, bip.LE, 2)
//	rep, err := bip.Solve(p, bip.DefaultOptions())
//
// Algorithms (Options.Algo):
//
//   - ImplicitEnumeration: depth-first branch-and-bound with an admissible
//     objective bound, a feasibility test of the bound assignment and an
//     interval-based future-feasibility prune.
//   - Complexity: O(2^n) nodes worst case, O(n·m) per node.
//   - Memory:     O(n·m) problem + O(n) search state.
//   - Exhaustive: reference enumeration of all 2^n assignments (n ≤ 30).
//
// Determinism: the search is single-threaded; children are explored 0 before
// 1 and the incumbent is replaced only on strict improvement, so repeated
// runs return the same assignment, value and node count.
//
// Observability: Options.Listener receives NodeOpened/NodeClosed events in
// pre-order (and NodeBounded when it implements BoundObserver). The package
// itself never logs; see package observe for glog tracing and Prometheus
// metrics built on these events.
//
// Errors are sentinel values (ErrInvalidDimensions, ErrAllocation,
// ErrTimeLimit, …) wrapped with call-site context; match them with
// errors.Is.
package bip
