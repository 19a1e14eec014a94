// SPDX-License-Identifier: MIT

package bip

import (
	"fmt"
	"strings"
	"time"
)

// Unset marks a free (not yet fixed) variable in a fixed vector.
// Fixed vectors hold Unset, 0 or 1; assignments hold only 0 or 1.
const Unset int8 = -1

// Relation is the comparison type of a restriction row.
// EQ is the zero value, so a restriction row that was never set reads
// "0 = 0" and is satisfied by every assignment.
type Relation int8

const (
	// EQ requires lhs == rhs.
	EQ Relation = iota
	// LE requires lhs <= rhs.
	LE
	// GE requires lhs >= rhs.
	GE
)

// Valid reports whether r is one of EQ, LE, GE.
func (r Relation) Valid() bool { return r == EQ || r == LE || r == GE }

// String returns the usual operator symbol.
func (r Relation) String() string {
	switch r {
	case EQ:
		return "="
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int8(r))
	}
}

// holds reports whether lhs (relation) rhs is true.
func (r Relation) holds(lhs, rhs int64) bool {
	switch r {
	case LE:
		return lhs <= rhs
	case GE:
		return lhs >= rhs
	default:
		return lhs == rhs
	}
}

// CloseReason tells why a search node was closed.
type CloseReason int

const (
	// ReasonPrunedByBound: the node's bound cannot strictly improve the incumbent.
	// Under NoBound it also closes a node whose bound assignment is feasible
	// but no better than the incumbent: that assignment is the best completion
	// of the subtree, so nothing below it can win.
	ReasonPrunedByBound CloseReason = iota
	// ReasonNewCandidate: the bound assignment is feasible and became the incumbent.
	ReasonNewCandidate
	// ReasonPrunedInfeasible: no completion of the free variables can satisfy every restriction.
	ReasonPrunedInfeasible
	// ReasonExpanded: the node branched into two children.
	ReasonExpanded
)

// String returns a stable snake_case label, suitable for metric labels.
func (c CloseReason) String() string {
	switch c {
	case ReasonPrunedByBound:
		return "pruned_by_bound"
	case ReasonNewCandidate:
		return "new_candidate"
	case ReasonPrunedInfeasible:
		return "pruned_infeasible"
	case ReasonExpanded:
		return "expanded"
	default:
		return fmt.Sprintf("CloseReason(%d)", int(c))
	}
}

// Algorithm selects the solver routed by Solve.
type Algorithm int

const (
	// ImplicitEnumeration is the branch-and-bound search (default).
	ImplicitEnumeration Algorithm = iota
	// Exhaustive enumerates all 2^n assignments; reference solver for small n.
	Exhaustive
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case ImplicitEnumeration:
		return "implicit-enumeration"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// BoundPolicy governs the bound-pruning step of ImplicitEnumeration.
type BoundPolicy int

const (
	// ObjectiveBound prunes nodes whose bound cannot strictly beat the incumbent.
	ObjectiveBound BoundPolicy = iota
	// NoBound disables bound pruning before the feasibility test
	// (testing/benchmarking only). Nodes whose bound assignment is feasible
	// but does not improve the incumbent still close as ReasonPrunedByBound,
	// so listeners and metrics may count bound prunes under this policy.
	NoBound
)

// Report is the outcome of one solver run.
type Report struct {
	// Success is true when a feasible assignment was found.
	Success bool
	// Complete is false when the run was interrupted (time limit or context);
	// the incumbent is then the best found so far, not a proven optimum.
	Complete bool
	// Assignment is the best assignment found (nil when !Success).
	Assignment []int8
	// Value is the objective value of Assignment (0 when !Success).
	Value int64
	// Elapsed is the wall-clock time of the search.
	Elapsed time.Duration
	// MemoryBytes estimates problem storage plus search buffers.
	MemoryBytes int
	// Nodes counts opened search nodes (assignments for Exhaustive).
	Nodes int
	// Candidates counts incumbent replacements.
	Candidates int
	// Algo is the solver that produced the report.
	Algo Algorithm
}

// String summarises the report on one line.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(r.Algo.String())
	if !r.Success {
		b.WriteString(": infeasible")
	} else {
		fmt.Fprintf(&b, ": value=%d x=%s", r.Value, formatAssignment(r.Assignment))
	}
	if !r.Complete {
		b.WriteString(" (incomplete)")
	}
	fmt.Fprintf(&b, " nodes=%d candidates=%d mem=%dB elapsed=%s",
		r.Nodes, r.Candidates, r.MemoryBytes, r.Elapsed)

	return b.String()
}

// formatAssignment renders [1 0 -] style vectors; Unset prints as '-'.
func formatAssignment(x []int8) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range x {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v == Unset {
			b.WriteByte('-')
		} else {
			b.WriteByte('0' + byte(v))
		}
	}
	b.WriteByte(']')

	return b.String()
}
