// SPDX-License-Identifier: MIT
// Package bip - Dispatcher.
//
// Solve validates options, snapshots the Problem into a read-only view and
// routes to the selected algorithm. The Problem is never mutated; concurrent
// solves of the same unmutated Problem are safe.

package bip

import (
	"context"
	"fmt"
	"time"
)

// deadlineEvery is the sparse interruption-check period, in node events.
const deadlineEvery = 4096

// Solve runs the selected algorithm on p without a cancellation context.
// See SolveContext.
func Solve(p *Problem, opts Options) (Report, error) {
	return SolveContext(context.Background(), p, opts)
}

// SolveContext runs the selected algorithm on p.
//
// On full completion err is nil and Report.Complete is true; Success tells
// whether any feasible assignment exists. On interruption (ctx cancelled or
// Options.TimeLimit elapsed) the partial Report is returned together with the
// interruption error (ErrTimeLimit, or an error wrapping ctx.Err()).
//
// Errors before search: ErrNilProblem, ErrReleased, ErrInvalidOptions,
// ErrUnsupportedAlgorithm, ErrTooLarge (Exhaustive only).
func SolveContext(ctx context.Context, p *Problem, opts Options) (Report, error) {
	if err := validateOptions(opts); err != nil {
		return Report{}, err
	}
	v, err := p.view()
	if err != nil {
		return Report{}, err
	}
	if err = ctx.Err(); err != nil {
		return Report{Algo: opts.Algo}, fmt.Errorf("SolveContext: %w", err)
	}

	switch opts.Algo {
	case Exhaustive:
		return exhaustive(ctx, p, v, opts)
	default:
		return implicitEnumeration(ctx, p, v, opts)
	}
}

// interrupter performs the sparse context/deadline check shared by solvers.
type interrupter struct {
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int
	err         error
}

func newInterrupter(ctx context.Context, limit time.Duration) interrupter {
	it := interrupter{ctx: ctx}
	if limit > 0 {
		it.useDeadline = true
		it.deadline = time.Now().Add(limit)
	}

	return it
}

// tick counts one node event and, every deadlineEvery events, reports
// whether the search must stop. The cause is kept in it.err.
func (it *interrupter) tick() bool {
	it.steps++
	if it.steps%deadlineEvery != 0 {
		return false
	}
	if err := it.ctx.Err(); err != nil {
		it.err = fmt.Errorf("search interrupted: %w", err)
		return true
	}
	if it.useDeadline && time.Now().After(it.deadline) {
		it.err = ErrTimeLimit
		return true
	}

	return false
}
