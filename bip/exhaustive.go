// SPDX-License-Identifier: MIT
// Package bip - Exhaustive reference solver.
//
// Enumerates all 2^n assignments in lexicographic order (x_0 most
// significant, all-zeros first) and keeps the first strictly best feasible
// one. Used to cross-check ImplicitEnumeration on small instances; the two
// may return different assignments of equal value.
//
// Complexity: O(2^n · n·m) time, O(n) memory.

package bip

import (
	"context"
	"fmt"
	"time"
	"unsafe"
)

// MaxExhaustiveVars caps the instance size accepted by Exhaustive.
const MaxExhaustiveVars = 30

func exhaustive(ctx context.Context, p *Problem, v *view, opts Options) (Report, error) {
	if v.n > MaxExhaustiveVars {
		return Report{Algo: Exhaustive}, fmt.Errorf("Exhaustive(n=%d, max=%d): %w", v.n, MaxExhaustiveVars, ErrTooLarge)
	}

	start := time.Now()
	stop := newInterrupter(ctx, opts.TimeLimit)
	x := make([]int8, v.n)
	best := make([]int8, v.n)
	var (
		alpha      int64
		found      bool
		candidates int
		nodes      int
		err        error
		val        int64
	)

	total := uint64(1) << uint(v.n)
	for mask := uint64(0); mask < total; mask++ {
		if stop.tick() {
			err = stop.err
			break
		}
		for i := 0; i < v.n; i++ {
			x[i] = int8((mask >> uint(v.n-1-i)) & 1)
		}
		nodes++
		if !v.feasible(x) {
			continue
		}
		val = v.value(x)
		if v.improves(val, alpha, found) {
			copy(best, x)
			alpha = val
			found = true
			candidates++
		}
	}

	rep := Report{
		Success:     found,
		Complete:    err == nil,
		Elapsed:     time.Since(start),
		MemoryBytes: p.MemoryFootprint() + len(x) + len(best) + int(unsafe.Sizeof(stop)),
		Nodes:       nodes,
		Candidates:  candidates,
		Algo:        Exhaustive,
	}
	if found {
		rep.Assignment = best
		rep.Value = alpha
	}

	return rep, err
}
