// SPDX-License-Identifier: MIT

package bip

import (
	"strconv"
	"strings"
)

const varLetters = "abcdefghijklmnopqrstuvwxyz"

// VarName returns the display name of variable i: a1, b1, …, z1, a2, …
// Negative indices are named by their absolute value.
func VarName(i int) string {
	u := uint64(i)
	if i < 0 {
		u = -u // two's complement magnitude, exact for math.MinInt
	}
	k := uint64(len(varLetters))

	return string(varLetters[u%k]) + strconv.FormatUint(u/k+1, 10)
}

// String renders the model as plain text:
//
//	Maximize:
//	  Z = 2a1 + 3b1 + 1c1
//	Subject to:
//	  1a1 + 1b1 + 1c1 <= 2
//
// Zero coefficients are omitted. A released or nil Problem renders as "".
func (p *Problem) String() string {
	v, err := p.view()
	if err != nil {
		return ""
	}
	var b strings.Builder
	if v.maximize {
		b.WriteString("Maximize:\n")
	} else {
		b.WriteString("Minimize:\n")
	}
	b.WriteString("  Z = ")
	writeLinear(&b, v.obj)
	b.WriteByte('\n')

	if len(v.rows) == 0 {
		return b.String()
	}
	b.WriteString("Subject to:\n")
	for _, r := range v.rows {
		b.WriteString("  ")
		writeLinear(&b, r.coeffs)
		b.WriteByte(' ')
		b.WriteString(r.rel.String())
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(r.rhs, 10))
		b.WriteByte('\n')
	}

	return b.String()
}

// writeLinear writes Σ c_j·x_j skipping zero terms; an all-zero row prints "0".
func writeLinear(b *strings.Builder, coeffs []int64) {
	first := true
	for j, c := range coeffs {
		if c == 0 {
			continue
		}
		switch {
		case first && c < 0:
			b.WriteByte('-')
		case !first && c < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		b.WriteString(strconv.FormatInt(c, 10))
		b.WriteString(VarName(j))
		first = false
	}
	if first {
		b.WriteByte('0')
	}
}
