// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a rectangular grid of int64 values with
// owned, row-major backing storage.
//
// Dense backs the restriction table of a 0/1 integer program (see package
// bip): one row per restriction, one column per coefficient plus the
// relation tag and the right-hand side.
//
//	m, err := matrix.NewDense(2, 3, 0)   // 2×3, zero-filled
//	_ = m.Set(1, 2, 7)
//	row, _ := m.Row(1)                   // no-copy view: [0 0 7]
//	n := m.SizeInBytes()                 // reporting estimate
//	m.Release()                          // storage dropped; nil-safe
//
// Contracts:
//   - NewDense rejects rows<1 or cols<1 with ErrInvalidDimensions (which
//     wraps ErrAllocation) and oversize requests with ErrAllocation.
//   - Copy requires identical shapes (ErrShapeMismatch).
//   - Indexers never panic; they return ErrOutOfRange wrapped with context.
package matrix
