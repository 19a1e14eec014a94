// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int64 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep ownership explicit: a Dense owns its buffer until Release drops it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; At/Set/Row: O(1); Copy/Clone/Fill: O(r*c); SizeInBytes: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// MaxCells caps the number of cells a single Dense may hold. Requests above
// the cap fail with ErrAllocation instead of exhausting the process.
const MaxCells = math.MaxInt32

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtPosInf   = "+oo"
	_fmtNegInf   = "-oo"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 values.
//   - r,c hold dimensions (rows, cols), both ≥ 1 while the matrix is live.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A released Dense has data == nil and reports zero dimensions.
type Dense struct {
	r, c int     // row and column counts
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: guard rows*cols against int overflow and MaxCells; else ErrAllocation.
//   - Stage 3: allocate the flat buffer and fill it.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation; also matches ErrAllocation).
//   - ErrAllocation (buffer cannot be obtained).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, fill int64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrAllocation)
	}
	m := &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}
	if fill != 0 {
		m.Fill(fill)
	}

	return m, nil
}

// Rows returns the row count (0 once released).
// Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 once released).
// Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil || m.data == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a no-copy view of row i. Writes through the returned slice
// mutate the matrix; the slice is capped so appends never bleed into row i+1.
// MAIN DESCRIPTION:
//   - Hot-path accessor for row-wise dot products.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]int64, error) {
	off, err := m.indexOf(i, 0)
	if err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}

	return m.data[off : off+m.c : off+m.c], nil
}

// Fill overwrites every cell with v. No-op on a nil or released matrix.
// Complexity: O(r*c).
func (m *Dense) Fill(v int64) {
	if m == nil {
		return
	}
	for i := range m.data {
		m.data[i] = v
	}
}

// Copy overwrites dst with the contents of src.
// MAIN DESCRIPTION:
//   - Cell-by-cell copy between two live matrices of identical shape.
//
// Errors:
//   - ErrNilMatrix when either side is nil or released.
//   - ErrShapeMismatch unless src and dst have the same rows and cols.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Copy(src, dst *Dense) error {
	if src == nil || dst == nil || src.data == nil || dst.data == nil {
		return fmt.Errorf("Copy: %w", ErrNilMatrix)
	}
	if src.r != dst.r || src.c != dst.c {
		return fmt.Errorf("Copy(%dx%d -> %dx%d): %w", src.r, src.c, dst.r, dst.c, ErrShapeMismatch)
	}
	copy(dst.data, src.data)

	return nil
}

// Clone returns a deep copy with an independent buffer.
// A nil or released receiver clones to nil.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m == nil || m.data == nil {
		return nil
	}
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// SizeInBytes estimates the memory held by m for reporting: the cell buffer,
// one slice header per row and the struct itself. Returns 0 for nil or released.
// Complexity: O(1).
func (m *Dense) SizeInBytes() int {
	if m == nil || m.data == nil {
		return 0
	}
	var (
		cell   = int(unsafe.Sizeof(int64(0)))
		header = int(unsafe.Sizeof([]int64(nil)))
		self   = int(unsafe.Sizeof(*m))
	)

	return m.r*m.c*cell + m.r*header + self
}

// Release drops the backing storage. Safe on nil; idempotent.
// After Release every accessor returns ErrNilMatrix.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// math.MaxInt64 and math.MinInt64 print as +oo and -oo.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil || m.data == nil {
		return ""
	}
	var (
		b          strings.Builder
		i, j, base int
	)
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatCell(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func formatCell(v int64) string {
	switch v {
	case math.MaxInt64:
		return _fmtPosInf
	case math.MinInt64:
		return _fmtNegInf
	default:
		return strconv.FormatInt(v, 10)
	}
}
