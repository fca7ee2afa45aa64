// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major int64 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Row: O(r*c)/O(c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (> 0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]int64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for no rows or an empty first row.
//   - ErrDimensionMismatch for ragged input.
//
// Complexity: O(r*c).
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(row), d.c, ErrDimensionMismatch)
		}
		copy(d.data[i*d.c:(i+1)*d.c], row) // one contiguous copy per row
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method's tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports whether o has the same shape and cells as m.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line:
//
//	[2, 0, -2]
//	[0, 2, -1]
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
