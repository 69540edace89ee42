// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Int with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Ownership:
//   - Every cell owns its *big.Int. At returns a copy and Set copies its input,
//     so no caller can alias (and silently mutate) a stored value.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1) plus the copy of one integer; Clone: O(r*c).

package matrix

import (
	"math/big"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of arbitrary-precision integers.
//   - r,c hold dimensions (rows, cols); zero is allowed.
//   - data is a flat buffer of length r*c, every slot non-nil.
type Dense struct {
	r, c int        // row and column counts (>=0)
	data []*big.Int // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and a fresh zero integer per cell.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]*big.Int, rows*cols)
	for i := range buf {
		buf[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i].SetInt64(1)
	}

	return I, nil
}

// NewFromInt64 builds a Dense from a rectangular [][]int64 literal.
// Ragged rows yield ErrDimensionMismatch. Intended for tests and fixtures.
func NewFromInt64(rows [][]int64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.data[i*c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Complexity: O(1) plus copying one integer.
func (m *Dense) At(row, col int) (*big.Int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(opAt, row, col, err)
	}

	return new(big.Int).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col). A nil v stores zero.
// Complexity: O(1) plus copying one integer.
func (m *Dense) Set(row, col int, v *big.Int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(opSet, row, col, err)
	}
	if v == nil {
		m.data[off].SetInt64(0)
		return nil
	}
	m.data[off].Set(v)

	return nil
}

// SetInt64 is Set for small literal values.
func (m *Dense) SetInt64(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(opSet, row, col, err)
	}
	m.data[off].SetInt64(v)

	return nil
}

// Clone returns a deep copy: new buffer, new integers.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]*big.Int, len(m.data))
	for i, v := range m.data {
		cp[i] = new(big.Int).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and cells.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
