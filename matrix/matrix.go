// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep the value immutable to callers: no exported mutators exist; internal
//     kernels mutate only matrices they allocated themselves.
//
// Complexity quicksheet:
//   - New: O(r*c); At: O(1); Clone: O(r*c); Data/Row: O(r*c)/O(c) copies.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matcalc/rational"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// Matrix is a rectangular grid of rational numbers.
//   - r,c hold dimensions (rows, cols), both >= 1 for public values.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix struct {
	r, c int
	data []rational.Rational
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// denseErrorf wraps an error with a uniform context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New builds a rows×cols matrix from row slices.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: require len(data)==rows and len(data[i])==cols for every i; else ErrShapeMismatch.
//   - Stage 3: copy entries into a fresh row-major buffer.
//
// The input slices are copied; later changes to them do not affect the result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, data [][]rational.Rational) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows {
		return nil, fmt.Errorf("New: got %d rows, declared %d: %w", len(data), rows, ErrShapeMismatch)
	}
	m := newMatrix(rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("New: row %d has %d entries, declared %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromInts is New for integer data.
func NewFromInts(rows, cols int, data [][]int64) (*Matrix, error) {
	conv := make([][]rational.Rational, len(data))
	for i, row := range data {
		conv[i] = make([]rational.Rational, len(row))
		for j, v := range row {
			conv[i][j] = rational.FromInt(v)
		}
	}

	return New(rows, cols, conv)
}

// Zeros returns a rows×cols zero matrix.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newMatrix(rows, cols), nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return identity(n), nil
}

// newMatrix allocates a zero-filled r×c matrix without validation.
// The zero rational.Rational is 0, so make() yields a zero matrix.
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]rational.Rational, r*c)}
}

// identity allocates I(n) without validation.
func identity(n int) *Matrix {
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rational.One
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// At returns the entry at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return rational.Rational{}, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i or ErrOutOfRange.
func (m *Matrix) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Data returns a deep copy of the entries as row slices.
func (m *Matrix) Data() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	for i := range out {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns an independent copy.
// Rational values are immutable, so copying the flat slice is a deep copy.
func (m *Matrix) Clone() *Matrix {
	buf := make([]rational.Rational, len(m.data))
	copy(buf, m.data)
	return &Matrix{r: m.r, c: m.c, data: buf}
}

// Equal reports whether both matrices have the same shape and exactly equal entries.
// Two nil matrices are equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}
	return true
}

// String returns Format(m).
func (m *Matrix) String() string { return Format(m) }

// ---------- internal row helpers (used only on private working copies) ----------

func (m *Matrix) at(i, j int) rational.Rational { return m.data[i*m.c+j] }

func (m *Matrix) set(i, j int, v rational.Rational) { m.data[i*m.c+j] = v }

// swapRows exchanges rows i and j in place.
func (m *Matrix) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
