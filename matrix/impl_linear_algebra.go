// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Matrix values,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and horizontal augmentation. All functions
// perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Elimination, determinant, inverse and Cramer kernels live in their own
//     impl_* files (same package) to keep roles clean.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matcalc/rational"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opMul             = "Mul"
	opTranspose       = "Transpose"
	opScale           = "Scale"
	opAugment         = "Augment"
	opSubmatrix       = "Submatrix"
	opEliminate       = "Eliminate"
	opDeterminant     = "Determinant"
	opAdjugate        = "Adjugate"
	opInverse         = "Inverse"
	opInverseAdj      = "InverseByAdjugate"
	opInverseGJ       = "InverseByGaussJordan"
	opSolveCramer     = "SolveCramer"
	opDeterminantElim = "DeterminantByElimination"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Inverse: matrix: singular matrix").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (negate=false) or a - b (negate=true).
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, negate bool, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix(a.r, a.c)
	for k := range a.data {
		if negate {
			res.data[k] = a.data[k].Sub(b.data[k])
		} else {
			res.data[k] = a.data[k].Add(b.data[k])
		}
	}

	return res, nil
}

// Add returns a + b. Shapes must match exactly.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b. Shapes must match exactly.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product C = A×B (A is r×n, B is n×c).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j loop order; zero a[i,k] terms are skipped since they add nothing.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := newMatrix(rows, cols)
	var (
		i, j, k int
		aik     rational.Rational
	)
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			if aik.IsZero() {
				continue
			}
			for j = 0; j < cols; j++ {
				res.data[i*cols+j] = res.data[i*cols+j].Add(aik.Mul(b.data[k*cols+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns Mᵀ as a new matrix.
// Complexity: O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	return transpose(m), nil
}

func transpose(m *Matrix) *Matrix {
	res := newMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return res
}

// Scale returns alpha·M.
// Complexity: O(r*c).
func Scale(m *Matrix, alpha rational.Rational) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newMatrix(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v.Mul(alpha)
	}
	return res, nil
}

// Augment concatenates a and b horizontally into [a | b].
// Both operands must have the same number of rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Rows != b.Rows).
//
// Complexity:
//   - Time O(r*(ca+cb)).
func Augment(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	return augment(a, b), nil
}

func augment(a, b *Matrix) *Matrix {
	cols := a.c + b.c
	res := newMatrix(a.r, cols)
	for i := 0; i < a.r; i++ {
		copy(res.data[i*cols:i*cols+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[i*cols+a.c:(i+1)*cols], b.data[i*b.c:(i+1)*b.c])
	}
	return res
}

// columns copies the column range [from, to) of m into a new matrix.
func columns(m *Matrix, from, to int) *Matrix {
	w := to - from
	res := newMatrix(m.r, w)
	for i := 0; i < m.r; i++ {
		copy(res.data[i*w:(i+1)*w], m.data[i*m.c+from:i*m.c+to])
	}
	return res
}
