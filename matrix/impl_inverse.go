// SPDX-License-Identifier: MIT

// Package matrix - cofactor matrix and the two inverse strategies.
//
// Both inverses return exactly the same matrix for every invertible input;
// they differ in cost and in what they explain:
//   - InverseByAdjugate: adj(A)ᵀ / det(A), O(n²·n!) via cofactor determinants.
//   - InverseByGaussJordan: reduce [A | I] to [I | A⁻¹], O(n³), with a StepLog.

package matrix

import (
	"github.com/katalvlaran/matcalc/rational"
)

// Adjugate returns the cofactor matrix C with C[i,j] = (-1)^(i+j)·det(Submatrix(M,i,j)).
// The result is NOT transposed; InverseByAdjugate transposes it.
// For a 1×1 input the single cofactor is the empty product, 1.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func Adjugate(m *Matrix) (*Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	return cofactors(m), nil
}

func cofactors(m *Matrix) *Matrix {
	n := m.r
	res := newMatrix(n, n)
	if n == 1 {
		res.data[0] = rational.One
		return res
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := laplace(minor(m, i, j))
			if (i+j)%2 == 1 {
				c = c.Neg()
			}
			res.data[i*n+j] = c
		}
	}
	return res
}

// InverseByAdjugate computes A⁻¹ = Transpose(Adjugate(A)) / det(A).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(A).
//   - Stage 2: det := Determinant(A); zero → ErrSingular.
//   - Stage 3: scale the transposed cofactor matrix by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular.
func InverseByAdjugate(m *Matrix) (*Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverseAdj, err)
	}

	det := laplace(m)
	if det.IsZero() {
		return nil, matrixErrorf(opInverseAdj, ErrSingular)
	}
	inv, err := det.Inv()
	if err != nil {
		return nil, matrixErrorf(opInverseAdj, err)
	}

	res := transpose(cofactors(m))
	for k, v := range res.data {
		res.data[k] = v.Mul(inv)
	}

	return res, nil
}

// InverseByGaussJordan builds the augmented n×2n matrix [A | I], runs the
// elimination kernel with pivots restricted to the first n columns, and
// returns the right n columns together with the step log.
//
// Behavior highlights:
//   - Same swap/normalize/eliminate records as Eliminate, over the wider rows.
//   - Aborts with no partial result when a row has no nonzero pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func InverseByGaussJordan(m *Matrix) (*Matrix, StepLog, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opInverseGJ, err)
	}

	n := m.r
	aug := augment(m, identity(n))
	steps, err := gaussJordan(aug, n)
	if err != nil {
		return nil, nil, matrixErrorf(opInverseGJ, err)
	}

	return columns(aug, n, 2*n), steps, nil
}
