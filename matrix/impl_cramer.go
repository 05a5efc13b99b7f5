// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/matcalc/rational"
)

// SolveCramer solves Ax = b given the augmented n×(n+1) matrix [A | b].
//
// Implementation:
//   - Stage 1: ValidateAugmentedSystem (every row has n+1 entries).
//   - Stage 2: split into A (first n columns) and b (last column); detA := det(A).
//   - Stage 3: for each i, replace column i of a copy of A with b; x_i = det(A_i)/detA.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNoUniqueSolution (detA == 0).
//
// Complexity:
//   - Time O((n+1)·n!) by the cofactor determinant, Space O(n²).
func SolveCramer(aug *Matrix) ([]rational.Rational, error) {
	if err := ValidateAugmentedSystem(aug); err != nil {
		return nil, matrixErrorf(opSolveCramer, err)
	}

	n := aug.r
	a := columns(aug, 0, n)
	detA := laplace(a)
	if detA.IsZero() {
		return nil, matrixErrorf(opSolveCramer, ErrNoUniqueSolution)
	}
	inv, err := detA.Inv()
	if err != nil {
		return nil, matrixErrorf(opSolveCramer, err)
	}

	x := make([]rational.Rational, n)
	for i := 0; i < n; i++ {
		ai := a.Clone()
		for r := 0; r < n; r++ {
			ai.set(r, i, aug.at(r, n))
		}
		x[i] = laplace(ai).Mul(inv)
	}

	return x, nil
}
