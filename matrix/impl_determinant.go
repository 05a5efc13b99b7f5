// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matcalc/rational"
)

// Determinant computes det(M) by first-row Laplace (cofactor) expansion:
//
//	det(M) = Σ_{col} (-1)^col · M[0,col] · det(Submatrix(M, 0, col)), det([a]) = a.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n!) by design; intended for small matrices. Use
//     DeterminantByElimination (or Det with MethodElimination) for larger ones.
func Determinant(m *Matrix) (rational.Rational, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return rational.Rational{}, matrixErrorf(opDeterminant, err)
	}
	return laplace(m), nil
}

// laplace assumes m is square and non-empty.
func laplace(m *Matrix) rational.Rational {
	if m.r == 1 {
		return m.data[0]
	}
	var det rational.Rational
	for col := 0; col < m.c; col++ {
		a := m.data[col]
		if a.IsZero() {
			continue // a zero entry contributes a zero term
		}
		term := a.Mul(laplace(minor(m, 0, col)))
		if col%2 == 1 {
			det = det.Sub(term)
		} else {
			det = det.Add(term)
		}
	}
	return det
}

// Submatrix returns M with row exRow and column exCol removed, keeping the
// relative order of the remaining entries.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when M has a single row or column (nothing would remain).
//   - ErrOutOfRange for indices outside M.
func Submatrix(m *Matrix, exRow, exCol int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}
	if exRow < 0 || exRow >= m.r || exCol < 0 || exCol >= m.c {
		return nil, matrixErrorf(opSubmatrix, fmt.Errorf("(%d,%d): %w", exRow, exCol, ErrOutOfRange))
	}
	return minor(m, exRow, exCol), nil
}

// minor is Submatrix without validation.
func minor(m *Matrix, exRow, exCol int) *Matrix {
	res := newMatrix(m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == exRow {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == exCol {
				continue
			}
			res.data[k] = m.data[i*m.c+j]
			k++
		}
	}
	return res
}

// DeterminantByElimination computes det(M) as the signed product of the
// pivots met while reducing a copy of M to upper-triangular form. It uses
// the same "first nonzero below" pivot rule as Eliminate; each swap flips
// the sign. A column with no pivot means det(M) == 0.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²).
func DeterminantByElimination(m *Matrix) (rational.Rational, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return rational.Rational{}, matrixErrorf(opDeterminantElim, err)
	}

	w := m.Clone()
	n := w.r
	det := rational.One
	for i := 0; i < n; i++ {
		if w.at(i, i).IsZero() {
			p := -1
			for j := i + 1; j < n; j++ {
				if !w.at(j, i).IsZero() {
					p = j
					break
				}
			}
			if p < 0 {
				return rational.Zero, nil
			}
			w.swapRows(i, p)
			det = det.Neg()
		}

		pivot := w.at(i, i)
		det = det.Mul(pivot)
		inv, err := pivot.Inv()
		if err != nil {
			return rational.Rational{}, matrixErrorf(opDeterminantElim, err)
		}
		for j := i + 1; j < n; j++ {
			f := w.at(j, i)
			if f.IsZero() {
				continue
			}
			f = f.Mul(inv)
			for k := i; k < n; k++ {
				w.set(j, k, w.at(j, k).Sub(f.Mul(w.at(i, k))))
			}
		}
	}

	return det, nil
}
