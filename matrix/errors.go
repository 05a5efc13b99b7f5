// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/matcalc/rational"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Facades wrap with matrixErrorf(opX, ErrY) so the message reads
// "Inverse: matrix: singular matrix" while errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch / not square -> singular / no unique solution.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch is returned by constructors when the supplied rows do not
	// match the declared rows×cols shape.
	ErrShapeMismatch = errors.New("matrix: data shape does not match declared dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a Cramer
	// system that is not n×(n+1).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no nonzero pivot for a row,
	// or when the adjugate inverse sees a zero determinant.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoUniqueSolution is returned by SolveCramer when det(A) == 0.
	ErrNoUniqueSolution = errors.New("matrix: system has no unique solution")

	// ErrNilMatrix indicates that a nil *Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrDivisionByZero aliases the rational sentinel so callers of this package
// can match every arithmetic failure without importing rational.
var ErrDivisionByZero = rational.ErrDivisionByZero
