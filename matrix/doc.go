// Package matrix implements exact linear algebra over rational numbers.
//
// What & Why:
//
//	Matrix is a rectangular, row-major grid of rational.Rational values.
//	Because every entry is an exact fraction, zero tests on pivots and
//	determinants are exact and results are reproducible bit for bit.
//
// The package provides:
//
//   - Construction with shape validation (New, NewFromInts, Identity, Zeros).
//   - Basic algebra: Add, Sub, Mul, Scale, Transpose, Augment.
//   - Gauss-Jordan elimination returning the reduced matrix and a StepLog.
//   - Determinant by first-row Laplace expansion (and an O(n³) alternative).
//   - Adjugate, inverse by adjugate, inverse by Gauss-Jordan.
//   - Cramer's-rule solving of n×(n+1) augmented systems.
//   - Format: the "| a | b |" text form, and a JSON form.
//
// Matrices are never mutated by any exported function; every operation
// returns a new *Matrix and works on private clones internally, so values
// may be shared across goroutines.
//
// Complexity:
//
//	Determinant, Adjugate and SolveCramer are O(n!) by design (recursive
//	cofactor expansion) and meant for small matrices. Elimination-based
//	routines are O(n³) rational operations.
package matrix
