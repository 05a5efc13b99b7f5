// Package matcalc is an exact-arithmetic matrix calculator: every entry is
// a fraction, so results never carry rounding error.
//
// 🚀 What is matcalc?
//
//	A small linear-algebra engine plus the tooling around it:
//		• Rationals: arbitrary-precision fractions in lowest terms
//		• Matrices: add, subtract, multiply, scale, transpose, augment
//		• Gauss-Jordan elimination with a step-by-step log
//		• Determinant: Laplace expansion, or elimination for larger inputs
//		• Inverse: adjugate formula or Gauss-Jordan on [A | I]
//		• Cramer's rule for n×(n+1) augmented systems
//
// ✨ Why matcalc?
//
//   - Exact: 1/3 stays 1/3; singular means exactly singular
//   - Auditable: elimination returns its steps as values, never prints them
//   - Immutable: operations return new matrices; inputs are never touched
//
// Layout:
//
//	rational/            the Rational value type
//	matrix/              Matrix, algebra, elimination, determinant, inverse, Cramer
//	internal/document/   YAML and CUE matrix documents
//	internal/session/    indexed matrix store (memory or SQLite)
//	internal/render/     English and Spanish messages
//	internal/config/     MATCALC_* environment settings
//	internal/cli/        the cobra command tree
//	cmd/matcalc/         the binary
//
// Quick example:
//
//	| 2 | 1 |    det = 1    | 1 | -1 |
//	| 1 | 1 |    ──────▶    | -1 | 2 |
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
