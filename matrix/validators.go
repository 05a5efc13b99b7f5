// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateSquare ensures m is n×n. Assumes m is not nil.
func ValidateSquare(m *Matrix) error {
	if m.r != m.c {
		return ErrNotSquare
	}
	return nil
}

// ValidateBinarySameShape = NotNil(a) → NotNil(b) → SameShape(a, b).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil = NotNil(m) → Square(m).
func ValidateSquareNonNil(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	return ValidateSquare(m)
}

// ValidateMulCompatible = NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateAugmentedSystem = NotNil(m) → m is n×(n+1).
// Used by SolveCramer: every row must carry n coefficients and one constant.
func ValidateAugmentedSystem(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.c != m.r+1 {
		return ErrDimensionMismatch
	}
	return nil
}
