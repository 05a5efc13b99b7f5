// SPDX-License-Identifier: MIT

// Package rational provides an exact, immutable fraction type.
//
// What & Why:
//
//	Rational holds an arbitrary-precision numerator and a strictly positive
//	denominator, always reduced to lowest terms. Zero tests and equality are
//	exact, so pivot and determinant checks in the matrix package never need
//	an epsilon.
//
// Usage:
//
//	half, _ := rational.New(1, 2)
//	third, _ := rational.Parse("1/3")
//	sum := half.Add(third)     // 5/6
//	q, err := sum.Div(third)   // 5/2
//
// Every operation returns a fresh value; the receiver is never modified.
// The zero value is the number 0 and is ready to use.
//
// Complexity:
//
//	Add/Sub/Mul/Div cost a big-integer gcd on the result, O(d²) in the
//	number of digits d.
package rational
