// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrDivisionByZero is returned for a zero denominator at construction
	// and for division by the zero value.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax is returned by Parse and UnmarshalText for text that is not
	// an integer, a fraction "n/d", or a finite decimal.
	ErrSyntax = errors.New("rational: invalid syntax")
)
