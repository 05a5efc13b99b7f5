// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/katalvlaran/matcalc/internal/document"
	"github.com/katalvlaran/matcalc/internal/session"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// errArgument marks errors caused by unparsable command arguments.
var errArgument = errors.New("invalid argument")

// errorClasses maps sentinels to an error code and exit code; first match wins.
var errorClasses = []struct {
	err  error
	code string
	exit int
}{
	{matrix.ErrNoUniqueSolution, ErrCodeNoUniqueSolution, ExitFailure},
	{matrix.ErrSingular, ErrCodeSingular, ExitFailure},
	{matrix.ErrNotSquare, ErrCodeNotSquare, ExitFailure},
	{matrix.ErrDimensionMismatch, ErrCodeDimension, ExitFailure},
	{document.ErrInvalidDocument, ErrCodeDocument, ExitCommandError},
	{document.ErrDuplicateName, ErrCodeDocument, ExitCommandError},
	{document.ErrUnknownKind, ErrCodeDocument, ExitCommandError},
	{session.ErrNotFound, ErrCodeNotFound, ExitCommandError},
	{errArgument, ErrCodeInvalidArgument, ExitCommandError},
	{rational.ErrSyntax, ErrCodeInvalidArgument, ExitCommandError},
	{rational.ErrDivisionByZero, ErrCodeInvalidArgument, ExitCommandError},
	{matrix.ErrShapeMismatch, ErrCodeInvalidArgument, ExitCommandError},
	{matrix.ErrInvalidDimensions, ErrCodeInvalidArgument, ExitCommandError},
}

// codedError attaches an error code to failures that have no sentinel,
// such as storage and file I/O errors.
type codedError struct {
	code string
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func withCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

// classify returns the error code and exit code for err. Sentinels win over
// codes attached with withCode.
func classify(err error) (string, int) {
	for _, c := range errorClasses {
		if errors.Is(err, c.err) {
			return c.code, c.exit
		}
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code, ExitCommandError
	}
	return ErrCodeGeneric, ExitCommandError
}
