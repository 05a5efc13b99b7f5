// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Algebra failure (singular matrix, incompatible shapes, ...)
	ExitCommandError = 2 // Command error (bad arguments, unknown index, I/O)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeInvalidArgument = "E002" // Unparsable index, number or row
	ErrCodeNotFound        = "E003" // No matrix with that index
	ErrCodeDocument        = "E004" // Invalid or unreadable matrix document
	ErrCodeStorage         = "E005" // Session store failure
	ErrCodeWriteFailed     = "E006" // File write error

	ErrCodeSingular         = "E101" // No nonzero pivot or det = 0
	ErrCodeNoUniqueSolution = "E102" // Cramer system with det(A) = 0
	ErrCodeNotSquare        = "E103" // Square matrix required
	ErrCodeDimension        = "E104" // Incompatible shapes
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// nil maps to ExitSuccess; errors that are not ExitErrors map to ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Logger  *log.Logger // Verbose/diagnostic output, kept off Writer so JSON stays clean
	Verbose bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E101", ...
	Message string `json:"message"`           // localized message
	Details string `json:"details,omitempty"` // underlying error text
}

// Success writes data as a JSON envelope, or lines as plain text.
func (f *OutputFormatter) Success(data any, lines []string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message, details string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != "" {
		fmt.Fprintf(f.Writer, "Details: %s\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose || f.Logger == nil {
		return
	}
	f.Logger.Printf(format, args...)
}
