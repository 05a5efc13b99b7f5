// SPDX-License-Identifier: MIT

package document

import "errors"

var (
	// ErrUnknownKind is returned for file extensions other than .yaml, .yml and .cue.
	ErrUnknownKind = errors.New("document: unknown document kind")

	// ErrInvalidDocument is returned when a document fails schema validation.
	ErrInvalidDocument = errors.New("document: invalid document")

	// ErrDuplicateName is returned when two matrices share a name.
	ErrDuplicateName = errors.New("document: duplicate matrix name")
)
