// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/katalvlaran/matcalc/internal/session"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// entryView is the JSON form of a stored matrix.
type entryView struct {
	Index     int            `json:"index"`
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Matrix    *matrix.Matrix `json:"matrix"`
}

func viewOf(e session.Entry) *entryView {
	return &entryView{
		Index:     e.Index,
		ID:        e.ID.String(),
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		Matrix:    e.Matrix,
	}
}

// resultView is the JSON form of an operation result.
type resultView struct {
	Matrix *matrix.Matrix `json:"matrix"`
	Steps  matrix.StepLog `json:"steps,omitempty"`
	Log    []string       `json:"log,omitempty"`
	Saved  *entryView     `json:"saved,omitempty"`
}

type determinantView struct {
	Method      string            `json:"method"`
	Determinant rational.Rational `json:"determinant"`
}

type solutionView struct {
	Solution []rational.Rational `json:"solution"`
}

type messageView struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// entryLines renders "[i] name:" followed by the matrix.
func entryLines(e session.Entry) []string {
	return append([]string{fmt.Sprintf("[%d] %s:", e.Index, e.Label())}, matrixLines(e.Matrix)...)
}
