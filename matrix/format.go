// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/rational"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtRowClose = " |"
	_fmtSep      = " | "
	_fmtLineSep  = "\n"
)

// Format renders one line per row, "| v0 | v1 | ... |", using each entry's
// rational text form (integers bare, others "num/den"). Lines are joined
// with "\n" and there is no trailing newline. A nil matrix renders as "".
//
// Example:
//
//	| 1 | -1/2 |
//	| 0 | 3 |
func Format(m *Matrix) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtLineSep)
		}
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

// matrixJSON is the wire form: {"rows":2,"cols":2,"data":[["1","1/2"],["0","3"]]}.
type matrixJSON struct {
	Rows int                   `json:"rows"`
	Cols int                   `json:"cols"`
	Data [][]rational.Rational `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Rows: m.r, Cols: m.c, Data: m.Data()})
}

// UnmarshalJSON implements json.Unmarshaler; the decoded value goes through New,
// so shape violations surface as ErrShapeMismatch / ErrInvalidDimensions.
func (m *Matrix) UnmarshalJSON(raw []byte) error {
	var w matrixJSON
	if err := json.Unmarshal(raw, &w); err != nil {
		return fmt.Errorf("matrix: decode json: %w", err)
	}
	built, err := New(w.Rows, w.Cols, w.Data)
	if err != nil {
		return err
	}
	*m = *built
	return nil
}
