// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination with an explicit step log.
//
// Purpose:
//   - Reduce a matrix row by row and report every action taken as a value
//     (StepLog) instead of printing it.
//   - Share one kernel between Eliminate and InverseByGaussJordan so both
//     produce the same swap/normalize/eliminate contract.
//
// Pivot policy:
//   - If (i,i) is zero, the FIRST row below i with a nonzero entry in column i
//     is swapped in. No magnitude-based pivoting: arithmetic is exact, and the
//     simpler rule keeps step logs reproducible.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/rational"
)

// StepKind classifies a row operation.
type StepKind uint8

const (
	// StepSwap exchanges two rows to bring a nonzero pivot into place.
	StepSwap StepKind = iota + 1
	// StepNormalize divides the pivot row by its pivot.
	StepNormalize
	// StepEliminate subtracts a multiple of the pivot row from another row.
	StepEliminate
)

var stepKindNames = map[StepKind]string{
	StepSwap:      "swap",
	StepNormalize: "normalize",
	StepEliminate: "eliminate",
}

// String returns "swap", "normalize" or "eliminate".
func (k StepKind) String() string {
	if s, ok := stepKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k StepKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StepKind) UnmarshalText(text []byte) error {
	for kind, name := range stepKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("matrix: unknown step kind %q", text)
}

// Step records one row operation. Row indices are 0-based.
//   - StepSwap:      Row and Source were exchanged; Value is zero.
//   - StepNormalize: Row was divided by Value (the pivot); Source == Row.
//   - StepEliminate: Value × row Source was subtracted from Row.
type Step struct {
	Kind   StepKind          `json:"kind"`
	Row    int               `json:"row"`
	Source int               `json:"source"`
	Value  rational.Rational `json:"value"`
}

// String renders the step in English with 1-based row numbers.
func (s Step) String() string {
	switch s.Kind {
	case StepSwap:
		return fmt.Sprintf("swap row %d and row %d", s.Row+1, s.Source+1)
	case StepNormalize:
		return fmt.Sprintf("normalize row %d by dividing by %s", s.Row+1, s.Value)
	case StepEliminate:
		return fmt.Sprintf("subtract %s × row %d from row %d", s.Value, s.Source+1, s.Row+1)
	default:
		return s.Kind.String()
	}
}

// StepLog is the ordered list of operations performed by an elimination.
type StepLog []Step

// Lines renders each step with Step.String.
func (l StepLog) Lines() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.String()
	}
	return out
}

// String joins Lines with newlines.
func (l StepLog) String() string { return strings.Join(l.Lines(), "\n") }

// Count returns how many steps of the given kind were recorded.
func (l StepLog) Count(kind StepKind) int {
	n := 0
	for _, s := range l {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Eliminate runs Gauss-Jordan elimination on a copy of m.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); clone m into a private working matrix.
//   - Stage 2: for i = 0..rows-1 run gaussJordanStep (swap if needed,
//     normalize, eliminate all other rows).
//   - Stage 3: return the reduced copy and the step log.
//
// Behavior highlights:
//   - m is never modified.
//   - Rows whose entry in the pivot column is already zero are not touched
//     and produce no StepEliminate record.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrSingular when no nonzero pivot exists for some row i, including
//     i >= Cols() (a tall matrix runs out of pivot columns).
//
// Complexity:
//   - Time O(r²·c) rational operations, Space O(r*c).
func Eliminate(m *Matrix) (*Matrix, StepLog, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opEliminate, err)
	}

	work := m.Clone()
	steps, err := gaussJordan(work, work.c)
	if err != nil {
		return nil, nil, matrixErrorf(opEliminate, err)
	}

	return work, steps, nil
}

// gaussJordan reduces w IN PLACE, taking pivots from columns 0..pivotCols-1.
// Only callers that own w (a fresh clone or augmented buffer) may use it.
func gaussJordan(w *Matrix, pivotCols int) (StepLog, error) {
	steps := make(StepLog, 0, w.r*w.r)
	for i := 0; i < w.r; i++ {
		if i >= pivotCols {
			return nil, fmt.Errorf("row %d: no pivot column left: %w", i+1, ErrSingular)
		}

		// 1) Bring a nonzero pivot into (i,i): first nonzero row below wins.
		if w.at(i, i).IsZero() {
			swapped := false
			for j := i + 1; j < w.r; j++ {
				if !w.at(j, i).IsZero() {
					w.swapRows(i, j)
					steps = append(steps, Step{Kind: StepSwap, Row: i, Source: j})
					swapped = true
					break
				}
			}
			if !swapped {
				return nil, fmt.Errorf("row %d: no nonzero pivot in column %d: %w", i+1, i+1, ErrSingular)
			}
		}

		// 2) Normalize the pivot row.
		pivot := w.at(i, i)
		inv, err := pivot.Inv()
		if err != nil {
			return nil, err
		}
		for k := 0; k < w.c; k++ {
			w.set(i, k, w.at(i, k).Mul(inv))
		}
		steps = append(steps, Step{Kind: StepNormalize, Row: i, Source: i, Value: pivot})

		// 3) Clear column i in every other row.
		for j := 0; j < w.r; j++ {
			if j == i {
				continue
			}
			factor := w.at(j, i)
			if factor.IsZero() {
				continue
			}
			for k := 0; k < w.c; k++ {
				w.set(j, k, w.at(j, k).Sub(factor.Mul(w.at(i, k))))
			}
			steps = append(steps, Step{Kind: StepEliminate, Row: j, Source: i, Value: factor})
		}
	}

	return steps, nil
}
