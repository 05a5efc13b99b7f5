// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/matcalc/internal/document"
	"github.com/katalvlaran/matcalc/internal/session"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// ErrUnsupportedLanguage is returned by ParseLang for languages without a catalog.
var ErrUnsupportedLanguage = errors.New("render: unsupported language")

var baseLocale = language.English

// Supported lists the catalog languages; the first is the default.
var Supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(Supported)

// ParseLang resolves a BCP 47 string ("es", "es-MX", "en-US") to a
// supported language. An empty string selects English.
func ParseLang(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return baseLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%q: %w", s, ErrUnsupportedLanguage)
	}
	return Supported[idx], nil
}

// Renderer prints messages in one language.
type Renderer struct {
	tag language.Tag
	p   *message.Printer
}

// NewRenderer returns a Renderer for tag. Tags without a catalog fall back
// to English.
func NewRenderer(tag language.Tag) *Renderer {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	t := Supported[idx]
	return &Renderer{tag: t, p: message.NewPrinter(t, message.Catalog(defaultCatalog))}
}

// Language returns the language the renderer prints in.
func (r *Renderer) Language() language.Tag { return r.tag }

// Text prints the catalog message key with args.
func (r *Renderer) Text(key string, args ...any) string {
	return r.p.Sprintf(key, args...)
}

// Step renders one step with 1-based row numbers.
func (r *Renderer) Step(s matrix.Step) string {
	switch s.Kind {
	case matrix.StepSwap:
		return r.p.Sprintf("step.swap", s.Row+1, s.Source+1)
	case matrix.StepNormalize:
		return r.p.Sprintf("step.normalize", s.Row+1, s.Value.String())
	case matrix.StepEliminate:
		return r.p.Sprintf("step.eliminate", s.Value.String(), s.Source+1, s.Row+1)
	default:
		return s.String()
	}
}

// Steps renders a whole step log, one line per step.
func (r *Renderer) Steps(log matrix.StepLog) []string {
	out := make([]string, len(log))
	for i, s := range log {
		out[i] = r.Step(s)
	}
	return out
}

// Solution renders Cramer results as "x1 = …" lines.
func (r *Renderer) Solution(xs []rational.Rational) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = r.p.Sprintf("result.solution", i+1, x.String())
	}
	return out
}

// Determinant renders a determinant value.
func (r *Renderer) Determinant(d rational.Rational) string {
	return r.p.Sprintf("result.determinant", d.String())
}

// Stored confirms that an entry was added to the session.
func (r *Renderer) Stored(e session.Entry) string {
	return r.p.Sprintf("result.stored", e.Label(), e.Index)
}

// errorKeys maps sentinels to catalog keys. Order matters only for
// errors that wrap more than one sentinel; the first match wins.
var errorKeys = []struct {
	err error
	key string
}{
	{matrix.ErrNoUniqueSolution, "error.no_unique_solution"},
	{matrix.ErrSingular, "error.singular"},
	{matrix.ErrNotSquare, "error.not_square"},
	{matrix.ErrDimensionMismatch, "error.dimension_mismatch"},
	{matrix.ErrShapeMismatch, "error.shape_mismatch"},
	{matrix.ErrInvalidDimensions, "error.invalid_dimensions"},
	{matrix.ErrOutOfRange, "error.out_of_range"},
	{matrix.ErrNilMatrix, "error.nil_matrix"},
	{session.ErrNilMatrix, "error.nil_matrix"},
	{rational.ErrDivisionByZero, "error.division_by_zero"},
	{rational.ErrSyntax, "error.syntax"},
	{session.ErrNotFound, "error.not_found"},
	{document.ErrInvalidDocument, "error.invalid_document"},
}

// ErrorKey returns the catalog key for err, or "" if err matches no known sentinel.
func ErrorKey(err error) string {
	for _, ek := range errorKeys {
		if errors.Is(err, ek.err) {
			return ek.key
		}
	}
	return ""
}

// Error renders err as a localized sentence. Unknown errors are embedded
// verbatim in a generic message.
func (r *Renderer) Error(err error) string {
	if err == nil {
		return ""
	}
	if key := ErrorKey(err); key != "" {
		return r.p.Sprintf(key)
	}
	return r.p.Sprintf("error.generic", err.Error())
}
