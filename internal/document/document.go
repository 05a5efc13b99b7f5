// SPDX-License-Identifier: MIT

package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

//go:embed schema.cue
var schemaCUE string

// Kind is a document encoding.
type Kind int

const (
	// KindYAML is a YAML document (.yaml, .yml).
	KindYAML Kind = iota + 1
	// KindCUE is a CUE document (.cue).
	KindCUE
)

// String returns "yaml" or "cue".
func (k Kind) String() string {
	switch k {
	case KindYAML:
		return "yaml"
	case KindCUE:
		return "cue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromPath picks the document kind from the file extension.
func KindFromPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return KindYAML, nil
	case ".cue":
		return KindCUE, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownKind)
	}
}

// Named is a matrix together with its document name.
type Named struct {
	Name   string
	Matrix *matrix.Matrix
}

type rawDocument struct {
	Matrices []rawMatrix `yaml:"matrices" json:"matrices"`
}

type rawMatrix struct {
	Name string    `yaml:"name" json:"name"`
	Rows int       `yaml:"rows" json:"rows"`
	Cols int       `yaml:"cols" json:"cols"`
	Data []flowRow `yaml:"data" json:"data"`
}

// flowRow is one matrix row; it is written in YAML flow style.
type flowRow []string

// MarshalYAML renders the row as ["a", "b"].
func (r flowRow) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range r {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: s,
			Style: yaml.DoubleQuotedStyle,
		})
	}
	return n, nil
}

// Load reads the file at path and parses it according to its extension.
func Load(path string) ([]Named, error) {
	kind, err := KindFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(path, data, kind)
}

// Parse decodes, validates and builds the matrices of one document.
// name is used in error messages and CUE positions.
func Parse(name string, data []byte, kind Kind) ([]Named, error) {
	ctx := cuecontext.New()

	var v cue.Value
	switch kind {
	case KindYAML:
		var raw rawDocument
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: parse yaml: %w", name, err)
		}
		v = ctx.Encode(raw)
	case KindCUE:
		v = ctx.CompileBytes(data, cue.Filename(name))
	default:
		return nil, fmt.Errorf("%s: %v: %w", name, kind, ErrUnknownKind)
	}
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidDocument, err)
	}

	raw, err := validate(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return build(raw)
}

// validate unifies v with #Document and decodes the concrete result.
func validate(ctx *cue.Context, v cue.Value) (rawDocument, error) {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return rawDocument{}, fmt.Errorf("compile schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Document")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return rawDocument{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var raw rawDocument
	if err := unified.Decode(&raw); err != nil {
		return rawDocument{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return raw, nil
}

func build(raw rawDocument) ([]Named, error) {
	out := make([]Named, 0, len(raw.Matrices))
	seen := make(map[string]bool, len(raw.Matrices))
	for _, rm := range raw.Matrices {
		if seen[rm.Name] {
			return nil, fmt.Errorf("matrix %q: %w", rm.Name, ErrDuplicateName)
		}
		seen[rm.Name] = true

		data := make([][]rational.Rational, len(rm.Data))
		for i, row := range rm.Data {
			data[i] = make([]rational.Rational, len(row))
			for j, s := range row {
				v, err := rational.Parse(s)
				if err != nil {
					return nil, fmt.Errorf("matrix %q [%d,%d]: %w", rm.Name, i, j, err)
				}
				data[i][j] = v
			}
		}

		m, err := matrix.New(rm.Rows, rm.Cols, data)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", rm.Name, err)
		}
		out = append(out, Named{Name: rm.Name, Matrix: m})
	}
	return out, nil
}

// Encode writes named matrices as a YAML document that Parse accepts.
func Encode(named []Named) ([]byte, error) {
	raw := rawDocument{Matrices: make([]rawMatrix, 0, len(named))}
	for _, n := range named {
		if n.Matrix == nil {
			return nil, fmt.Errorf("matrix %q: %w", n.Name, matrix.ErrNilMatrix)
		}
		rows := n.Matrix.Data()
		rm := rawMatrix{Name: n.Name, Rows: n.Matrix.Rows(), Cols: n.Matrix.Cols(), Data: make([]flowRow, len(rows))}
		for i, row := range rows {
			rm.Data[i] = make(flowRow, len(row))
			for j, v := range row {
				rm.Data[i][j] = v.String()
			}
		}
		raw.Matrices = append(raw.Matrices, rm)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
