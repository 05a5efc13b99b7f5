// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/document"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name       string
		rows, cols int
	)
	cmd := &cobra.Command{
		Use:   "new ROW...",
		Short: "Store a matrix typed row by row",
		Long: `Store a matrix. Each argument is one row of space-separated entries;
entries are integers, fractions (3/4) or decimals (0.25).

  matcalc new --name A "2 1" "1 1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				m, err := parseRows(args, rows, cols)
				if err != nil {
					return nil, nil, err
				}
				added, err := e.add(name, m)
				if err != nil {
					return nil, nil, err
				}
				return viewOf(added), append([]string{e.r.Stored(added)}, matrixLines(m)...), nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "matrix name")
	cmd.Flags().IntVar(&rows, "rows", 0, "declared row count (default: number of ROW arguments)")
	cmd.Flags().IntVar(&cols, "cols", 0, "declared column count (default: entries in the first row)")
	return cmd
}

// parseRows builds a matrix from row arguments. Zero rows/cols are inferred.
func parseRows(args []string, rows, cols int) (*matrix.Matrix, error) {
	data := make([][]rational.Rational, len(args))
	for i, arg := range args {
		fields := strings.Fields(arg)
		data[i] = make([]rational.Rational, len(fields))
		for j, f := range fields {
			v, err := rational.Parse(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			data[i][j] = v
		}
	}
	if rows == 0 {
		rows = len(data)
	}
	if cols == 0 {
		cols = len(data[0])
	}
	return matrix.New(rows, cols, data)
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Store every matrix of a YAML or CUE document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				named, err := document.Load(args[0])
				if err != nil {
					return nil, nil, withCode(ErrCodeDocument, err)
				}
				e.out.VerboseLog("loaded %d matrices from %s", len(named), args[0])

				views := make([]*entryView, 0, len(named))
				lines := make([]string, 0, len(named)+1)
				for _, n := range named {
					added, err := e.add(n.Name, n.Matrix)
					if err != nil {
						return nil, nil, err
					}
					views = append(views, viewOf(added))
					lines = append(lines, e.r.Stored(added))
				}
				lines = append(lines, e.r.Text("result.imported", len(named), args[0]))
				return views, lines, nil
			})
		},
	}
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the session to a YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				path := args[0]
				kind, err := document.KindFromPath(path)
				if err != nil {
					return nil, nil, err
				}
				if kind != document.KindYAML {
					return nil, nil, fmt.Errorf("export %s: only yaml output is supported: %w", path, document.ErrUnknownKind)
				}

				entries, err := e.store.List(e.ctx)
				if err != nil {
					return nil, nil, withCode(ErrCodeStorage, err)
				}
				named := make([]document.Named, len(entries))
				used := make(map[string]bool, len(entries))
				for i, en := range entries {
					// Document names must be unique and non-empty.
					name := en.Name
					if name == "" || used[name] {
						name = fmt.Sprintf("M%d", en.Index)
					}
					used[name] = true
					named[i] = document.Named{Name: name, Matrix: en.Matrix}
				}

				data, err := document.Encode(named)
				if err != nil {
					return nil, nil, withCode(ErrCodeDocument, err)
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return nil, nil, withCode(ErrCodeWriteFailed, fmt.Errorf("write %s: %w", path, err))
				}

				msg := e.r.Text("result.exported", len(named), path)
				return messageView{Message: msg, Count: len(named)}, []string{msg}, nil
			})
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored matrices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, _ []string) (any, []string, error) {
				entries, err := e.store.List(e.ctx)
				if err != nil {
					return nil, nil, withCode(ErrCodeStorage, err)
				}
				if len(entries) == 0 {
					return []*entryView{}, []string{e.r.Text("result.empty")}, nil
				}

				views := make([]*entryView, len(entries))
				var lines []string
				for i, en := range entries {
					views[i] = viewOf(en)
					lines = append(lines, entryLines(en)...)
				}
				return views, lines, nil
			})
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show IDX",
		Short: "Print one stored matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				en, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				return viewOf(en), entryLines(en), nil
			})
		},
	}
}

// NewDropCommand creates the drop command.
func NewDropCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "drop IDX",
		Aliases: []string{"rm"},
		Short:   "Remove a stored matrix; its index is not reused",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				idx, err := parseIndex(args[0])
				if err != nil {
					return nil, nil, err
				}
				if err := e.store.Remove(e.ctx, idx); err != nil {
					return nil, nil, withCode(ErrCodeStorage, err)
				}
				msg := e.r.Text("result.removed", idx)
				return messageView{Message: msg}, []string{msg}, nil
			})
		},
	}
}
