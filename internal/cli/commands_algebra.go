// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// saveFlag adds --save NAME to a matrix-producing command.
type saveFlag struct {
	name string
}

func (s *saveFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.name, "save", "", "store the result under NAME")
}

// result renders a matrix result, storing it first when --save was given.
func (s *saveFlag) result(e *runEnv, m *matrix.Matrix, steps matrix.StepLog) (any, []string, error) {
	view := resultView{Matrix: m, Steps: steps}
	var lines []string
	if len(steps) > 0 {
		view.Log = e.r.Steps(steps)
		lines = append(lines, view.Log...)
	}
	lines = append(lines, e.r.Text("result.header"))
	lines = append(lines, matrixLines(m)...)

	if e.cmd.Flags().Changed("save") {
		added, err := e.add(s.name, m)
		if err != nil {
			return nil, nil, err
		}
		view.Saved = viewOf(added)
		lines = append(lines, e.r.Stored(added))
	}
	return view, lines, nil
}

// unaryCommand builds a command taking one index and producing a matrix.
func unaryCommand(rootOpts *RootOptions, use, short string, op func(*matrix.Matrix) (*matrix.Matrix, matrix.StepLog, error)) *cobra.Command {
	var save saveFlag
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				m, steps, err := op(a.Matrix)
				if err != nil {
					return nil, nil, err
				}
				return save.result(e, m, steps)
			})
		},
	}
	save.register(cmd)
	return cmd
}

// binaryCommand builds a command taking two indices and producing a matrix.
func binaryCommand(rootOpts *RootOptions, use, short string, op func(a, b *matrix.Matrix) (*matrix.Matrix, error)) *cobra.Command {
	var save saveFlag
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				b, err := e.entry(args[1])
				if err != nil {
					return nil, nil, err
				}
				m, err := op(a.Matrix, b.Matrix)
				if err != nil {
					return nil, nil, err
				}
				return save.result(e, m, nil)
			})
		},
	}
	save.register(cmd)
	return cmd
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return binaryCommand(rootOpts, "add A B", "Add two matrices of the same shape", matrix.Add)
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return binaryCommand(rootOpts, "sub A B", "Subtract B from A", matrix.Sub)
}

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	return binaryCommand(rootOpts, "mul A B", "Multiply A by B", matrix.Mul)
}

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand(rootOpts *RootOptions) *cobra.Command {
	return unaryCommand(rootOpts, "transpose A", "Transpose a matrix",
		func(m *matrix.Matrix) (*matrix.Matrix, matrix.StepLog, error) {
			t, err := matrix.Transpose(m)
			return t, nil, err
		})
}

// NewEliminateCommand creates the eliminate command.
func NewEliminateCommand(rootOpts *RootOptions) *cobra.Command {
	return unaryCommand(rootOpts, "eliminate A", "Gauss-Jordan elimination with a step log", matrix.Eliminate)
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	var save saveFlag
	cmd := &cobra.Command{
		Use:   "scale A K",
		Short: "Multiply every entry by the scalar K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				k, err := rational.Parse(args[1])
				if err != nil {
					return nil, nil, fmt.Errorf("scalar: %w", err)
				}
				m, err := matrix.Scale(a.Matrix, k)
				if err != nil {
					return nil, nil, err
				}
				return save.result(e, m, nil)
			})
		},
	}
	save.register(cmd)
	return cmd
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		save   saveFlag
		method string
	)
	cmd := &cobra.Command{
		Use:   "inverse A",
		Short: "Invert a square matrix",
		Long: `Invert a square matrix with the adjugate formula (default) or by
Gauss-Jordan elimination of [A | I], which also prints the step log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				m, err := parseInverseMethod(method)
				if err != nil {
					return nil, nil, err
				}
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				inv, steps, err := matrix.Inverse(a.Matrix, matrix.WithInverseMethod(m))
				if err != nil {
					return nil, nil, err
				}
				return save.result(e, inv, steps)
			})
		},
	}
	save.register(cmd)
	cmd.Flags().StringVar(&method, "method", matrix.DefaultInverseMethod.String(), "adjugate|gauss-jordan")
	return cmd
}

// NewDetCommand creates the det command.
func NewDetCommand(rootOpts *RootOptions) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "det A",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				m, err := parseDeterminantMethod(method)
				if err != nil {
					return nil, nil, err
				}
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				d, err := matrix.Det(a.Matrix, matrix.WithDeterminantMethod(m))
				if err != nil {
					return nil, nil, err
				}
				return determinantView{Method: m.String(), Determinant: d}, []string{e.r.Determinant(d)}, nil
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", matrix.DefaultDeterminantMethod.String(), "laplace|elimination")
	return cmd
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve A",
		Short: "Solve the n×(n+1) augmented system A with Cramer's rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rootOpts, cmd, args, func(e *runEnv, args []string) (any, []string, error) {
				a, err := e.entry(args[0])
				if err != nil {
					return nil, nil, err
				}
				xs, err := matrix.SolveCramer(a.Matrix)
				if err != nil {
					return nil, nil, err
				}
				lines := append([]string{e.r.Text("result.header")}, e.r.Solution(xs)...)
				return solutionView{Solution: xs}, lines, nil
			})
		},
	}
}

func parseInverseMethod(s string) (matrix.InverseMethod, error) {
	for _, m := range []matrix.InverseMethod{matrix.MethodAdjugate, matrix.MethodGaussJordan} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("inverse method %q: %w", s, errArgument)
}

func parseDeterminantMethod(s string) (matrix.DeterminantMethod, error) {
	for _, m := range []matrix.DeterminantMethod{matrix.MethodLaplace, matrix.MethodElimination} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("determinant method %q: %w", s, errArgument)
}
