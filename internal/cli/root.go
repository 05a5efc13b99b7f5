// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/render"
	"github.com/katalvlaran/matcalc/internal/session"
)

// RootOptions holds global settings for all commands.
type RootOptions struct {
	Config config.Config

	// Store, when set, replaces the database named by Config.DBPath.
	// Commands never close it.
	Store session.Store
}

// NewRootCommand creates the root command for the matcalc CLI. Flag
// defaults come from opts.Config, so environment values apply unless a
// flag overrides them.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matcalc",
		Short: "Exact rational matrix calculator",
		Long: `matcalc stores matrices in a session and operates on them with exact
fractions: sums, products, Gauss-Jordan elimination with a step log,
determinants, inverses and Cramer's rule.

Matrices are addressed by the index printed when they are stored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := opts.Config.Validate()
			if err == nil {
				_, err = render.ParseLang(opts.Config.Lang)
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %v\n", ErrCodeInvalidArgument, err)
				return WrapExitError(ExitCommandError, ErrCodeInvalidArgument, err)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Config.DBPath, "db", opts.Config.DBPath, "session database path (:memory: for a throwaway session)")
	pf.StringVar(&opts.Config.Format, "format", opts.Config.Format, "output format (json|text)")
	pf.StringVar(&opts.Config.Lang, "lang", opts.Config.Lang, "message language (en|es)")
	pf.BoolVarP(&opts.Config.Verbose, "verbose", "v", opts.Config.Verbose, "verbose output")
	pf.DurationVar(&opts.Config.Timeout, "timeout", opts.Config.Timeout, "timeout for one command")

	cmd.AddCommand(
		NewNewCommand(opts),
		NewImportCommand(opts),
		NewExportCommand(opts),
		NewListCommand(opts),
		NewShowCommand(opts),
		NewDropCommand(opts),
		NewAddCommand(opts),
		NewSubCommand(opts),
		NewMulCommand(opts),
		NewScaleCommand(opts),
		NewTransposeCommand(opts),
		NewEliminateCommand(opts),
		NewInverseCommand(opts),
		NewDetCommand(opts),
		NewSolveCommand(opts),
	)

	return cmd
}
