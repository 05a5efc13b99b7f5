// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/render"
	"github.com/katalvlaran/matcalc/internal/session"
	"github.com/katalvlaran/matcalc/matrix"
)

// runEnv is what a command body sees: an open session, a renderer for
// the configured language and the output formatter.
type runEnv struct {
	ctx   context.Context
	cmd   *cobra.Command
	out   *OutputFormatter
	r     *render.Renderer
	store session.Store
}

// commandFunc returns the JSON payload and the text lines of a result.
type commandFunc func(e *runEnv, args []string) (any, []string, error)

// run opens the session, executes fn and reports its outcome. Failures are
// written through the formatter and returned as *ExitError.
func run(opts *RootOptions, cmd *cobra.Command, args []string, fn commandFunc) error {
	tag, err := render.ParseLang(opts.Config.Lang)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeInvalidArgument, err)
	}

	e := &runEnv{
		cmd: cmd,
		out: &OutputFormatter{
			Format:  opts.Config.Format,
			Writer:  cmd.OutOrStdout(),
			Logger:  log.New(cmd.ErrOrStderr(), "matcalc: ", 0),
			Verbose: opts.Config.Verbose,
		},
		r: render.NewRenderer(tag),
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Config.Timeout)
	defer cancel()
	e.ctx = ctx

	store, closeStore, err := opts.openStore(e.out)
	if err != nil {
		return e.fail(withCode(ErrCodeStorage, err))
	}
	defer closeStore()
	e.store = store

	data, lines, err := fn(e, args)
	if err != nil {
		return e.fail(err)
	}
	if err := e.out.Success(data, lines); err != nil {
		return WrapExitError(ExitCommandError, ErrCodeGeneric, fmt.Errorf("write output: %w", err))
	}
	return nil
}

func (o *RootOptions) openStore(out *OutputFormatter) (session.Store, func(), error) {
	if o.Store != nil {
		return o.Store, func() {}, nil
	}
	s, err := session.OpenSQLite(o.Config.DBPath)
	if err != nil {
		return nil, nil, err
	}
	out.VerboseLog("opened session %s", o.Config.DBPath)
	return s, func() {
		if err := s.Close(); err != nil {
			out.VerboseLog("close session: %v", err)
		}
	}, nil
}

// fail reports err and converts it to an *ExitError.
func (e *runEnv) fail(err error) error {
	code, exit := classify(err)
	e.out.VerboseLog("%s: %v", code, err)
	if ferr := e.out.Error(code, e.r.Error(err), err.Error()); ferr != nil {
		return WrapExitError(ExitCommandError, ErrCodeGeneric, fmt.Errorf("write output: %w", ferr))
	}
	return WrapExitError(exit, code, err)
}

// parseIndex parses a session index argument.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("index %q: %w", s, errArgument)
	}
	return n, nil
}

// entry loads the session entry named by an index argument.
func (e *runEnv) entry(arg string) (session.Entry, error) {
	idx, err := parseIndex(arg)
	if err != nil {
		return session.Entry{}, err
	}
	got, err := e.store.Get(e.ctx, idx)
	if err != nil {
		return session.Entry{}, withCode(ErrCodeStorage, err)
	}
	e.out.VerboseLog("[%d] %s: %d×%d", got.Index, got.Label(), got.Matrix.Rows(), got.Matrix.Cols())
	return got, nil
}

// add stores m under name.
func (e *runEnv) add(name string, m *matrix.Matrix) (session.Entry, error) {
	added, err := e.store.Add(e.ctx, name, m)
	if err != nil {
		return session.Entry{}, withCode(ErrCodeStorage, err)
	}
	e.out.VerboseLog("stored [%d] %s as %s", added.Index, added.Label(), added.ID)
	return added, nil
}

func matrixLines(m *matrix.Matrix) []string {
	return strings.Split(matrix.Format(m), "\n")
}
