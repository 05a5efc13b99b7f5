// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/session"
)

// testConfig is the configuration every test starts from.
func testConfig() config.Config {
	return config.Config{
		DBPath:  ":memory:",
		Format:  config.FormatText,
		Lang:    "en",
		Timeout: 5 * time.Second,
	}
}

// harness runs several commands against one shared session.
type harness struct {
	t     *testing.T
	store session.Store
	cfg   config.Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, store: session.NewMemoryStore(), cfg: testConfig()}
}

// exec runs one command line and returns stdout, stderr and the error.
func (h *harness) exec(args ...string) (string, string, error) {
	h.t.Helper()
	cmd := NewRootCommand(&RootOptions{Config: h.cfg, Store: h.store})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// mustExec runs a command line that must succeed and returns stdout.
func (h *harness) mustExec(args ...string) string {
	h.t.Helper()
	out, _, err := h.exec(args...)
	require.NoError(h.t, err, "matcalc %v\n%s", args, out)
	return out
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
