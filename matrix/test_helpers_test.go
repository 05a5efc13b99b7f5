// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities.

package matrix_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// MustInts builds a matrix from integer rows or fails the test.
func MustInts(t testing.TB, rows [][]int64) *matrix.Matrix {
	t.Helper()
	require.NotEmpty(t, rows)
	m, err := matrix.NewFromInts(len(rows), len(rows[0]), rows)
	require.NoError(t, err)
	return m
}

// MustText builds a matrix from rational text rows ("1/2", "-3") or fails the test.
func MustText(t testing.TB, rows [][]string) *matrix.Matrix {
	t.Helper()
	require.NotEmpty(t, rows)
	data := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		data[i] = make([]rational.Rational, len(row))
		for j, s := range row {
			v, err := rational.Parse(s)
			require.NoError(t, err, "entry [%d,%d]=%q", i, j, s)
			data[i][j] = v
		}
	}
	m, err := matrix.New(len(rows), len(rows[0]), data)
	require.NoError(t, err)
	return m
}

// MustIdentity returns I(n) or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)
	return m
}

// RequireText asserts m equals the matrix written as rational text rows.
func RequireText(t testing.TB, want [][]string, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.True(t, MustText(t, want).Equal(m), "want\n%s\ngot\n%s", matrix.Format(MustText(t, want)), matrix.Format(m))
}

// RequireValues asserts a rational slice equals the given text values.
func RequireValues(t testing.TB, want []string, got []rational.Rational) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i], got[i].String(), "index %d", i)
	}
}

// goldenSteps compares a step log against testdata/golden/<name>.golden.
// Regenerate with: go test ./matrix -update
func goldenSteps(t *testing.T, name string, steps matrix.StepLog) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(steps.String()))
}

// fixtures shared by several test files.
var (
	// det = -3, needs a swap on the first pivot.
	swap3x3 = [][]int64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 3},
	}

	// det = 1, inverse [[1,-1],[-1,2]].
	unimodular2x2 = [][]int64{
		{2, 1},
		{1, 1},
	}

	// det = 0.
	singular2x2 = [][]int64{
		{1, 2},
		{2, 4},
	}

	// invertible 4×4 with a zero leading entry; det = -295/2.
	mixed4x4 = [][]string{
		{"0", "1", "2", "1/2"},
		{"3", "-1", "0", "2"},
		{"1", "4", "-2", "1"},
		{"2", "0", "1", "-3"},
	}
)
