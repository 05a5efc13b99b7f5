// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

func TestSolveCramer_Known(t *testing.T) {
	x, err := matrix.SolveCramer(MustInts(t, [][]int64{{1, 1, 3}, {2, -1, 0}}))
	require.NoError(t, err)
	RequireValues(t, []string{"1", "2"}, x)

	x, err = matrix.SolveCramer(MustInts(t, [][]int64{{4, 8}}))
	require.NoError(t, err)
	RequireValues(t, []string{"2"}, x)

	// 2x + y - z = 8, -3x - y + 2z = -11, -2x + y + 2z = -3 → (2, 3, -1)
	x, err = matrix.SolveCramer(MustInts(t, [][]int64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}))
	require.NoError(t, err)
	RequireValues(t, []string{"2", "3", "-1"}, x)
}

func TestSolveCramer_FractionalSolution(t *testing.T) {
	// x + 2y = 1, 3x + 4y = 0 → x = -2, y = 3/2
	x, err := matrix.SolveCramer(MustInts(t, [][]int64{{1, 2, 1}, {3, 4, 0}}))
	require.NoError(t, err)
	RequireValues(t, []string{"-2", "3/2"}, x)
}

func TestSolveCramer_SatisfiesSystem(t *testing.T) {
	aug := MustText(t, [][]string{
		{"0", "1", "2", "1/2", "1"},
		{"3", "-1", "0", "2", "-2/3"},
		{"1", "4", "-2", "1", "0"},
		{"2", "0", "1", "-3", "5"},
	})
	x, err := matrix.SolveCramer(aug)
	require.NoError(t, err)

	for i := 0; i < aug.Rows(); i++ {
		row, err := aug.Row(i)
		require.NoError(t, err)
		var lhs rational.Rational
		for j, xj := range x {
			lhs = lhs.Add(row[j].Mul(xj))
		}
		require.True(t, lhs.Equal(row[len(row)-1]), "row %d: %s != %s", i, lhs, row[len(row)-1])
	}
}

func TestSolveCramer_NoUniqueSolution(t *testing.T) {
	_, err := matrix.SolveCramer(MustInts(t, [][]int64{{1, 2, 3}, {2, 4, 6}}))
	require.ErrorIs(t, err, matrix.ErrNoUniqueSolution)
}

func TestSolveCramer_DimensionMismatch(t *testing.T) {
	for _, m := range [][][]int64{
		{{1, 2}, {3, 4}},
		{{1, 2, 3, 4}, {5, 6, 7, 8}},
		{{1, 2, 3}},
	} {
		_, err := matrix.SolveCramer(MustInts(t, m))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}
