// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestDeterminant_Known(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *matrix.Matrix
		want string
	}{
		{"1x1", MustText(t, [][]string{{"-7/3"}}), "-7/3"},
		{"unimodular 2x2", MustInts(t, unimodular2x2), "1"},
		{"singular 2x2", MustInts(t, singular2x2), "0"},
		{"swap 3x3", MustInts(t, swap3x3), "-3"},
		{"identity 4x4", MustIdentity(t, 4), "1"},
		{"mixed 4x4", MustText(t, mixed4x4), "-295/2"},
		{"upper triangular", MustInts(t, [][]int64{{2, 5, 7}, {0, 3, 1}, {0, 0, -4}}), "-24"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())

			e, err := matrix.DeterminantByElimination(tc.m)
			require.NoError(t, err)
			assert.True(t, d.Equal(e), "laplace %s != elimination %s", d, e)
		})
	}
}

func TestDeterminant_NotSquare(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Determinant(m)
	require.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.DeterminantByElimination(m)
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestDeterminant_TransposeInvariant(t *testing.T) {
	for _, m := range []*matrix.Matrix{
		MustInts(t, swap3x3),
		MustInts(t, singular2x2),
		MustText(t, mixed4x4),
		MustText(t, [][]string{{"1/2", "-3", "0"}, {"2/7", "1", "4"}, {"5", "-1/9", "8"}}),
	} {
		tr, err := matrix.Transpose(m)
		require.NoError(t, err)
		d1, err := matrix.Determinant(m)
		require.NoError(t, err)
		d2, err := matrix.Determinant(tr)
		require.NoError(t, err)
		require.True(t, d1.Equal(d2), "det(A)=%s det(Aᵀ)=%s", d1, d2)
	}
}

func TestDeterminantByElimination_RowSwapSign(t *testing.T) {
	// Swapping two rows of the identity gives det = -1.
	m := MustInts(t, [][]int64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	d, err := matrix.DeterminantByElimination(m)
	require.NoError(t, err)
	assert.Equal(t, "-1", d.String())
}

func TestSubmatrix(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	s, err := matrix.Submatrix(m, 1, 1)
	require.NoError(t, err)
	RequireText(t, [][]string{{"1", "3"}, {"7", "9"}}, s)

	s, err = matrix.Submatrix(m, 0, 2)
	require.NoError(t, err)
	RequireText(t, [][]string{{"4", "5"}, {"7", "8"}}, s)

	_, err = matrix.Submatrix(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Submatrix(MustInts(t, [][]int64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
