// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// randomMatrix fills an r×c matrix with small fractions from a seeded source.
func randomMatrix(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix {
	t.Helper()
	data := make([][]rational.Rational, r)
	for i := range data {
		data[i] = make([]rational.Rational, c)
		for j := range data[i] {
			v, err := rational.New(int64(rng.Intn(19)-9), int64(rng.Intn(4)+1))
			require.NoError(t, err)
			data[i][j] = v
		}
	}
	m, err := matrix.New(r, c, data)
	require.NoError(t, err)
	return m
}

func TestProperty_AddSubInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		r, c := rng.Intn(4)+1, rng.Intn(4)+1
		a := randomMatrix(t, rng, r, c)
		b := randomMatrix(t, rng, r, c)

		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	}
}

func TestProperty_SquareInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(4) + 1
		a := randomMatrix(t, rng, n, n)

		det, err := matrix.Determinant(a)
		require.NoError(t, err)

		tr, err := matrix.Transpose(a)
		require.NoError(t, err)
		detT, err := matrix.Determinant(tr)
		require.NoError(t, err)
		require.True(t, det.Equal(detT))

		detE, err := matrix.DeterminantByElimination(a)
		require.NoError(t, err)
		require.True(t, det.Equal(detE))

		adj, errAdj := matrix.InverseByAdjugate(a)
		gj, _, errGJ := matrix.InverseByGaussJordan(a)
		if det.IsZero() {
			require.ErrorIs(t, errAdj, matrix.ErrSingular)
			require.ErrorIs(t, errGJ, matrix.ErrSingular)
			continue
		}
		require.NoError(t, errAdj)
		require.NoError(t, errGJ)
		require.True(t, adj.Equal(gj))

		p, err := matrix.Mul(a, adj)
		require.NoError(t, err)
		require.True(t, p.Equal(MustIdentity(t, n)))
	}
}
