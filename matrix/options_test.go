// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.MethodLaplace, o.DeterminantMethod())
	assert.Equal(t, matrix.MethodAdjugate, o.InverseMethod())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithDeterminantMethod(matrix.MethodElimination),
		matrix.WithInverseMethod(matrix.MethodGaussJordan),
		matrix.WithInverseMethod(matrix.MethodAdjugate),
		nil,
	)
	assert.Equal(t, matrix.MethodElimination, o.DeterminantMethod())
	assert.Equal(t, matrix.MethodAdjugate, o.InverseMethod())
}

func TestOptions_PanicOnUnknownMethod(t *testing.T) {
	assert.Panics(t, func() { matrix.WithDeterminantMethod(matrix.DeterminantMethod(9)) })
	assert.Panics(t, func() { matrix.WithInverseMethod(matrix.InverseMethod(9)) })
}

func TestMethodNames(t *testing.T) {
	assert.Equal(t, "laplace", matrix.MethodLaplace.String())
	assert.Equal(t, "elimination", matrix.MethodElimination.String())
	assert.Equal(t, "adjugate", matrix.MethodAdjugate.String())
	assert.Equal(t, "gauss-jordan", matrix.MethodGaussJordan.String())
}

func TestDet_Facade(t *testing.T) {
	m := MustText(t, mixed4x4)
	for _, method := range []matrix.DeterminantMethod{matrix.MethodLaplace, matrix.MethodElimination} {
		d, err := matrix.Det(m, matrix.WithDeterminantMethod(method))
		require.NoError(t, err, method.String())
		assert.Equal(t, "-295/2", d.String(), method.String())
	}
}

func TestInverse_Facade(t *testing.T) {
	m := MustInts(t, unimodular2x2)

	inv, steps, err := matrix.Inverse(m)
	require.NoError(t, err)
	assert.Nil(t, steps, "adjugate inverse has no step log")
	RequireText(t, [][]string{{"1", "-1"}, {"-1", "2"}}, inv)

	inv, steps, err = matrix.Inverse(m, matrix.WithInverseMethod(matrix.MethodGaussJordan))
	require.NoError(t, err)
	assert.Len(t, steps, 4)
	RequireText(t, [][]string{{"1", "-1"}, {"-1", "2"}}, inv)

	_, _, err = matrix.Inverse(MustInts(t, singular2x2))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
