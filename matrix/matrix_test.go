// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction and accessors.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

func TestNew_Succeeds(t *testing.T) {
	m := MustText(t, [][]string{{"1", "1/2", "-3"}, {"0", "2/4", "7"}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "1/2", v.String())
}

func TestNew_ShapeMismatch(t *testing.T) {
	one := rational.One
	for _, tc := range []struct {
		name       string
		rows, cols int
		data       [][]rational.Rational
	}{
		{"too few rows", 3, 2, [][]rational.Rational{{one, one}, {one, one}}},
		{"too many rows", 1, 2, [][]rational.Rational{{one, one}, {one, one}}},
		{"short row", 2, 2, [][]rational.Rational{{one, one}, {one}}},
		{"long row", 2, 2, [][]rational.Rational{{one, one, one}, {one, one}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		})
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 2}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			_, err := matrix.New(tc.rows, tc.cols, nil)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
			_, err = matrix.Zeros(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
	_, err := matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNew_CopiesInput(t *testing.T) {
	data := [][]rational.Rational{{rational.FromInt(1), rational.FromInt(2)}}
	m, err := matrix.New(1, 2, data)
	require.NoError(t, err)

	data[0][0] = rational.FromInt(99)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}

func TestIdentityAndZeros(t *testing.T) {
	RequireText(t, [][]string{{"1", "0", "0"}, {"0", "1", "0"}, {"0", "0", "1"}}, MustIdentity(t, 3))

	z, err := matrix.Zeros(2, 3)
	require.NoError(t, err)
	RequireText(t, [][]string{{"0", "0", "0"}, {"0", "0", "0"}}, z)
}

func TestAt_OutOfRange(t *testing.T) {
	m := MustInts(t, unimodular2x2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	_, err := m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDataAndRow_ReturnCopies(t *testing.T) {
	m := MustInts(t, unimodular2x2)

	d := m.Data()
	d[0][0] = rational.FromInt(42)
	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = rational.FromInt(42)

	RequireText(t, [][]string{{"2", "1"}, {"1", "1"}}, m)
}

func TestClone_Independent(t *testing.T) {
	m := MustInts(t, swap3x3)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NotSame(t, m, c)

	// Run a kernel on the clone; the original must be untouched.
	_, _, err := matrix.Eliminate(c)
	require.NoError(t, err)
	require.True(t, m.Equal(MustInts(t, swap3x3)))
}

func TestEqual(t *testing.T) {
	a := MustText(t, [][]string{{"1/2", "2/4"}})
	b := MustText(t, [][]string{{"2/4", "1/2"}})
	c := MustText(t, [][]string{{"1/2"}, {"1/2"}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same entries, different shape")
	assert.False(t, a.Equal(nil))

	var nilM *matrix.Matrix
	assert.True(t, nilM.Equal(nil))
}
