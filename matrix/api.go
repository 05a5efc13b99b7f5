// SPDX-License-Identifier: MIT

// Package matrix: convenience facades over the kernels.
package matrix

import "github.com/katalvlaran/matcalc/rational"

// Det computes the determinant with the method chosen by opts
// (MethodLaplace by default). Both methods return the same value.
func Det(m *Matrix, opts ...Option) (rational.Rational, error) {
	o := gatherOptions(opts...)
	if o.det == MethodElimination {
		return DeterminantByElimination(m)
	}
	return Determinant(m)
}

// Inverse computes A⁻¹ with the method chosen by opts (MethodAdjugate by
// default). The step log is returned only for MethodGaussJordan; it is nil
// for the adjugate method.
func Inverse(m *Matrix, opts ...Option) (*Matrix, StepLog, error) {
	o := gatherOptions(opts...)
	if o.inv == MethodGaussJordan {
		return InverseByGaussJordan(m)
	}
	inv, err := InverseByAdjugate(m)
	if err != nil {
		return nil, nil, matrixErrorf(opInverse, err)
	}
	return inv, nil, nil
}
