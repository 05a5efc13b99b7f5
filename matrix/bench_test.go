// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/rational"
)

// benchSizes stay small: the cofactor routines are O(n!).
var benchSizes = []int{3, 5, 7}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkR rational.Rational
	sinkS matrix.StepLog
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			x := randomMatrix(b, rng, n, n)
			y := randomMatrix(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		rng := rand.New(rand.NewSource(11))
		x := randomMatrix(b, rng, n, n)
		for _, method := range []matrix.DeterminantMethod{matrix.MethodLaplace, matrix.MethodElimination} {
			b.Run(fmt.Sprintf("%s/n=%d", method, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					d, err := matrix.Det(x, matrix.WithDeterminantMethod(method))
					if err != nil {
						b.Fatal(err)
					}
					sinkR = d
				}
			})
		}
	}
}

func BenchmarkInverseByGaussJordan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustIdentity(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, steps, err := matrix.InverseByGaussJordan(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkS = m, steps
			}
		})
	}
}
