// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the method-selecting facades
// Det and Inverse. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// DeterminantMethod selects the determinant algorithm used by Det.
type DeterminantMethod uint8

const (
	// MethodLaplace is first-row cofactor expansion, O(n!).
	MethodLaplace DeterminantMethod = iota
	// MethodElimination is the signed pivot product, O(n³).
	MethodElimination
)

// String returns "laplace" or "elimination".
func (d DeterminantMethod) String() string {
	switch d {
	case MethodLaplace:
		return "laplace"
	case MethodElimination:
		return "elimination"
	default:
		return fmt.Sprintf("DeterminantMethod(%d)", uint8(d))
	}
}

// InverseMethod selects the inversion algorithm used by Inverse.
type InverseMethod uint8

const (
	// MethodAdjugate inverts via the transposed cofactor matrix.
	MethodAdjugate InverseMethod = iota
	// MethodGaussJordan inverts by reducing [A | I].
	MethodGaussJordan
)

// String returns "adjugate" or "gauss-jordan".
func (m InverseMethod) String() string {
	switch m {
	case MethodAdjugate:
		return "adjugate"
	case MethodGaussJordan:
		return "gauss-jordan"
	default:
		return fmt.Sprintf("InverseMethod(%d)", uint8(m))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDeterminantMethod keeps the cofactor expansion as the reference method.
	DefaultDeterminantMethod = MethodLaplace

	// DefaultInverseMethod is the adjugate method.
	DefaultInverseMethod = MethodAdjugate
)

// Options holds the effective configuration; fields are unexported and set
// only through Option functions.
type Options struct {
	det DeterminantMethod
	inv InverseMethod
}

// DeterminantMethod returns the configured determinant method.
func (o Options) DeterminantMethod() DeterminantMethod { return o.det }

// InverseMethod returns the configured inverse method.
func (o Options) InverseMethod() InverseMethod { return o.inv }

// Option mutates Options.
type Option func(*Options)

// WithDeterminantMethod selects the algorithm for Det.
// Panics on an unknown method (programmer error).
func WithDeterminantMethod(d DeterminantMethod) Option {
	if d != MethodLaplace && d != MethodElimination {
		panic(fmt.Sprintf("matrix: WithDeterminantMethod: unknown method %d", uint8(d)))
	}
	return func(o *Options) { o.det = d }
}

// WithInverseMethod selects the algorithm for Inverse.
// Panics on an unknown method (programmer error).
func WithInverseMethod(m InverseMethod) Option {
	if m != MethodAdjugate && m != MethodGaussJordan {
		panic(fmt.Sprintf("matrix: WithInverseMethod: unknown method %d", uint8(m)))
	}
	return func(o *Options) { o.inv = m }
}

// NewOptions returns defaults with opts applied in order (last writer wins).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		det: DefaultDeterminantMethod,
		inv: DefaultInverseMethod,
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
