// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. v is nil for the zero value and is never mutated once set,
// so copies of a Rational may share it freely.
type Rational struct {
	v *big.Rat
}

// Commonly used constants.
var (
	Zero = Rational{}
	One  = FromInt(1)
)

// zeroRat backs the zero value in arithmetic. It is only ever read.
var zeroRat = new(big.Rat)

// rat returns the backing value; callers must treat it as read-only.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return zeroRat
	}
	return r.v
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{v: new(big.Rat).SetInt64(n)}
}

// New returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("New(%d/%d): %w", num, den, ErrDivisionByZero)
	}
	return Rational{v: big.NewRat(num, den)}, nil
}

// FromBig returns num/den reduced to lowest terms; the arguments are copied.
// Returns ErrDivisionByZero when den is zero.
func FromBig(num, den *big.Int) (Rational, error) {
	if den == nil || den.Sign() == 0 {
		return Rational{}, fmt.Errorf("FromBig: %w", ErrDivisionByZero)
	}
	if num == nil {
		return Rational{}, nil
	}
	return Rational{v: new(big.Rat).SetFrac(num, den)}, nil
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), o.rat())}
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.rat(), o.rat())}
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), o.rat())}
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("Div(%s, %s): %w", r, o, ErrDivisionByZero)
	}
	return Rational{v: new(big.Rat).Quo(r.rat(), o.rat())}, nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(r.rat())}
}

// Inv returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("Inv: %w", ErrDivisionByZero)
	}
	return Rational{v: new(big.Rat).Inv(r.rat())}, nil
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.rat().Sign() == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.rat().Cmp(One.v) == 0 }

// IsInt reports whether the denominator is 1.
func (r Rational) IsInt() bool { return r.rat().IsInt() }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.rat().Sign() }

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int { return r.rat().Cmp(o.rat()) }

// Equal reports exact equality.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// Num returns a copy of the numerator (sign carried here).
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.rat().Num()) }

// Den returns a copy of the denominator, always > 0.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.rat().Denom()) }

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	return r.rat().RatString()
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Parse reads an integer ("-3"), a fraction ("3/4", "-6/8") or a finite
// decimal ("0.25", "1e-2") into a reduced Rational.
//
// Errors:
//   - ErrDivisionByZero for a fraction with a zero denominator.
//   - ErrSyntax for anything else that is not a number.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, okN := new(big.Int).SetString(strings.TrimSpace(s[:i]), 10)
		den, okD := new(big.Int).SetString(strings.TrimSpace(s[i+1:]), 10)
		if !okN || !okD {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
		if den.Sign() == 0 {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrDivisionByZero)
		}
		return Rational{v: new(big.Rat).SetFrac(num, den)}, nil
	}

	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	return Rational{v: v}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) Rational {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
