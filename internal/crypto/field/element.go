package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Element is a residue modulo the prime of its Field.
// The zero value is not usable; obtain elements from a Field.
type Element struct {
	v *big.Int
	f *Field
}

// Field returns the field the element belongs to.
func (x Element) Field() *Field {
	return x.f
}

// BigInt returns a copy of the reduced representative.
func (x Element) BigInt() *big.Int {
	return new(big.Int).Set(x.v)
}

func (x Element) IsZero() bool {
	return x.v.Sign() == 0
}

// Equal compares the reduced representatives.
func (x Element) Equal(y Element) bool {
	x.mustMatch(y)
	return x.v.Cmp(y.v) == 0
}

// Add returns (x + y) mod p.
func (x Element) Add(y Element) Element {
	x.mustMatch(y)
	v := new(big.Int).Add(x.v, y.v)
	return x.reduce(v)
}

// Sub returns (x - y) mod p. When x < y, p is added first so the difference
// never goes negative.
func (x Element) Sub(y Element) Element {
	x.mustMatch(y)
	v := new(big.Int)
	if x.v.Cmp(y.v) >= 0 {
		v.Sub(x.v, y.v)
	} else {
		v.Add(x.f.p, x.v)
		v.Sub(v, y.v)
	}
	return x.reduce(v)
}

// Mul returns (x * y) mod p.
func (x Element) Mul(y Element) Element {
	x.mustMatch(y)
	v := new(big.Int).Mul(x.v, y.v)
	return x.reduce(v)
}

// MulInt returns (k * x) mod p for a small constant k, e.g. the 2y and 3x²
// terms of point doubling.
func (x Element) MulInt(k uint64) Element {
	x.mustInit()
	v := new(big.Int).SetUint64(k)
	v.Mul(v, x.v)
	return x.reduce(v)
}

func (x Element) Square() Element {
	return x.Mul(x)
}

// Neg returns -x mod p.
func (x Element) Neg() Element {
	return x.f.Zero().Sub(x)
}

// Exp returns x^e mod p for a non-negative exponent e.
func (x Element) Exp(e *big.Int) Element {
	x.mustInit()
	if e.Sign() < 0 {
		panic(fmt.Sprintf("field: negative exponent %s", e))
	}
	return Element{v: new(big.Int).Exp(x.v, e, x.f.p), f: x.f}
}

// Inverse returns x^(p-2) mod p, the multiplicative inverse by Fermat's
// little theorem. Inverting zero panics with ecc.ErrDivisionByZero.
func (x Element) Inverse() Element {
	x.mustInit()
	if x.IsZero() {
		panic(fmt.Errorf("field: inverse of zero in %s: %w", x.f, ecc.ErrDivisionByZero))
	}
	return x.Exp(x.f.pMinus2)
}

// Div returns x * y^(p-2) mod p. y must be non-zero.
func (x Element) Div(y Element) Element {
	x.mustMatch(y)
	if y.IsZero() {
		panic(fmt.Errorf("field: %s / 0 in %s: %w", x.v, x.f, ecc.ErrDivisionByZero))
	}
	return x.Mul(y.Inverse())
}

func (x Element) String() string {
	if x.v == nil {
		return "<nil>"
	}
	return x.v.String()
}

func (x Element) reduce(v *big.Int) Element {
	return Element{v: v.Mod(v, x.f.p), f: x.f}
}

func (x Element) mustInit() {
	if x.f == nil || x.v == nil {
		panic("field: use of uninitialized element")
	}
}

func (x Element) mustMatch(y Element) {
	x.mustInit()
	y.mustInit()
	if !x.f.Equal(y.f) {
		panic(fmt.Errorf("field: %s and %s: %w", x.f, y.f, ecc.ErrModulusMismatch))
	}
}
