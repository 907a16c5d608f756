// Package field implements arithmetic on integers modulo a fixed prime.
//
// Elements are immutable values bound to the Field they were created from.
// Combining elements of two different moduli is a programming error and
// panics with ecc.ErrModulusMismatch.
package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field is the prime field Z/pZ.
type Field struct {
	p       *big.Int
	pMinus2 *big.Int // Fermat exponent for inversion
}

// New creates the field of integers modulo p. p must be prime.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(two) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("field: %v: %w", p, ecc.ErrInvalidModulus)
	}
	return &Field{
		p:       new(big.Int).Set(p),
		pMinus2: new(big.Int).Sub(p, two),
	}, nil
}

// MustNew is like New but panics if p is not prime.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Equal reports whether both fields share the same modulus.
func (f *Field) Equal(o *Field) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	return f.p.Cmp(o.p) == 0
}

// Element returns v mod p. Negative values are mapped into [0, p).
func (f *Field) Element(v *big.Int) Element {
	return Element{v: new(big.Int).Mod(v, f.p), f: f}
}

func (f *Field) ElementFromInt64(v int64) Element {
	return f.Element(big.NewInt(v))
}

func (f *Field) Zero() Element {
	return Element{v: new(big.Int), f: f}
}

func (f *Field) One() Element {
	return f.Element(one)
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(%s)", f.p)
}
