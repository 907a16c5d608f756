// Package scalar implements arithmetic modulo a group order n.
//
// ECDSA signature equations live in Z/nZ, a different ring from the curve's
// coordinate field Z/pZ. Order is kept a distinct type from field.Field so a
// signature scalar cannot be reduced by the field prime by accident.
package scalar

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var two = big.NewInt(2)

// Order is the modulus n of a cyclic subgroup.
type Order struct {
	n *big.Int
}

// NewOrder creates an Order. n must be at least 2.
func NewOrder(n *big.Int) (*Order, error) {
	if n == nil || n.Cmp(two) < 0 {
		return nil, fmt.Errorf("scalar: order %v: %w", n, ecc.ErrInvalidParams)
	}
	return &Order{n: new(big.Int).Set(n)}, nil
}

// N returns a copy of the order.
func (o *Order) N() *big.Int {
	return new(big.Int).Set(o.n)
}

// BitLen returns the bit length of n.
func (o *Order) BitLen() int {
	return o.n.BitLen()
}

// Contains reports whether 0 <= u < n.
func (o *Order) Contains(u *big.Int) bool {
	return u != nil && u.Sign() >= 0 && u.Cmp(o.n) < 0
}

// Reduce returns u mod n in [0, n).
func (o *Order) Reduce(u *big.Int) *big.Int {
	return new(big.Int).Mod(u, o.n)
}

// Add returns (u + v) mod n.
func (o *Order) Add(u, v *big.Int) *big.Int {
	r := new(big.Int).Add(u, v)
	return r.Mod(r, o.n)
}

// Mul returns (u * v) mod n.
func (o *Order) Mul(u, v *big.Int) *big.Int {
	r := new(big.Int).Mul(u, v)
	return r.Mod(r, o.n)
}

// Power returns u^i mod n.
func (o *Order) Power(u *big.Int, i uint64) *big.Int {
	return new(big.Int).Exp(o.Reduce(u), new(big.Int).SetUint64(i), o.n)
}

// AdditiveInverse returns (n - u) mod n. u must already be reduced; an
// unreduced argument is a caller bug and panics.
func (o *Order) AdditiveInverse(u *big.Int) *big.Int {
	if !o.Contains(u) {
		panic(fmt.Errorf("scalar: %v not in [0, %s): %w", u, o.n, ecc.ErrScalarOutOfRange))
	}
	r := new(big.Int).Sub(o.n, u)
	return r.Mod(r, o.n)
}

// MultiplicativeInverse returns u^(n-2) mod n, the inverse of u when n is
// prime. For u ≡ 0 the result is 0, which callers must treat as "no inverse".
func (o *Order) MultiplicativeInverse(u *big.Int) *big.Int {
	exp := new(big.Int).Sub(o.n, two)
	return new(big.Int).Exp(o.Reduce(u), exp, o.n)
}

func (o *Order) String() string {
	return fmt.Sprintf("Z/%sZ", o.n)
}
