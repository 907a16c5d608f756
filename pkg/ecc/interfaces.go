package ecc

import (
	"errors"
	"math/big"
)

// Common errors returned by the library
var (
	ErrInvalidModulus   = errors.New("modulus is not a prime")
	ErrModulusMismatch  = errors.New("field elements have different moduli")
	ErrDivisionByZero   = errors.New("division by the zero element")
	ErrPointNotOnCurve  = errors.New("point is not on the curve")
	ErrUnknownCurve     = errors.New("unknown curve")
	ErrUnknownHash      = errors.New("unknown hash function")
	ErrInvalidParams    = errors.New("invalid curve parameters")
	ErrScalarOutOfRange = errors.New("scalar out of range")
	ErrNonceIdentity    = errors.New("nonce produced the point at infinity")
	ErrZeroSignature    = errors.New("signature component is zero")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// RandomSource supplies cryptographically secure random integers.
// Key and nonce generation take one explicitly so tests can substitute a
// fixed sequence.
type RandomSource interface {
	// Int returns an integer drawn uniformly from [low, high).
	Int(low, high *big.Int) (*big.Int, error)
}
