package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// GeneratePrivateKey draws d uniformly from [1, n).
func (e *ECDSA) GeneratePrivateKey(src ecc.RandomSource) (*big.Int, error) {
	return e.randomScalar("generate private key", src)
}

func (e *ECDSA) randomScalar(op string, src ecc.RandomSource) (*big.Int, error) {
	if src == nil {
		return nil, fmt.Errorf("ecdsa: %s: nil random source", op)
	}
	v, err := src.Int(one, e.order.N())
	if err != nil {
		return nil, fmt.Errorf("ecdsa: %s: %w", op, err)
	}
	if err := e.checkScalar(op, "random scalar", v, 1); err != nil {
		return nil, err
	}
	return v, nil
}

// GeneratePublicKey returns Q = d·G.
func (e *ECDSA) GeneratePublicKey(d *big.Int) (curves.Point, error) {
	if err := e.checkScalar("generate public key", "private key", d, 1); err != nil {
		return nil, err
	}
	return e.curve.ScalarMul(e.generator, d), nil
}

// GenerateKeyPair draws a private key and derives its public key.
func (e *ECDSA) GenerateKeyPair(src ecc.RandomSource) (*KeyPair, error) {
	d, err := e.GeneratePrivateKey(src)
	if err != nil {
		return nil, err
	}
	q, err := e.GeneratePublicKey(d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{D: d, Q: q}, nil
}

// ValidatePublicKey checks that q is a finite point of the curve. Public keys
// come from outside, so this returns an error instead of panicking.
func (e *ECDSA) ValidatePublicKey(q curves.Point) error {
	switch {
	case q == nil:
		return ecc.NewInputError("validate public key", "missing", ecc.ErrInvalidPublicKey)
	case q.IsIdentity():
		return ecc.NewInputError("validate public key", "point at infinity", ecc.ErrInvalidPublicKey)
	case !e.curve.IsOnCurve(q):
		return ecc.NewInputError("validate public key", q.String()+" is not on the curve", ecc.ErrInvalidPublicKey)
	}
	return nil
}
