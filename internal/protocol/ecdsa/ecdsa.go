// Package ecdsa implements ECDSA key generation, signing and verification
// over any curve from the curves package.
//
// Two moduli are in play. Point coordinates are elements of the curve's
// field (modulus p); signature scalars are reduced by the generator order n
// through scalar.Order. An ECDSA value holds no mutable state and may be
// shared by concurrent callers.
package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/hash"
	"github.com/smallyu/go-ecc/internal/crypto/scalar"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

var one = big.NewInt(1)

// ECDSA is a signing context: a curve, its generator G and the order n of G.
type ECDSA struct {
	curve     *curves.Curve
	generator curves.Point
	order     *scalar.Order
	hash      hash.Func
	logger    *zap.Logger
}

// Option configures an ECDSA context.
type Option func(*ECDSA)

// WithHash sets the digest used by HashToScalar. The default is SHA-256.
func WithHash(fn hash.Func) Option {
	return func(e *ECDSA) {
		if fn != nil {
			e.hash = fn
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *ECDSA) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates a context. The generator must be a finite point of the curve.
func New(curve *curves.Curve, generator curves.Point, order *big.Int, opts ...Option) (*ECDSA, error) {
	if curve == nil {
		return nil, fmt.Errorf("ecdsa: nil curve: %w", ecc.ErrInvalidParams)
	}
	if generator == nil || generator.IsIdentity() || !curve.IsOnCurve(generator) {
		return nil, fmt.Errorf("ecdsa: generator %v: %w", generator, ecc.ErrPointNotOnCurve)
	}
	o, err := scalar.NewOrder(order)
	if err != nil {
		return nil, fmt.Errorf("ecdsa: %w", err)
	}

	e := &ECDSA{
		curve:     curve,
		generator: generator,
		order:     o,
		hash:      hash.Default(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewFromParams creates a context from curve domain parameters.
func NewFromParams(params *curves.Params, opts ...Option) (*ECDSA, error) {
	if params == nil {
		return nil, fmt.Errorf("ecdsa: nil params: %w", ecc.ErrInvalidParams)
	}
	c, g, err := params.Curve()
	if err != nil {
		return nil, err
	}
	e, err := New(c, g, params.N, opts...)
	if err != nil {
		return nil, err
	}
	e.logger = e.logger.With(zap.String("curve", params.Name))
	return e, nil
}

// NewFromParameters creates a context from configuration: a registered or
// custom curve and a named hash.
func NewFromParameters(p *ecc.Parameters, opts ...Option) (*ECDSA, error) {
	if p == nil {
		p = ecc.DefaultParameters()
	}

	var (
		params *curves.Params
		err    error
	)
	if p.Custom != nil {
		params, err = curves.ParamsFromSpec(p.Custom)
	} else {
		params, err = curves.Lookup(p.Curve)
	}
	if err != nil {
		return nil, err
	}

	hashName := p.Hash
	if hashName == "" {
		hashName = ecc.DefaultHash
	}
	fn, err := hash.Lookup(hashName)
	if err != nil {
		return nil, err
	}

	return NewFromParams(params, append([]Option{WithHash(fn)}, opts...)...)
}

// Curve returns the underlying curve.
func (e *ECDSA) Curve() *curves.Curve {
	return e.curve
}

// Generator returns G.
func (e *ECDSA) Generator() curves.Point {
	return e.generator
}

// Order returns a copy of n.
func (e *ECDSA) Order() *big.Int {
	return e.order.N()
}

// HashToScalar maps msg into [1, n-1] as H(msg) mod (n-1) + 1, so the result
// is never zero.
func (e *ECDSA) HashToScalar(msg []byte) *big.Int {
	z := hash.ToInt(e.hash, msg)
	nMinus1 := new(big.Int).Sub(e.order.N(), one)
	z.Mod(z, nMinus1)
	return z.Add(z, one)
}

// checkScalar rejects v outside [min, n).
func (e *ECDSA) checkScalar(op, name string, v *big.Int, min int64) error {
	if v == nil || v.Cmp(big.NewInt(min)) < 0 || !e.order.Contains(v) {
		return ecc.NewInputError(op, fmt.Sprintf("%s must be in [%d, n)", name, min), ecc.ErrScalarOutOfRange)
	}
	return nil
}

// IsInputError reports whether err was caused by invalid caller input.
func IsInputError(err error) bool {
	var inputErr *ecc.InputError
	return errors.As(err, &inputErr)
}
