package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Sign produces (R, S) for the message scalar z with private key d and
// nonce k. R is the x-coordinate of k·G, kept as a field value and only
// reduced mod n inside the S computation and on verification.
//
// z must lie in [0, n); d and k in [1, n). A nonce reusing another
// signature's k leaks d; callers that do not control k use SignMessage.
func (e *ECDSA) Sign(z, d, k *big.Int) (*Signature, error) {
	if err := e.checkScalar("sign", "message hash", z, 0); err != nil {
		return nil, err
	}
	if err := e.checkScalar("sign", "private key", d, 1); err != nil {
		return nil, err
	}
	if err := e.checkScalar("sign", "nonce", k, 1); err != nil {
		return nil, err
	}

	kg, ok := e.curve.ScalarMul(e.generator, k).(curves.Affine)
	if !ok {
		return nil, ecc.NewInputError("sign", "k·G is the point at infinity", ecc.ErrNonceIdentity)
	}
	r := kg.X.BigInt()

	// S = k⁻¹(z + R·d) mod n
	s := e.order.Mul(e.order.MultiplicativeInverse(k), e.order.Add(z, e.order.Mul(r, d)))
	if s.Sign() == 0 || e.order.Reduce(r).Sign() == 0 {
		return nil, ecc.NewInputError("sign", "degenerate nonce", ecc.ErrZeroSignature)
	}

	e.logger.Debug("signed", zap.Stringer("r", r), zap.Stringer("s", s))
	return &Signature{R: r, S: s}, nil
}

// SignMessage hashes msg and signs it with a fresh nonce from src. Degenerate
// nonces are redrawn.
func (e *ECDSA) SignMessage(src ecc.RandomSource, d *big.Int, msg []byte) (*Signature, error) {
	z := e.HashToScalar(msg)
	for {
		k, err := e.randomScalar("sign message", src)
		if err != nil {
			return nil, err
		}
		sig, err := e.Sign(z, d, k)
		if err == nil {
			return sig, nil
		}
		if !retryable(err) {
			return nil, err
		}
		e.logger.Debug("redrawing nonce", zap.Error(err))
	}
}

// SignBatch signs every message with independent nonces. It stops at the
// first failure and reports the index of the offending message.
func (e *ECDSA) SignBatch(src ecc.RandomSource, d *big.Int, msgs [][]byte) ([]*Signature, error) {
	if len(msgs) == 0 {
		return nil, ecc.NewInputError("sign batch", "no messages", ecc.ErrInvalidParams)
	}
	sigs := make([]*Signature, 0, len(msgs))
	for i, msg := range msgs {
		sig, err := e.SignMessage(src, d, msg)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func retryable(err error) bool {
	return errors.Is(err, ecc.ErrNonceIdentity) || errors.Is(err, ecc.ErrZeroSignature)
}
