package ecdsa

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Verify checks sig against the message scalar z and public key q.
//
// A malformed signature or one that does not match yields false with a nil
// error. An error is returned only for invalid input: z outside [0, n) or a
// public key that is not a finite curve point.
func (e *ECDSA) Verify(z *big.Int, q curves.Point, sig *Signature) (bool, error) {
	if err := e.checkScalar("verify", "message hash", z, 0); err != nil {
		return false, err
	}
	if err := e.ValidatePublicKey(q); err != nil {
		return false, err
	}
	if sig == nil || sig.R == nil || sig.S == nil || sig.R.Sign() < 0 || sig.S.Sign() < 0 {
		e.logger.Debug("rejecting malformed signature")
		return false, nil
	}

	s := e.order.Reduce(sig.S)
	if s.Sign() == 0 {
		e.logger.Debug("rejecting signature", zap.String("reason", "S is zero mod n"))
		return false, nil
	}

	w := e.order.MultiplicativeInverse(s)
	u1 := e.order.Mul(z, w)
	u2 := e.order.Mul(sig.R, w)

	p := e.curve.Add(e.curve.ScalarMul(e.generator, u1), e.curve.ScalarMul(q, u2))
	a, ok := p.(curves.Affine)
	if !ok {
		e.logger.Debug("rejecting signature", zap.String("reason", "u1·G + u2·Q is the identity"))
		return false, nil
	}

	if e.order.Reduce(a.X.BigInt()).Cmp(e.order.Reduce(sig.R)) != 0 {
		e.logger.Debug("rejecting signature", zap.String("reason", "x-coordinate mismatch"))
		return false, nil
	}
	return true, nil
}

// VerifyMessage hashes msg with HashToScalar and verifies sig.
func (e *ECDSA) VerifyMessage(q curves.Point, msg []byte, sig *Signature) (bool, error) {
	return e.Verify(e.HashToScalar(msg), q, sig)
}
