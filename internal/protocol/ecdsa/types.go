package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Signature represents the result of signing.
type Signature struct {
	R *big.Int // x-coordinate of k·G, not reduced by the order
	S *big.Int // k⁻¹(z + R·d) mod n
}

func (s *Signature) String() string {
	return fmt.Sprintf("(R=%s, S=%s)", s.R.Text(16), s.S.Text(16))
}

// KeyPair is a private scalar and its public point Q = D·G.
type KeyPair struct {
	D *big.Int
	Q curves.Point
}
