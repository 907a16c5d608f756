package curves

import (
	"math/big"
)

// Double returns 2·h. A point with y = 0 has a vertical tangent and doubles
// to the identity. h must be on the curve.
func (c *Curve) Double(h Point) Point {
	c.mustBeOnCurve("double", h)
	switch h := h.(type) {
	case Affine:
		return c.double(h)
	default:
		return Infinity{}
	}
}

func (c *Curve) double(h Affine) Point {
	if h.Y.IsZero() {
		return Infinity{}
	}

	// s = (3x² + a) / 2y
	s := h.X.Square().MulInt(3).Add(c.a).Div(h.Y.MulInt(2))
	// x' = s² - 2x
	x := s.Square().Sub(h.X.MulInt(2))
	// y' = s(x - x') - y
	y := s.Mul(h.X.Sub(x)).Sub(h.Y)

	return Affine{X: x, Y: y}
}

// Add returns h + k. Add is total: the identity is neutral, a point plus its
// negation is the identity, and h == k is handed to Double. Both points must
// be on the curve.
func (c *Curve) Add(h, k Point) Point {
	c.mustBeOnCurve("add", h)
	c.mustBeOnCurve("add", k)

	hp, ok := h.(Affine)
	if !ok {
		return k
	}
	kp, ok := k.(Affine)
	if !ok {
		return h
	}

	if hp.X.Equal(kp.X) {
		if hp.Y.Add(kp.Y).IsZero() {
			return Infinity{}
		}
		// Same x and y1 != -y2 leaves y1 == y2 on the curve.
		return c.double(hp)
	}

	// s = (y2 - y1) / (x2 - x1)
	s := kp.Y.Sub(hp.Y).Div(kp.X.Sub(hp.X))
	// x3 = s² - x1 - x2
	x := s.Square().Sub(hp.X).Sub(kp.X)
	// y3 = s(x1 - x3) - y1
	y := s.Mul(hp.X.Sub(x)).Sub(hp.Y)

	return Affine{X: x, Y: y}
}

// Neg returns -h.
func (c *Curve) Neg(h Point) Point {
	c.mustBeOnCurve("negate", h)
	if hp, ok := h.(Affine); ok {
		return Affine{X: hp.X, Y: hp.Y.Neg()}
	}
	return Infinity{}
}

// ScalarMul returns k·q by double-and-add. The accumulator starts at q for
// the top bit of k, then each lower bit doubles it and adds q when set, so
// bitlen(k)-1 doublings are performed. k = 0 gives the identity; negative k
// multiplies -q by |k|.
func (c *Curve) ScalarMul(q Point, k *big.Int) Point {
	c.mustBeOnCurve("scalar multiplication", q)

	switch k.Sign() {
	case 0:
		return Infinity{}
	case -1:
		return c.ScalarMul(c.Neg(q), new(big.Int).Neg(k))
	}

	t := q
	for i := k.BitLen() - 2; i >= 0; i-- {
		t = c.Double(t)
		if k.Bit(i) == 1 {
			t = c.Add(t, q)
		}
	}
	return t
}
