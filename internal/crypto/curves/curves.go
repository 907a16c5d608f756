// Package curves implements the group of points of a short Weierstrass curve
// y² = x³ + a·x + b over a prime field, together with the registry of named
// curve parameters.
//
// The group law works in affine coordinates and is not constant time.
package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Curve is the curve y² = x³ + a·x + b. It is immutable and safe for
// concurrent use.
type Curve struct {
	field *field.Field
	a, b  field.Element
}

// NewCurve creates a curve from its coefficients. a and b must belong to the
// same field.
func NewCurve(a, b field.Element) (*Curve, error) {
	if a.Field() == nil || !a.Field().Equal(b.Field()) {
		return nil, fmt.Errorf("curves: coefficients: %w", ecc.ErrModulusMismatch)
	}
	return &Curve{field: a.Field(), a: a, b: b}, nil
}

// Field returns the coordinate field.
func (c *Curve) Field() *field.Field {
	return c.field
}

func (c *Curve) A() field.Element { return c.a }

func (c *Curve) B() field.Element { return c.b }

// NewPoint reduces (x, y) into the field and returns the affine point, or
// ecc.ErrPointNotOnCurve. Use it for any coordinates that come from outside.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("curves: nil coordinate: %w", ecc.ErrPointNotOnCurve)
	}
	p := Affine{X: c.field.Element(x), Y: c.field.Element(y)}
	if !c.IsOnCurve(p) {
		return nil, fmt.Errorf("curves: (%s, %s): %w", x, y, ecc.ErrPointNotOnCurve)
	}
	return p, nil
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is always on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	switch p := p.(type) {
	case Infinity:
		return true
	case Affine:
		if !c.field.Equal(p.X.Field()) || !c.field.Equal(p.Y.Field()) {
			return false
		}
		return p.Y.Square().Equal(c.polynomial(p.X))
	default:
		return false
	}
}

// polynomial returns x³ + a·x + b.
func (c *Curve) polynomial(x field.Element) field.Element {
	x3 := x.Square().Mul(x)
	return x3.Add(c.a.Mul(x)).Add(c.b)
}

func (c *Curve) mustBeOnCurve(op string, p Point) {
	if !c.IsOnCurve(p) {
		panic(fmt.Errorf("curves: %s: %v: %w", op, p, ecc.ErrPointNotOnCurve))
	}
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s over %s", c.a, c.b, c.field)
}
