package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/field"
)

// Point is a point of an elliptic curve group. It is either Infinity, the
// group identity, or an Affine coordinate pair. The set of implementations is
// closed; switch on the concrete type to handle each case.
type Point interface {
	// IsIdentity reports whether the point is the point at infinity.
	IsIdentity() bool

	// Equal reports whether both points are the same group element.
	Equal(q Point) bool

	String() string

	point()
}

// Infinity is the identity element of the group.
type Infinity struct{}

// Identity returns the point at infinity.
func Identity() Point {
	return Infinity{}
}

func (Infinity) IsIdentity() bool { return true }

func (Infinity) Equal(q Point) bool {
	return q != nil && q.IsIdentity()
}

func (Infinity) String() string { return "Infinity" }

func (Infinity) point() {}

// Affine is a finite point (X, Y). Both coordinates belong to the curve's
// field.
type Affine struct {
	X, Y field.Element
}

func (Affine) IsIdentity() bool { return false }

func (p Affine) Equal(q Point) bool {
	o, ok := q.(Affine)
	if !ok {
		return false
	}
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Coordinates returns copies of X and Y as integers.
func (p Affine) Coordinates() (x, y *big.Int) {
	return p.X.BigInt(), p.Y.BigInt()
}

func (p Affine) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

func (Affine) point() {}
