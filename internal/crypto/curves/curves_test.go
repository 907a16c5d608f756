package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// toyCurve returns y² = x³ + 2x + 2 over GF(17), whose generator (5, 1) has
// prime order 19.
func toyCurve(t *testing.T) *Curve {
	t.Helper()
	f := field.MustNew(big.NewInt(17))
	c, err := NewCurve(f.ElementFromInt64(2), f.ElementFromInt64(2))
	require.NoError(t, err)
	return c
}

func point(t *testing.T, c *Curve, x, y int64) Point {
	t.Helper()
	p, err := c.NewPoint(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err)
	return p
}

// Multiples k·(5, 1) for k = 1..18 on the toy curve.
var toyMultiples = [][2]int64{
	{5, 1}, {6, 3}, {10, 6}, {3, 1}, {9, 16}, {16, 13}, {0, 6}, {13, 7}, {7, 6},
	{7, 11}, {13, 10}, {0, 11}, {16, 4}, {9, 1}, {3, 16}, {10, 11}, {6, 14}, {5, 16},
}

func TestNewPoint(t *testing.T) {
	c := toyCurve(t)

	p, err := c.NewPoint(big.NewInt(5+17), big.NewInt(1-17))
	require.NoError(t, err)
	assert.True(t, p.Equal(point(t, c, 5, 1)))

	_, err = c.NewPoint(big.NewInt(5), big.NewInt(2))
	assert.ErrorIs(t, err, ecc.ErrPointNotOnCurve)

	_, err = c.NewPoint(nil, big.NewInt(2))
	assert.ErrorIs(t, err, ecc.ErrPointNotOnCurve)
}

func TestNewCurveMismatchedFields(t *testing.T) {
	a := field.MustNew(big.NewInt(17)).ElementFromInt64(2)
	b := field.MustNew(big.NewInt(19)).ElementFromInt64(2)
	_, err := NewCurve(a, b)
	assert.ErrorIs(t, err, ecc.ErrModulusMismatch)
}

func TestIsOnCurve(t *testing.T) {
	c := toyCurve(t)

	assert.True(t, c.IsOnCurve(Identity()))
	for _, m := range toyMultiples {
		assert.True(t, c.IsOnCurve(point(t, c, m[0], m[1])), "%v", m)
	}

	off := Affine{X: c.Field().ElementFromInt64(1), Y: c.Field().ElementFromInt64(1)}
	assert.False(t, c.IsOnCurve(off))

	other := field.MustNew(big.NewInt(19))
	foreign := Affine{X: other.ElementFromInt64(5), Y: other.ElementFromInt64(1)}
	assert.False(t, c.IsOnCurve(foreign))

	assert.False(t, c.IsOnCurve(nil))
	assert.False(t, c.IsOnCurve(Affine{}))
}

func TestPointAddition(t *testing.T) {
	c := toyCurve(t)

	// (6, 3) + (5, 1) = (10, 6)
	res := c.Add(point(t, c, 6, 3), point(t, c, 5, 1))
	assert.True(t, res.Equal(point(t, c, 10, 6)), "got %s", res)

	// Commutative.
	res = c.Add(point(t, c, 5, 1), point(t, c, 6, 3))
	assert.True(t, res.Equal(point(t, c, 10, 6)), "got %s", res)
}

func TestAddIdentity(t *testing.T) {
	c := toyCurve(t)

	for _, m := range toyMultiples {
		p := point(t, c, m[0], m[1])
		assert.True(t, c.Add(p, Identity()).Equal(p))
		assert.True(t, c.Add(Identity(), p).Equal(p))
	}
	assert.True(t, c.Add(Identity(), Identity()).IsIdentity())
}

func TestAddInverse(t *testing.T) {
	c := toyCurve(t)

	for _, m := range toyMultiples {
		p := point(t, c, m[0], m[1])
		negY := (17 - m[1]) % 17
		assert.True(t, c.Add(p, point(t, c, m[0], negY)).IsIdentity(), "%v", m)
		assert.True(t, c.Add(p, c.Neg(p)).IsIdentity(), "%v", m)
	}
	assert.True(t, c.Neg(Identity()).IsIdentity())
}

func TestAddEqualPointsDoubles(t *testing.T) {
	c := toyCurve(t)

	for _, m := range toyMultiples {
		p := point(t, c, m[0], m[1])
		assert.True(t, c.Add(p, p).Equal(c.Double(p)), "%v", m)
	}
}

func TestDouble(t *testing.T) {
	c := toyCurve(t)

	// 2·(6, 3) = 4·G = (3, 1)
	d := c.Double(point(t, c, 6, 3))
	assert.True(t, c.IsOnCurve(d))
	assert.True(t, d.Equal(point(t, c, 3, 1)), "got %s", d)

	assert.True(t, c.Double(Identity()).IsIdentity())
}

func TestDoubleVerticalTangent(t *testing.T) {
	// y² = x³ + 7 over GF(17) contains (3, 0).
	f := field.MustNew(big.NewInt(17))
	c, err := NewCurve(f.Zero(), f.ElementFromInt64(7))
	require.NoError(t, err)

	p := point(t, c, 3, 0)
	assert.True(t, c.Double(p).IsIdentity())
	assert.True(t, c.Add(p, p).IsIdentity())
	assert.True(t, c.ScalarMul(p, big.NewInt(2)).IsIdentity())
	assert.True(t, c.ScalarMul(p, big.NewInt(3)).Equal(p))
}

func TestScalarMul(t *testing.T) {
	c := toyCurve(t)
	g := point(t, c, 5, 1)

	// 16·(5, 1) = (10, 11)
	res := c.ScalarMul(g, big.NewInt(16))
	assert.True(t, res.Equal(point(t, c, 10, 11)), "got %s", res)

	for i, m := range toyMultiples {
		k := big.NewInt(int64(i + 1))
		res := c.ScalarMul(g, k)
		assert.True(t, res.Equal(point(t, c, m[0], m[1])), "%s·G = %s", k, res)
	}

	assert.True(t, c.ScalarMul(g, big.NewInt(0)).IsIdentity())
	assert.True(t, c.ScalarMul(g, big.NewInt(1)).Equal(g))
	assert.True(t, c.ScalarMul(g, big.NewInt(19)).IsIdentity())
	assert.True(t, c.ScalarMul(g, big.NewInt(20)).Equal(g))
	assert.True(t, c.ScalarMul(g, big.NewInt(-1)).Equal(c.Neg(g)))
	assert.True(t, c.ScalarMul(g, big.NewInt(-3)).Equal(point(t, c, 10, 11)))
	assert.True(t, c.ScalarMul(Identity(), big.NewInt(7)).IsIdentity())
}

func TestScalarMulMatchesDouble(t *testing.T) {
	c := toyCurve(t)

	for _, m := range toyMultiples {
		p := point(t, c, m[0], m[1])
		assert.True(t, c.ScalarMul(p, big.NewInt(2)).Equal(c.Double(p)), "%v", m)
	}
}

func TestPreconditions(t *testing.T) {
	c := toyCurve(t)
	g := point(t, c, 5, 1)
	off := Affine{X: c.Field().ElementFromInt64(1), Y: c.Field().ElementFromInt64(1)}

	panicsWith := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value %v is not an error", r)
			assert.ErrorIs(t, err, ecc.ErrPointNotOnCurve)
		}()
		fn()
	}

	panicsWith(t, func() { c.Add(off, g) })
	panicsWith(t, func() { c.Add(g, off) })
	panicsWith(t, func() { c.Double(off) })
	panicsWith(t, func() { c.Neg(off) })
	panicsWith(t, func() { c.ScalarMul(off, big.NewInt(3)) })
	panicsWith(t, func() { c.Add(nil, g) })
}

func TestPointEquality(t *testing.T) {
	c := toyCurve(t)
	g := point(t, c, 5, 1)

	assert.True(t, Identity().Equal(Infinity{}))
	assert.False(t, Identity().Equal(g))
	assert.False(t, g.Equal(Identity()))
	assert.False(t, Identity().Equal(nil))
	assert.False(t, g.Equal(point(t, c, 5, 16)))

	x, y := g.(Affine).Coordinates()
	assert.Equal(t, big.NewInt(5), x)
	assert.Equal(t, big.NewInt(1), y)

	assert.Equal(t, "(5, 1)", g.String())
	assert.Equal(t, "Infinity", Identity().String())
	assert.Equal(t, "y^2 = x^3 + 2*x + 2 over GF(17)", c.String())
}
