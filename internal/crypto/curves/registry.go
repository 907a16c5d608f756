package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Params are the domain parameters of a named curve.
type Params struct {
	Name   string
	P      *big.Int // field prime
	A, B   *big.Int // curve coefficients
	N      *big.Int // order of the generator
	Gx, Gy *big.Int // generator
}

var registry = map[string]func() *Params{
	"secp256k1": Secp256k1,
	"p224":      func() *Params { return nist("p224", elliptic.P224()) },
	"p256":      func() *Params { return nist("p256", elliptic.P256()) },
	"p384":      func() *Params { return nist("p384", elliptic.P384()) },
	"p521":      func() *Params { return nist("p521", elliptic.P521()) },
}

// Lookup returns a fresh copy of the parameters registered under name.
func Lookup(name string) (*Params, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("curves: %q: %w", name, ecc.ErrUnknownCurve)
	}
	return ctor(), nil
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Secp256k1 returns the SEC 2 secp256k1 parameters.
func Secp256k1() *Params {
	return &Params{
		Name: "secp256k1",
		P:    mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		A:    mustHex("0000000000000000000000000000000000000000000000000000000000000000"),
		B:    mustHex("0000000000000000000000000000000000000000000000000000000000000007"),
		N:    mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		Gx:   mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:   mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	}
}

// nist copies the standard library's parameter table; those curves all have
// a = -3.
func nist(name string, curve elliptic.Curve) *Params {
	cp := curve.Params()
	return &Params{
		Name: name,
		P:    new(big.Int).Set(cp.P),
		A:    new(big.Int).Sub(cp.P, big.NewInt(3)),
		B:    new(big.Int).Set(cp.B),
		N:    new(big.Int).Set(cp.N),
		Gx:   new(big.Int).Set(cp.Gx),
		Gy:   new(big.Int).Set(cp.Gy),
	}
}

// ParamsFromSpec parses a hexadecimal curve record.
func ParamsFromSpec(spec *ecc.CurveSpec) (*Params, error) {
	if spec == nil {
		return nil, fmt.Errorf("curves: nil spec: %w", ecc.ErrInvalidParams)
	}
	fields := []struct {
		name string
		hex  string
	}{
		{"p", spec.P}, {"a", spec.A}, {"b", spec.B}, {"order", spec.N},
		{"generator_x", spec.Gx}, {"generator_y", spec.Gy},
	}
	values := make([]*big.Int, len(fields))
	for i, f := range fields {
		v, err := parseHex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("curves: %s %s: %w", spec.Name, f.name, err)
		}
		values[i] = v
	}
	return &Params{
		Name: spec.Name,
		P:    values[0],
		A:    values[1],
		B:    values[2],
		N:    values[3],
		Gx:   values[4],
		Gy:   values[5],
	}, nil
}

// Curve builds the field, the curve and its generator. The generator must lie
// on the curve.
func (p *Params) Curve() (*Curve, Point, error) {
	if p.N == nil || p.N.Cmp(big.NewInt(2)) < 0 {
		return nil, nil, fmt.Errorf("curves: %s: order: %w", p.Name, ecc.ErrInvalidParams)
	}
	f, err := field.New(p.P)
	if err != nil {
		return nil, nil, fmt.Errorf("curves: %s: %w", p.Name, err)
	}
	if p.A == nil || p.B == nil {
		return nil, nil, fmt.Errorf("curves: %s: coefficients: %w", p.Name, ecc.ErrInvalidParams)
	}
	c, err := NewCurve(f.Element(p.A), f.Element(p.B))
	if err != nil {
		return nil, nil, err
	}
	g, err := c.NewPoint(p.Gx, p.Gy)
	if err != nil {
		return nil, nil, fmt.Errorf("curves: %s: generator: %w", p.Name, err)
	}
	return c, g, nil
}

func parseHex(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		s = "0"
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%q: %w", s, ecc.ErrInvalidParams)
	}
	return v, nil
}

func mustHex(s string) *big.Int {
	v, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return v
}
