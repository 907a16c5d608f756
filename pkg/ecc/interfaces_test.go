package ecc

import (
	"errors"
	"math/big"
	"testing"
)

// fixedSource implements RandomSource for testing purposes.
type fixedSource struct {
	v *big.Int
}

func (f *fixedSource) Int(low, high *big.Int) (*big.Int, error) {
	return new(big.Int).Set(f.v), nil
}

func TestInterfaces(t *testing.T) {
	var _ RandomSource = &fixedSource{}

	src := &fixedSource{v: big.NewInt(7)}
	v, err := src.Int(big.NewInt(1), big.NewInt(19))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("expected 7, got %s", v)
	}
}

func TestInputError(t *testing.T) {
	err := NewInputError("sign", "nonce must be less than the order", ErrScalarOutOfRange)

	if err.Error() != "sign: nonce must be less than the order: scalar out of range" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrScalarOutOfRange) {
		t.Error("expected InputError to unwrap to ErrScalarOutOfRange")
	}

	var inputErr *InputError
	wrapped := errors.Join(errors.New("context"), err)
	if !errors.As(wrapped, &inputErr) {
		t.Fatal("expected errors.As to find the InputError")
	}
	if inputErr.Op != "sign" {
		t.Errorf("expected op sign, got %s", inputErr.Op)
	}

	bare := NewInputError("verify", "public key is the identity", nil)
	if bare.Error() != "verify: public key is the identity" {
		t.Errorf("unexpected message: %s", bare.Error())
	}
	if bare.Unwrap() != nil {
		t.Error("expected nil cause")
	}
}
