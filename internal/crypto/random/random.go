// Package random provides ecc.RandomSource implementations: one backed by a
// cryptographically secure reader and a fixed sequence for deterministic
// tests.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// ErrExhausted is returned by a Sequence that has no values left.
var ErrExhausted = errors.New("random: sequence exhausted")

// Reader draws integers from an io.Reader, normally crypto/rand.Reader.
type Reader struct {
	r io.Reader
}

// New returns a source reading from r. A nil r uses crypto/rand.Reader.
func New(r io.Reader) *Reader {
	if r == nil {
		r = rand.Reader
	}
	return &Reader{r: r}
}

// Int returns a uniform integer in [low, high).
func (s *Reader) Int(low, high *big.Int) (*big.Int, error) {
	width, err := span(low, high)
	if err != nil {
		return nil, err
	}
	v, err := rand.Int(s.r, width)
	if err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	return v.Add(v, low), nil
}

// Sequence replays fixed values. Each value must fall in the requested
// range. It is safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	values []*big.Int
}

// NewSequence returns a Sequence yielding values in order.
func NewSequence(values ...*big.Int) *Sequence {
	s := &Sequence{values: make([]*big.Int, len(values))}
	for i, v := range values {
		s.values[i] = new(big.Int).Set(v)
	}
	return s
}

func (s *Sequence) Int(low, high *big.Int) (*big.Int, error) {
	if _, err := span(low, high); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return nil, ErrExhausted
	}
	v := s.values[0]
	if v.Cmp(low) < 0 || v.Cmp(high) >= 0 {
		return nil, fmt.Errorf("random: value %s outside [%s, %s): %w", v, low, high, ecc.ErrScalarOutOfRange)
	}
	s.values = s.values[1:]
	return new(big.Int).Set(v), nil
}

// Remaining returns the number of unread values.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

func span(low, high *big.Int) (*big.Int, error) {
	if low == nil || high == nil || low.Cmp(high) >= 0 {
		return nil, fmt.Errorf("random: empty range [%v, %v): %w", low, high, ecc.ErrScalarOutOfRange)
	}
	return new(big.Int).Sub(high, low), nil
}
