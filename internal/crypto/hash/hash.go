// Package hash supplies the message digests used to map messages to
// integers before signing.
package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	stdhash "hash"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Func constructs a fresh hash state.
type Func func() stdhash.Hash

var registry = map[string]Func{
	"sha256":      sha256.New,
	"sha512":      sha512.New,
	"sha3-256":    sha3.New256,
	"keccak256":   sha3.NewLegacyKeccak256,
	"blake2b-256": newBlake2b256,
}

// blake2b.New256 only fails for keys longer than 64 bytes.
func newBlake2b256() stdhash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

// Default returns SHA-256.
func Default() Func {
	return sha256.New
}

// Lookup returns the hash registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("hash: %q: %w", name, ecc.ErrUnknownHash)
	}
	return fn, nil
}

// Names lists the registered hash names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum hashes the concatenation of parts.
func Sum(fn Func, parts ...[]byte) []byte {
	h := fn()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// ToInt interprets the digest of msg as a big-endian unsigned integer.
func ToInt(fn Func, msg []byte) *big.Int {
	return new(big.Int).SetBytes(Sum(fn, msg))
}
