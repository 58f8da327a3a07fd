package eddsa

import (
	cryptorand "crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// PrivateKey is a signing key: a fixed-length random seed bound to a
// generator, together with the secret scalar and nonce prefix derived from
// the seed digest. Keys are safe for concurrent use.
type PrivateKey struct {
	gen    *Generator
	seed   []byte
	scalar *big.Int
	prefix []byte

	pubOnce sync.Once
	pub     *PublicKey
}

// NewPrivateKey builds a private key from a seed of exactly Baselen bytes.
// The curve hash of the seed is split in half: the first half is pruned into
// the secret scalar, the second becomes the deterministic nonce prefix.
func NewPrivateKey(gen *Generator, seed []byte) (*PrivateKey, error) {
	curve := gen.Curve()
	size := curve.Baselen()
	if len(seed) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(seed), size)
	}

	digest := curve.Hash(seed)
	return &PrivateKey{
		gen:    gen,
		seed:   append([]byte(nil), seed...),
		scalar: pruneScalar(curve, digest[:size]),
		prefix: digest[size:],
	}, nil
}

// GenerateKey creates a private key from a fresh seed read from rand. A nil
// rand falls back to the operating system's entropy source.
func GenerateKey(gen *Generator, rand io.Reader) (*PrivateKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	seed := make([]byte, gen.Curve().Baselen())
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, fmt.Errorf("eddsa: reading random seed: %w", err)
	}
	return NewPrivateKey(gen, seed)
}

// PublicKey derives the public key A = s*G. The derivation runs at most
// once per private key; every call returns the same *PublicKey.
func (priv *PrivateKey) PublicKey() *PublicKey {
	priv.pubOnce.Do(func() {
		point := priv.gen.Point().ScalarMul(priv.scalar)
		priv.pub = &PublicKey{
			gen:     priv.gen,
			encoded: point.Encode(),
			point:   point,
		}
	})
	return priv.pub
}

// Sign produces a deterministic signature over message: the encoded nonce
// commitment R followed by the little-endian scalar S, each Baselen bytes.
// The same key and message always yield the same signature.
func (priv *PrivateKey) Sign(message []byte) []byte {
	curve := priv.gen.Curve()
	order := priv.gen.order
	encodedA := priv.PublicKey().encoded

	r := bytesToInt(curve.Hash(concat(curve.DomainPrefix, priv.prefix, message)))
	encodedR := priv.gen.Point().ScalarMul(r).Encode()

	k := bytesToInt(curve.Hash(concat(curve.DomainPrefix, encodedR, encodedA, message)))
	k.Mod(k, order)

	s := new(big.Int).Mul(k, priv.scalar)
	s.Add(s, r)
	s.Mod(s, order)

	return concat(encodedR, intToBytes(s, curve.Baselen()))
}

// Equal reports whether both keys hold the same seed for the same curve.
// The seed comparison runs in constant time.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	if priv.gen.Curve() != other.gen.Curve() {
		return false
	}
	return subtle.ConstantTimeCompare(priv.seed, other.seed) == 1
}

// Bytes returns a copy of the seed.
func (priv *PrivateKey) Bytes() []byte {
	return append([]byte(nil), priv.seed...)
}

// Generator returns the generator the key was built for.
func (priv *PrivateKey) Generator() *Generator {
	return priv.gen
}
