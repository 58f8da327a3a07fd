package eddsa

import (
	"bytes"
	"fmt"
)

// PublicKey is a verification key: the canonical encoding of the point
// A = s*G together with its decoded form. Keys are safe for concurrent use.
type PublicKey struct {
	gen     *Generator
	encoded []byte
	point   Point
}

// NewPublicKey parses an encoded public key of exactly Baselen bytes.
func NewPublicKey(gen *Generator, encoded []byte) (*PublicKey, error) {
	size := gen.Curve().Baselen()
	if len(encoded) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(encoded), size)
	}
	point, err := gen.Engine().Decode(encoded)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		gen:     gen,
		encoded: append([]byte(nil), encoded...),
		point:   point,
	}, nil
}

// Verify checks a signature over message and returns nil if it is valid.
// The error names which check failed; callers that only care about validity
// can treat any non-nil error as rejection.
//
// The S half must be fully reduced modulo the group order, so each valid
// (key, message) pair accepts exactly one signature encoding.
func (pub *PublicKey) Verify(message, signature []byte) error {
	curve := pub.gen.Curve()
	size := curve.Baselen()
	if len(signature) != 2*size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(signature), 2*size)
	}

	encodedR := signature[:size]
	s := bytesToInt(signature[size:])
	if s.Cmp(pub.gen.order) >= 0 {
		return ErrInvalidSignatureValue
	}

	r, err := pub.gen.Engine().Decode(encodedR)
	if err != nil {
		return err
	}

	k := bytesToInt(curve.Hash(concat(curve.DomainPrefix, encodedR, pub.encoded, message)))

	lhs := pub.gen.Point().ScalarMul(s)
	rhs := pub.point.ScalarMul(k).Add(r)
	if !lhs.Equal(rhs) {
		return ErrVerification
	}
	return nil
}

// Equal reports whether both keys encode the same point on the same curve.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub.gen.Curve() != other.gen.Curve() {
		return false
	}
	return bytes.Equal(pub.encoded, other.encoded)
}

// Bytes returns a copy of the canonical key encoding.
func (pub *PublicKey) Bytes() []byte {
	return append([]byte(nil), pub.encoded...)
}

// Point returns the decoded public point.
func (pub *PublicKey) Point() Point {
	return pub.point
}

// Generator returns the generator the key was built for.
func (pub *PublicKey) Generator() *Generator {
	return pub.gen
}
