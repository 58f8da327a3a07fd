package eddsa

import "math/big"

// Point is a point on a twisted Edwards curve, produced and owned by a curve
// engine. Implementations carry their own internal representation; points
// produced by different engines must never be mixed in one operation.
type Point interface {
	// ScalarMul returns k*P. The scalar is interpreted modulo the subgroup
	// order, so callers may pass unreduced hash-wide integers.
	ScalarMul(k *big.Int) Point

	// Add returns P+Q.
	Add(q Point) Point

	// Encode returns the canonical fixed-length encoding of the point
	// (little-endian y with the sign of x in the top bit of the last byte).
	Encode() []byte

	// Equal reports whether both points are the same group element.
	Equal(q Point) bool
}

// Engine is the curve-engine handle the EdDSA layer uses to turn encoded
// bytes back into group elements. Together with Point it is the complete
// capability surface the protocol layer consumes, so alternative engines
// (for example hardware-backed ones) can be plugged in via NewGenerator.
type Engine interface {
	// Decode parses a fixed-length canonical point encoding. It fails with an
	// error wrapping ErrInvalidEncodedPoint when the bytes do not represent a
	// curve point or are a non-canonical encoding of one.
	Decode(encoded []byte) (Point, error)
}
