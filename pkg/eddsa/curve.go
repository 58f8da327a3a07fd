package eddsa

import "math/big"

// Curve holds the domain parameters of a twisted Edwards curve
// a*x^2 + y^2 = 1 + d*x^2*y^2 over the prime field GF(P), together with the
// hash function and signing-context prefix the signature scheme uses on it.
type Curve struct {
	// Name identifies the curve, e.g. "ed25519" or "ed448".
	Name string

	// P is the field prime.
	P *big.Int

	// A and D are the curve coefficients, reduced modulo P.
	A *big.Int
	D *big.Int

	// Cofactor is the ratio of the curve order to the prime subgroup order.
	// Key pruning clears log2(Cofactor) low bits of the secret scalar.
	Cofactor int

	// Hash computes the scheme's digest over its input. Ed25519 uses SHA-512
	// (64 bytes); Ed448 uses SHAKE256 with 114 bytes of output.
	Hash func(data []byte) []byte

	// DomainPrefix is prepended to every hash input. Empty for Ed25519;
	// "SigEd448" plus two zero bytes for Ed448.
	DomainPrefix []byte
}

// Baselen returns the byte length of encoded points, secret seeds, and each
// half of a signature: the field size in bits plus one sign bit, rounded up
// to whole bytes. 32 for ed25519, 57 for ed448.
func (c *Curve) Baselen() int {
	return (c.P.BitLen() + 8) / 8
}

// Generator is a distinguished point of prime order on a curve. All keys are
// derived from one, and it carries the curve arithmetic engine they share.
type Generator struct {
	curve  *Curve
	engine Engine
	point  Point
	order  *big.Int
}

// NewGenerator binds a base point of the given prime order to a curve and
// the engine implementing its group arithmetic.
func NewGenerator(curve *Curve, engine Engine, point Point, order *big.Int) *Generator {
	return &Generator{
		curve:  curve,
		engine: engine,
		point:  point,
		order:  order,
	}
}

// Curve returns the curve the generator lives on.
func (g *Generator) Curve() *Curve { return g.curve }

// Engine returns the arithmetic engine for the generator's curve.
func (g *Generator) Engine() Engine { return g.engine }

// Point returns the base point itself.
func (g *Generator) Point() Point { return g.point }

// Order returns a copy of the prime subgroup order.
func (g *Generator) Order() *big.Int {
	return new(big.Int).Set(g.order)
}
