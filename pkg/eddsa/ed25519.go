package eddsa

import (
	"bytes"
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
)

// ed25519Engine backs the ed25519 curve with the group arithmetic from
// filippo.io/edwards25519.
type ed25519Engine struct {
	order *big.Int
}

func newEd25519Engine(order *big.Int) *ed25519Engine {
	return &ed25519Engine{order: order}
}

// ed25519Point wraps an extended-coordinates point.
type ed25519Point struct {
	engine *ed25519Engine
	p      *edwards25519.Point
}

func (e *ed25519Engine) wrap(p *edwards25519.Point) *ed25519Point {
	return &ed25519Point{engine: e, p: p}
}

// generator returns the standard base point.
func (e *ed25519Engine) generator() *ed25519Point {
	return e.wrap(edwards25519.NewGeneratorPoint())
}

// Decode parses a compressed 32-byte point and rejects every encoding that
// is not the canonical one.
func (e *ed25519Engine) Decode(encoded []byte) (Point, error) {
	if len(encoded) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidEncodedPoint, len(encoded))
	}
	pt, err := new(edwards25519.Point).SetBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncodedPoint, err)
	}
	// SetBytes tolerates unreduced y coordinates and a sign bit on x = 0,
	// so round-trip the point to enforce canonical form.
	if !bytes.Equal(pt.Bytes(), encoded) {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrInvalidEncodedPoint)
	}
	return e.wrap(pt), nil
}

// scalar reduces k modulo the subgroup order and converts it to the
// library's scalar type.
func (e *ed25519Engine) scalar(k *big.Int) *edwards25519.Scalar {
	reduced := new(big.Int).Mod(k, e.order)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(intToBytes(reduced, 32))
	if err != nil {
		panic("eddsa: reduced scalar rejected as non-canonical: " + err.Error())
	}
	return s
}

func (p *ed25519Point) ScalarMul(k *big.Int) Point {
	e := p.engine
	return e.wrap(new(edwards25519.Point).ScalarMult(e.scalar(k), p.p))
}

func (p *ed25519Point) Add(q Point) Point {
	r := q.(*ed25519Point)
	return p.engine.wrap(new(edwards25519.Point).Add(p.p, r.p))
}

func (p *ed25519Point) Encode() []byte {
	return p.p.Bytes()
}

func (p *ed25519Point) Equal(q Point) bool {
	r, ok := q.(*ed25519Point)
	if !ok {
		return false
	}
	return p.p.Equal(r.p) == 1
}
