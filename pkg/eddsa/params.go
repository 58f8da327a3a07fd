package eddsa

import (
	"crypto/sha512"
	"math/big"
	"sync"

	"golang.org/x/crypto/sha3"
)

var (
	ed25519Once sync.Once
	ed25519Gen  *Generator

	ed448Once sync.Once
	ed448Gen  *Generator
)

// Ed25519 returns the generator for the ed25519 scheme: curve edwards25519
// with SHA-512, cofactor 8, and 32-byte keys and encodings.
func Ed25519() *Generator {
	ed25519Once.Do(initEd25519)
	return ed25519Gen
}

// Ed448 returns the generator for the ed448 scheme: curve edwards448 with
// SHAKE256, cofactor 4, and 57-byte keys and encodings.
func Ed448() *Generator {
	ed448Once.Do(initEd448)
	return ed448Gen
}

func sha512Hash(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:]
}

func shake256Hash(data []byte) []byte {
	out := make([]byte, 114)
	sha3.ShakeSum256(out, data)
	return out
}

func initEd25519() {
	// p = 2^255 - 19
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))

	// a = -1 mod p
	a := new(big.Int).Sub(p, big.NewInt(1))

	d, _ := new(big.Int).SetString("37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)

	// order = 2^252 + 27742317777372353535851937790883648493
	order := new(big.Int).Lsh(big.NewInt(1), 252)
	tail, _ := new(big.Int).SetString("14def9dea2f79cd65812631a5cf5d3ed", 16)
	order.Add(order, tail)

	curve := &Curve{
		Name:     "ed25519",
		P:        p,
		A:        a,
		D:        d,
		Cofactor: 8,
		Hash:     sha512Hash,
	}

	engine := newEd25519Engine(order)
	ed25519Gen = NewGenerator(curve, engine, engine.generator(), order)
}

func initEd448() {
	// p = 2^448 - 2^224 - 1
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 224))
	p.Sub(p, big.NewInt(1))

	a := big.NewInt(1)

	// d = -39081 mod p
	d := new(big.Int).Sub(p, big.NewInt(39081))

	// order = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885
	order := new(big.Int).Lsh(big.NewInt(1), 446)
	tail, _ := new(big.Int).SetString("8335dc163bb124b65129c96fde933d8d723a70aadc873d6d54a7bb0d", 16)
	order.Sub(order, tail)

	curve := &Curve{
		Name:         "ed448",
		P:            p,
		A:            a,
		D:            d,
		Cofactor:     4,
		Hash:         shake256Hash,
		DomainPrefix: append([]byte("SigEd448"), 0x00, 0x00),
	}

	gx, _ := new(big.Int).SetString("224580040295924300187604334099896036246789641632564134246125461686950415467406032909029192869357953282578032075146446173674602635247710", 10)
	gy, _ := new(big.Int).SetString("298819210078481492676017930443930673437544040154080242095928241372331506189835876003536878655418784733982303233503462500531545062832660", 10)

	engine := newEdwardsEngine(curve, order)
	ed448Gen = NewGenerator(curve, engine, engine.newPoint(gx, gy), order)
}
