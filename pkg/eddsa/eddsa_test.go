package eddsa

import (
	"bytes"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
)

// countingPoint wraps a Point and counts ScalarMul calls. Used to observe
// how often the public key derivation actually runs.
type countingPoint struct {
	Point
	calls *int32
}

func (p *countingPoint) ScalarMul(k *big.Int) Point {
	atomic.AddInt32(p.calls, 1)
	return p.Point.ScalarMul(k)
}

func TestPublicKey_DerivedOnce(t *testing.T) {
	gen := Ed25519()
	var calls int32
	counted := NewGenerator(gen.Curve(), gen.Engine(), &countingPoint{Point: gen.Point(), calls: &calls}, gen.Order())

	priv, err := NewPrivateKey(counted, make([]byte, 32))
	if err != nil {
		t.Fatalf("Failed to build private key: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			priv.PublicKey()
		}()
	}
	wg.Wait()
	for i := 0; i < 4; i++ {
		priv.PublicKey()
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Public key derivation ran %d times, want 1", n)
	}
	if priv.PublicKey() != priv.PublicKey() {
		t.Error("PublicKey should always return the same instance")
	}
}

func TestPrivateKey_Equal(t *testing.T) {
	gen := Ed25519()
	a := mustKey(t, gen, 31)

	b, err := NewPrivateKey(gen, a.Bytes())
	if err != nil {
		t.Fatalf("Failed to rebuild key: %v", err)
	}
	if !a.Equal(b) {
		t.Error("Keys from the same seed should be equal")
	}

	c := mustKey(t, gen, 32)
	if a.Equal(c) {
		t.Error("Keys from different seeds should not be equal")
	}
}

func TestPublicKey_Equal(t *testing.T) {
	gen := Ed448()
	a := mustKey(t, gen, 33).PublicKey()

	b, err := NewPublicKey(gen, a.Bytes())
	if err != nil {
		t.Fatalf("Failed to parse public key: %v", err)
	}
	if !a.Equal(b) {
		t.Error("Keys with the same encoding should be equal")
	}

	c := mustKey(t, gen, 34).PublicKey()
	if a.Equal(c) {
		t.Error("Keys with different encodings should not be equal")
	}
}

func TestKeyEquality_CrossCurve(t *testing.T) {
	a := mustKey(t, Ed25519(), 1)
	b := mustKey(t, Ed448(), 1)

	if a.Equal(b) {
		t.Error("Private keys on different curves should never be equal")
	}
	if a.PublicKey().Equal(b.PublicKey()) {
		t.Error("Public keys on different curves should never be equal")
	}
}

func TestGenerateKey(t *testing.T) {
	for _, gen := range []*Generator{Ed25519(), Ed448()} {
		priv, err := GenerateKey(gen, nil)
		if err != nil {
			t.Fatalf("%s: Failed to generate key: %v", gen.Curve().Name, err)
		}
		if len(priv.Bytes()) != gen.Curve().Baselen() {
			t.Errorf("%s: seed length %d, want %d", gen.Curve().Name, len(priv.Bytes()), gen.Curve().Baselen())
		}

		msg := []byte("generated")
		if err := priv.PublicKey().Verify(msg, priv.Sign(msg)); err != nil {
			t.Errorf("%s: generated key failed to sign and verify: %v", gen.Curve().Name, err)
		}
	}
}

func TestGenerateKey_DeterministicReader(t *testing.T) {
	stream := bytes.Repeat([]byte{0xab}, 32)

	priv, err := GenerateKey(Ed25519(), bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	if !bytes.Equal(priv.Bytes(), stream) {
		t.Error("Seed should be read verbatim from the reader")
	}
}

func TestGenerateKey_ShortReader(t *testing.T) {
	_, err := GenerateKey(Ed448(), bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Error("Expected an error from a short entropy stream")
	}
}

func TestKeyBytes_Copies(t *testing.T) {
	priv := mustKey(t, Ed25519(), 41)

	seed := priv.Bytes()
	seed[0] ^= 0xff
	if bytes.Equal(seed, priv.Bytes()) {
		t.Error("Mutating the returned seed should not affect the key")
	}

	pub := priv.PublicKey()
	enc := pub.Bytes()
	enc[0] ^= 0xff
	if bytes.Equal(enc, pub.Bytes()) {
		t.Error("Mutating the returned encoding should not affect the key")
	}
}

func TestKey_GeneratorAccessors(t *testing.T) {
	gen := Ed448()
	priv := mustKey(t, gen, 43)

	if priv.Generator() != gen {
		t.Error("PrivateKey.Generator should return the construction generator")
	}
	if priv.PublicKey().Generator() != gen {
		t.Error("PublicKey.Generator should return the construction generator")
	}
	if !bytes.Equal(priv.PublicKey().Point().Encode(), priv.PublicKey().Bytes()) {
		t.Error("PublicKey.Point should encode to PublicKey.Bytes")
	}
}

func TestGenerator_Singletons(t *testing.T) {
	if Ed25519() != Ed25519() {
		t.Error("Ed25519 should always return the same generator")
	}
	if Ed448() != Ed448() {
		t.Error("Ed448 should always return the same generator")
	}

	o := Ed25519().Order()
	o.SetInt64(42)
	if Ed25519().Order().Cmp(big.NewInt(42)) == 0 {
		t.Error("Order should return a copy")
	}
}

func TestCurve_Descriptors(t *testing.T) {
	c := Ed25519().Curve()
	if c.Name != "ed25519" {
		t.Errorf("Name = %q, want ed25519", c.Name)
	}
	if c.Baselen() != 32 {
		t.Errorf("Baselen = %d, want 32", c.Baselen())
	}
	if c.Cofactor != 8 {
		t.Errorf("Cofactor = %d, want 8", c.Cofactor)
	}
	if len(c.DomainPrefix) != 0 {
		t.Error("ed25519 should have no domain prefix")
	}
	if n := len(c.Hash([]byte("x"))); n != 64 {
		t.Errorf("Hash output %d bytes, want 64", n)
	}

	c = Ed448().Curve()
	if c.Name != "ed448" {
		t.Errorf("Name = %q, want ed448", c.Name)
	}
	if c.Baselen() != 57 {
		t.Errorf("Baselen = %d, want 57", c.Baselen())
	}
	if c.Cofactor != 4 {
		t.Errorf("Cofactor = %d, want 4", c.Cofactor)
	}
	if string(c.DomainPrefix) != "SigEd448\x00\x00" {
		t.Errorf("DomainPrefix = %q, want SigEd448 with two zero bytes", c.DomainPrefix)
	}
	if n := len(c.Hash([]byte("x"))); n != 114 {
		t.Errorf("Hash output %d bytes, want 114", n)
	}
}
