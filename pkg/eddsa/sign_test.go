package eddsa

import (
	"bytes"
	"testing"
)

// mustKey builds a private key from a fixed seed pattern so tests stay
// deterministic.
func mustKey(t *testing.T, gen *Generator, fill byte) *PrivateKey {
	t.Helper()
	seed := make([]byte, gen.Curve().Baselen())
	for i := range seed {
		seed[i] = fill + byte(i)
	}
	priv, err := NewPrivateKey(gen, seed)
	if err != nil {
		t.Fatalf("Failed to build private key: %v", err)
	}
	return priv
}

func TestSign_Deterministic(t *testing.T) {
	for _, gen := range []*Generator{Ed25519(), Ed448()} {
		priv := mustKey(t, gen, 1)
		msg := []byte("deterministic input")

		sig1 := priv.Sign(msg)
		sig2 := priv.Sign(msg)
		if !bytes.Equal(sig1, sig2) {
			t.Errorf("%s: signing the same message twice gave different signatures", gen.Curve().Name)
		}
	}
}

func TestSign_StableAcrossInstances(t *testing.T) {
	for _, gen := range []*Generator{Ed25519(), Ed448()} {
		seed := mustKey(t, gen, 5).Bytes()
		msg := []byte("no hidden state")

		k1, err := NewPrivateKey(gen, seed)
		if err != nil {
			t.Fatalf("Failed to build first key: %v", err)
		}
		k2, err := NewPrivateKey(gen, seed)
		if err != nil {
			t.Fatalf("Failed to build second key: %v", err)
		}
		if !bytes.Equal(k1.Sign(msg), k2.Sign(msg)) {
			t.Errorf("%s: two keys from the same seed signed differently", gen.Curve().Name)
		}
	}
}

func TestSign_Length(t *testing.T) {
	for _, gen := range []*Generator{Ed25519(), Ed448()} {
		priv := mustKey(t, gen, 3)

		sig := priv.Sign([]byte("x"))
		if want := 2 * gen.Curve().Baselen(); len(sig) != want {
			t.Errorf("%s: signature length %d, want %d", gen.Curve().Name, len(sig), want)
		}
	}
}

func TestSign_NilMessageSameAsEmpty(t *testing.T) {
	priv := mustKey(t, Ed25519(), 9)

	if !bytes.Equal(priv.Sign(nil), priv.Sign([]byte{})) {
		t.Error("nil and empty messages should produce the same signature")
	}
}

func TestSignVerify_MessageSizes(t *testing.T) {
	sizes := []int{0, 1, 2, 1023, 64 * 1024}
	for _, gen := range []*Generator{Ed25519(), Ed448()} {
		priv := mustKey(t, gen, 7)
		pub := priv.PublicKey()

		for _, n := range sizes {
			msg := make([]byte, n)
			for i := range msg {
				msg[i] = byte(i % 251)
			}

			sig := priv.Sign(msg)
			if err := pub.Verify(msg, sig); err != nil {
				t.Errorf("%s: %d-byte message failed to verify: %v", gen.Curve().Name, n, err)
			}
		}
	}
}

func benchmarkSign(b *testing.B, gen *Generator) {
	seed := make([]byte, gen.Curve().Baselen())
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	priv, err := NewPrivateKey(gen, seed)
	if err != nil {
		b.Fatalf("Failed to build private key: %v", err)
	}
	priv.PublicKey()
	msg := []byte("benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		priv.Sign(msg)
	}
}

func BenchmarkSignEd25519(b *testing.B) { benchmarkSign(b, Ed25519()) }

func BenchmarkSignEd448(b *testing.B) { benchmarkSign(b, Ed448()) }
