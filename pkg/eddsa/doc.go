// Package eddsa implements the Edwards-curve Digital Signature Algorithm
// (Pure EdDSA, RFC 8032) over the edwards25519 and edwards448 curves.
//
// Signatures are deterministic: the nonce is derived from the seed digest
// and the message, so signing never consumes randomness and the same key
// and message always produce the same signature. Ed25519 output is
// byte-for-byte compatible with crypto/ed25519.
//
// Basic Usage:
//
//	priv, err := eddsa.GenerateKey(eddsa.Ed25519(), nil)
//	if err != nil {
//		// handle err
//	}
//	sig := priv.Sign(message)
//
//	pub := priv.PublicKey()
//	if err := pub.Verify(message, sig); err != nil {
//		// signature rejected
//	}
//
// Keys can also be rebuilt from raw material: NewPrivateKey takes the seed
// and NewPublicKey the encoded point, both exactly Curve.Baselen() bytes
// (32 for ed25519, 57 for ed448).
//
// Curve arithmetic sits behind the Point and Engine interfaces. Ed25519
// runs on filippo.io/edwards25519; ed448 runs on an affine math/big engine.
// NewGenerator accepts any Engine, so a different backend can be swapped in
// without touching the protocol layer.
//
// The hash-to-scalar pipeline and the big.Int engine make no
// constant-time guarantees. The seed, the derived scalar, and signing with
// them are secret-dependent; run them on trusted hosts only.
//
// See the examples/sign directory for a runnable walkthrough on both curves.
package eddsa
