package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/mahdiidarabi/eddsa/pkg/eddsa"
)

// KnownVector is a published Ed25519 known-answer test case: a seed with its
// expected public key, plus a message and the signature it must produce.
type KnownVector struct {
	Name      string
	Seed      string
	PublicKey string
	Message   string
	Signature string
}

var knownVectors = []KnownVector{
	{
		Name:      "TEST 1",
		Seed:      "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		PublicKey: "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		Message:   "",
		Signature: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		Name:      "TEST 2",
		Seed:      "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		PublicKey: "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		Message:   "72",
		Signature: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
	{
		Name:      "TEST 3",
		Seed:      "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		PublicKey: "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		Message:   "af82",
		Signature: "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

// checkKnownVector rebuilds the key from the seed and checks every derived
// value against the published one.
func checkKnownVector(vec KnownVector) error {
	seed, err := hex.DecodeString(vec.Seed)
	if err != nil {
		return fmt.Errorf("invalid seed hex: %v", err)
	}
	message, err := hex.DecodeString(vec.Message)
	if err != nil {
		return fmt.Errorf("invalid message hex: %v", err)
	}

	priv, err := eddsa.NewPrivateKey(eddsa.Ed25519(), seed)
	if err != nil {
		return fmt.Errorf("failed to build private key: %v", err)
	}

	pub := priv.PublicKey()
	if got := hex.EncodeToString(pub.Bytes()); got != vec.PublicKey {
		return fmt.Errorf("derived public key %s, want %s", got, vec.PublicKey)
	}

	signature := priv.Sign(message)
	if got := hex.EncodeToString(signature); got != vec.Signature {
		return fmt.Errorf("produced signature %s, want %s", got, vec.Signature)
	}

	if err := pub.Verify(message, signature); err != nil {
		return fmt.Errorf("rejected own signature: %v", err)
	}
	return nil
}

// checkEd448RoundTrip exercises Ed448 end to end with a fresh key: sign,
// verify, and make sure a corrupted signature is rejected.
func checkEd448RoundTrip() error {
	priv, err := eddsa.GenerateKey(eddsa.Ed448(), nil)
	if err != nil {
		return fmt.Errorf("key generation failed: %v", err)
	}

	message := []byte("ed448 round trip")
	signature := priv.Sign(message)
	if err := priv.PublicKey().Verify(message, signature); err != nil {
		return fmt.Errorf("rejected own signature: %v", err)
	}

	tampered := append([]byte(nil), signature...)
	tampered[0] ^= 0x40
	if err := priv.PublicKey().Verify(message, tampered); err == nil {
		return fmt.Errorf("accepted a tampered signature")
	}
	return nil
}

func main() {
	fmt.Println("🔍 Checking Ed25519 known-answer vectors...")

	failed := 0
	for _, vec := range knownVectors {
		if err := checkKnownVector(vec); err != nil {
			fmt.Printf("❌ %s: %v\n", vec.Name, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", vec.Name)
	}

	fmt.Println("\n🔍 Checking Ed448 sign/verify round trip...")
	if err := checkEd448RoundTrip(); err != nil {
		fmt.Printf("❌ %v\n", err)
		failed++
	} else {
		fmt.Println("✅ Round trip OK")
	}

	if failed > 0 {
		fmt.Printf("\n❌ %d check(s) FAILED.\n", failed)
		os.Exit(1)
	}
	fmt.Println("\n✅ All checks passed.")
}
