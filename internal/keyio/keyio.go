// Package keyio reads and writes hex-encoded key and signature material and
// resolves curve names, shared by the eddsakey command.
package keyio

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mahdiidarabi/eddsa/pkg/eddsa"
)

// GeneratorByName maps a curve name to its generator.
func GeneratorByName(name string) (*eddsa.Generator, error) {
	switch strings.ToLower(name) {
	case "ed25519":
		return eddsa.Ed25519(), nil
	case "ed448":
		return eddsa.Ed448(), nil
	default:
		return nil, fmt.Errorf("unknown curve %q (supported: ed25519, ed448)", name)
	}
}

// DecodeHex decodes a hex string, tolerating surrounding whitespace and an
// 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// ReadHexFile reads a file holding one hex-encoded byte string.
func ReadHexFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	b, err := DecodeHex(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return b, nil
}

// WriteHexFile writes data to path as a single lowercase hex line. The file
// is created owner-readable only, since it may hold a private seed.
func WriteHexFile(path string, data []byte) error {
	line := hex.EncodeToString(data) + "\n"
	if err := os.WriteFile(path, []byte(line), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadPrivateKey reads a hex seed file and builds the private key.
func LoadPrivateKey(gen *eddsa.Generator, path string) (*eddsa.PrivateKey, error) {
	seed, err := ReadHexFile(path)
	if err != nil {
		return nil, err
	}

	priv, err := eddsa.NewPrivateKey(gen, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key from %s: %w", path, err)
	}
	return priv, nil
}

// LoadPublicKey reads a hex public key file and parses it.
func LoadPublicKey(gen *eddsa.Generator, path string) (*eddsa.PublicKey, error) {
	encoded, err := ReadHexFile(path)
	if err != nil {
		return nil, err
	}

	pub, err := eddsa.NewPublicKey(gen, encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to load public key from %s: %w", path, err)
	}
	return pub, nil
}
