package eddsa

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// fixturesDir returns the path to the fixtures directory (works regardless of test cwd).
func fixturesDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "..", "..", "fixtures")
}

// signatureVector is one known-answer entry. All byte fields are hex encoded;
// an empty message string means the empty message.
type signatureVector struct {
	Name      string `json:"name"`
	Curve     string `json:"curve"`
	Seed      string `json:"seed"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// loadSignatureVectors reads a known-answer file from the fixtures directory.
func loadSignatureVectors(filename string) ([]signatureVector, error) {
	data, err := os.ReadFile(filepath.Join(fixturesDir(), filename))
	if err != nil {
		return nil, err
	}

	var vectors []signatureVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}

func hexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
