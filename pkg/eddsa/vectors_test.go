package eddsa

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRFC8032Ed25519Vectors checks the library against the known ed25519
// answers published with the algorithm (RFC 8032, section 7.1).
func TestRFC8032Ed25519Vectors(t *testing.T) {
	vectors, err := loadSignatureVectors("rfc8032_ed25519.json")
	require.NoError(t, err, "loading fixture file")
	require.NotEmpty(t, vectors)

	for _, vec := range vectors {
		t.Run(vec.Name, func(t *testing.T) {
			require.Equal(t, "ed25519", vec.Curve)

			seed, err := hexDecode(vec.Seed)
			require.NoError(t, err)
			msg, err := hexDecode(vec.Message)
			require.NoError(t, err)
			pubBytes, err := hexDecode(vec.PublicKey)
			require.NoError(t, err)

			priv, err := NewPrivateKey(Ed25519(), seed)
			require.NoError(t, err)

			assert.Equal(t, vec.PublicKey, hex.EncodeToString(priv.PublicKey().Bytes()),
				"derived public key")

			sig := priv.Sign(msg)
			assert.Equal(t, vec.Signature, hex.EncodeToString(sig), "signature bytes")

			pub, err := NewPublicKey(Ed25519(), pubBytes)
			require.NoError(t, err)
			assert.NoError(t, pub.Verify(msg, sig), "verifying own signature")

			wantSig, err := hexDecode(vec.Signature)
			require.NoError(t, err)
			assert.NoError(t, pub.Verify(msg, wantSig), "verifying fixture signature")
		})
	}
}
