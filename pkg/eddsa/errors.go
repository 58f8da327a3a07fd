package eddsa

import "errors"

// Sentinel errors returned by key construction and signature verification.
// Call sites wrap them with fmt.Errorf("%w: ...") to add detail, so callers
// should match with errors.Is.
var (
	// ErrInvalidKeyLength is returned when seed or public key material does not
	// match the curve's fixed byte length.
	ErrInvalidKeyLength = errors.New("eddsa: invalid key length")

	// ErrInvalidSignatureLength is returned when a signature is not exactly
	// twice the curve's base length.
	ErrInvalidSignatureLength = errors.New("eddsa: invalid signature length")

	// ErrInvalidSignatureValue is returned when the S half of a signature is
	// not a canonical scalar below the group order.
	ErrInvalidSignatureValue = errors.New("eddsa: signature scalar out of range")

	// ErrInvalidEncodedPoint is returned when bytes are not the canonical
	// encoding of a point on the curve.
	ErrInvalidEncodedPoint = errors.New("eddsa: invalid point encoding")

	// ErrVerification is returned when a well-formed signature does not satisfy
	// the verification equation. Callers should treat any error from Verify as
	// "signature invalid" unless they need the diagnostic detail.
	ErrVerification = errors.New("eddsa: verification failed")
)
