package eddsa

import "math/big"

// pruneScalar derives the secret scalar from the first half of the seed
// digest. The low bits are cleared so the scalar is a multiple of the
// cofactor, and a fixed high bit is set so its length never varies.
func pruneScalar(curve *Curve, digest []byte) *big.Int {
	buf := make([]byte, len(digest))
	copy(buf, digest)

	switch curve.Cofactor {
	case 4:
		buf[0] &^= 0x03
	case 8:
		buf[0] &^= 0x07
	default:
		panic("eddsa: unsupported cofactor")
	}

	if rem := curve.P.BitLen() % 8; rem == 0 {
		// The encoding has a whole spare byte above the field, as with
		// ed448: zero it and pin the bit just below.
		buf[len(buf)-1] = 0
		buf[len(buf)-2] |= 0x80
	} else {
		// Field and encoding share the last byte, as with ed25519: keep
		// only in-field bits and pin the highest of them.
		buf[len(buf)-1] &= byte(1<<rem - 1)
		buf[len(buf)-1] |= byte(1 << (rem - 1))
	}

	return bytesToInt(buf)
}
