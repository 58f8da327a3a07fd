package eddsa

import "math/big"

// bytesToInt interprets b as a little-endian unsigned integer.
func bytesToInt(b []byte) *big.Int {
	buf := make([]byte, len(b))
	for i, v := range b {
		buf[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(buf)
}

// intToBytes encodes v as a little-endian unsigned integer of exactly size
// bytes. v must be non-negative and fit in size bytes.
func intToBytes(v *big.Int, size int) []byte {
	buf := make([]byte, size)
	v.FillBytes(buf)
	for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// concat joins byte strings into a freshly allocated buffer. Hash inputs are
// assembled with it so no argument slice is ever aliased or modified.
func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
