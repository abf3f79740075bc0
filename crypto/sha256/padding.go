package sha256

import "encoding/binary"

// PaddedLen returns the length in bytes of a padded n-byte message: the
// smallest multiple of BlockSize that fits n bytes, the 0x80 marker and
// the 8-byte length field.
func PaddedLen(n int) int {
	return (n + 1 + lenSize + BlockSize - 1) / BlockSize * BlockSize
}

// Pad returns a copy of msg followed by a single 1 bit, zero bits up to
// 448 mod 512, and the message length in bits as a 64-bit big-endian
// integer. msg itself is never modified.
//
// The length field holds len(msg)*8 modulo 2^64; longer messages are
// outside the domain of SHA-256.
func Pad(msg []byte) []byte {
	p := make([]byte, PaddedLen(len(msg)))
	copy(p, msg)
	p[len(msg)] = 0x80
	binary.BigEndian.PutUint64(p[len(p)-lenSize:], uint64(len(msg))<<3)
	return p
}
