// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
//
// The message is padded, split into 512-bit blocks, and each block is
// expanded into a 64-word schedule and compressed into the running
// chaining value, starting from IV. Every step is exposed so callers
// can inspect intermediate values; Sum256 chains them together.
//
// The package holds no mutable state, so Sum256 is safe for concurrent
// use.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// ErrInvalidHashLength indicates the length of hash is invalid.
var ErrInvalidHashLength = errors.New("invalid length for hash")

// Hash represents a 32-byte SHA-256 digest.
type Hash [Size]byte

// Sum256 returns the SHA-256 digest of msg. It parses blocks in place
// rather than through ParseBlocks; ExampleCompress shows the same chain
// built from the exported steps.
func Sum256(msg []byte) Hash {
	return blockGeneric(IV, Pad(msg)).Hash()
}

// DoubleSum256 returns Sum256(Sum256(msg)).
func DoubleSum256(msg []byte) Hash {
	h := Sum256(msg)
	return Sum256(h[:])
}

// Hash renders the chaining value as a big-endian digest.
func (s State) Hash() Hash {
	var h Hash
	for i, v := range s {
		binary.BigEndian.PutUint32(h[i*4:], v)
	}
	return h
}

// Words returns the digest as eight big-endian words.
func (h Hash) Words() State {
	var s State
	for i := range s {
		s[i] = binary.BigEndian.Uint32(h[i*4:])
	}
	return s
}

// Bytes converts Hash to Byte Slice.
func (h Hash) Bytes() []byte {
	var bs Hash
	copy(bs[:], h[:])
	return bs[:]
}

// String converts Hash to String.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// DecodeStringToHash decodes a string value to Hash,
// the length of string value must be 64.
func DecodeStringToHash(str string) (Hash, error) {
	if len(str) != 2*Size {
		return Hash{}, ErrInvalidHashLength
	}
	hBytes, err := hex.DecodeString(str)
	if err != nil {
		return Hash{}, err
	}
	var h = Hash{}
	copy(h[:], hBytes)

	return h, nil
}
