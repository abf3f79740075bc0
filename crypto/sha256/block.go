package sha256

import "fmt"

// Block is one 512-bit message block as 16 big-endian words.
type Block [16]uint32

// ParseBlocks splits a padded message into blocks. It panics if
// len(padded) is not a multiple of BlockSize, which Pad never produces.
func ParseBlocks(padded []byte) []Block {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: padded length %d is not a multiple of %d", len(padded), BlockSize))
	}
	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		parseBlock(&blocks[i], padded[i*BlockSize:])
	}
	return blocks
}

// parseBlock fills b from the first BlockSize bytes of p.
func parseBlock(b *Block, p []byte) {
	_ = p[BlockSize-1] // bounds check hint to compiler
	for i := 0; i < 16; i++ {
		j := i * 4
		b[i] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
	}
}
