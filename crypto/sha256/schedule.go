package sha256

// Schedule is the 64-word message schedule W of one block.
type Schedule [64]uint32

// Expand derives the message schedule of b.
func Expand(b Block) Schedule {
	var w Schedule
	copy(w[:16], b[:])
	for t := 16; t < 64; t++ {
		w[t] = SmallSigma1(w[t-2]) + w[t-7] + SmallSigma0(w[t-15]) + w[t-16]
	}
	return w
}
