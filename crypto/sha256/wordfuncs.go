package sha256

// Logical functions of FIPS 180-4 section 4.1.2. All arithmetic is on
// uint32, so every result is already reduced modulo 2^32.

// Shr is the logical right shift SHR^n(x).
func Shr(n uint, x uint32) uint32 {
	return x >> n
}

// Rotr is the circular right shift ROTR^n(x), 0 < n < 32.
func Rotr(n uint, x uint32) uint32 {
	return x>>n | x<<(32-n)
}

// Ch picks bits of y where x is set and bits of z elsewhere.
func Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Maj is the bitwise majority of x, y and z.
func Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// BigSigma0 is Σ0, applied to working register a.
func BigSigma0(x uint32) uint32 {
	return Rotr(2, x) ^ Rotr(13, x) ^ Rotr(22, x)
}

// BigSigma1 is Σ1, applied to working register e.
func BigSigma1(x uint32) uint32 {
	return Rotr(6, x) ^ Rotr(11, x) ^ Rotr(25, x)
}

// SmallSigma0 is σ0, used by the message schedule.
func SmallSigma0(x uint32) uint32 {
	return Rotr(7, x) ^ Rotr(18, x) ^ Shr(3, x)
}

// SmallSigma1 is σ1, used by the message schedule.
func SmallSigma1(x uint32) uint32 {
	return Rotr(17, x) ^ Rotr(19, x) ^ Shr(10, x)
}
