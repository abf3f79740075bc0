// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// SHA256 compression step.
// In its own file so that a faster assembly or C version
// can be substituted easily.

package sha256

// State is a chaining value H(i), eight 32-bit words.
type State [8]uint32

// Compress runs the 64 rounds of the compression function over w and
// returns the next chaining value. h is taken by value, so the caller's
// copy is left untouched; all working registers live on this frame.
func Compress(h State, w *Schedule) State {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < 64; t++ {
		t1 := hh + BigSigma1(e) + Ch(e, f, g) + K[t] + w[t]
		t2 := BigSigma0(a) + Maj(a, b, c)

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
	return h
}

// blockGeneric folds every whole block of p into h.
func blockGeneric(h State, p []byte) State {
	var m Block
	for len(p) >= chunk {
		parseBlock(&m, p)
		w := Expand(m)
		h = Compress(h, &w)
		p = p[chunk:]
	}
	return h
}
