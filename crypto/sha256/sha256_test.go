package sha256_test

import (
	gosha256 "crypto/sha256"
	"encoding/binary"
	"errors"
	"math/bits"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/hexsum/crypto/sha256"
	"massnet.org/hexsum/testutil"
)

var golden = []struct {
	in  string
	out string
}{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{strings.Repeat("a", 55), "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318"},
	{strings.Repeat("a", 56), "b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a"},
	{strings.Repeat("a", 64), "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		sum := sha256.Sum256([]byte(g.in))
		assert.Equal(t, g.out, sum.String(), "len=%d", len(g.in))
	}
}

func TestMillionA(t *testing.T) {
	testutil.SkipCI(t)
	sum := sha256.Sum256([]byte(strings.Repeat("a", 1000000)))
	assert.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", sum.String())
}

func TestSum256MatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n <= 300; n++ {
		msg := make([]byte, n)
		r.Read(msg)
		want := gosha256.Sum256(msg)
		got := sha256.Sum256(msg)
		require.Equal(t, want[:], got[:], "len=%d", n)
	}
}

func TestSum256Deterministic(t *testing.T) {
	msg := []byte("TestSum256Deterministic")
	first := sha256.Sum256(msg)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, sha256.Sum256(msg))
	}
	assert.Len(t, sha256.Sum256(nil).Bytes(), sha256.Size)
}

func TestSum256DoesNotModifyInput(t *testing.T) {
	msg := []byte("do not touch")
	orig := append([]byte(nil), msg...)
	sha256.Sum256(msg)
	assert.Equal(t, orig, msg)
}

func TestDoubleSum256(t *testing.T) {
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
		sha256.DoubleSum256([]byte("abc")).String())
}

func TestPadInvariants(t *testing.T) {
	for n := 0; n <= 200; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = 0xff
		}
		p := sha256.Pad(msg)
		require.Equal(t, 0, len(p)%sha256.BlockSize, "len=%d", n)
		require.True(t, len(p) >= n+9, "len=%d", n)
		require.True(t, len(p)-sha256.BlockSize < n+9, "len=%d: padding not minimal", n)
		require.Equal(t, sha256.PaddedLen(n), len(p))
		require.Equal(t, msg, p[:n])
		require.Equal(t, byte(0x80), p[n])
		for _, b := range p[n+1 : len(p)-8] {
			require.Equal(t, byte(0), b, "len=%d", n)
		}
		require.Equal(t, uint64(n)*8, binary.BigEndian.Uint64(p[len(p)-8:]))
		require.Len(t, sha256.ParseBlocks(p), len(p)/sha256.BlockSize)
	}
}

func TestPadBoundary(t *testing.T) {
	assert.Len(t, sha256.Pad(make([]byte, 55)), 64)
	assert.Len(t, sha256.Pad(make([]byte, 56)), 128)
	assert.Len(t, sha256.Pad(make([]byte, 63)), 128)
	assert.Len(t, sha256.Pad(make([]byte, 64)), 128)
	assert.Len(t, sha256.Pad(nil), 64)
}

func TestParseBlocks(t *testing.T) {
	p := make([]byte, 2*sha256.BlockSize)
	for i := range p {
		p[i] = byte(i)
	}
	blocks := sha256.ParseBlocks(p)
	require.Len(t, blocks, 2)
	assert.Equal(t, uint32(0x00010203), blocks[0][0])
	assert.Equal(t, uint32(0x3c3d3e3f), blocks[0][15])
	assert.Equal(t, uint32(0x40414243), blocks[1][0])
	assert.Equal(t, uint32(0x7c7d7e7f), blocks[1][15])

	assert.Panics(t, func() { sha256.ParseBlocks(make([]byte, 63)) })
	assert.Empty(t, sha256.ParseBlocks(nil))
}

func TestExpand(t *testing.T) {
	blocks := sha256.ParseBlocks(sha256.Pad([]byte("abc")))
	require.Len(t, blocks, 1)
	w := sha256.Expand(blocks[0])

	assert.Equal(t, uint32(0x61626380), w[0])
	assert.Equal(t, uint32(0x00000018), w[15])
	for i := 0; i < 16; i++ {
		assert.Equal(t, blocks[0][i], w[i])
	}
	// W16 = σ1(W14) + W9 + σ0(W1) + W0 with W14 = W9 = W1 = 0.
	assert.Equal(t, uint32(0x61626380), w[16])
	// W17 = σ1(W15) + W10 + σ0(W2) + W1.
	assert.Equal(t, sha256.SmallSigma1(0x18), w[17])
}

func TestCompressLeavesInputAlone(t *testing.T) {
	var w sha256.Schedule
	h := sha256.IV
	next := sha256.Compress(h, &w)
	assert.Equal(t, sha256.IV, h)
	assert.NotEqual(t, h, next)
}

func TestHashWords(t *testing.T) {
	sum := sha256.Sum256([]byte("abc"))
	words := sum.Words()
	assert.Equal(t, uint32(0xba7816bf), words[0])
	assert.Equal(t, uint32(0xf20015ad), words[7])
	assert.Equal(t, sum, words.Hash())
}

func TestConcurrentSum256(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for j := 0; j < 200; j++ {
				msg := make([]byte, r.Intn(512))
				r.Read(msg)
				want := gosha256.Sum256(msg)
				if got := sha256.Sum256(msg); got != sha256.Hash(want) {
					errs <- errors.New("concurrent digest mismatch")
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestAvalanche(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const rounds = 256
	total := 0
	for i := 0; i < rounds; i++ {
		msg := make([]byte, 1+r.Intn(128))
		r.Read(msg)
		a := sha256.Sum256(msg)
		bit := r.Intn(len(msg) * 8)
		msg[bit/8] ^= 1 << uint(bit%8)
		b := sha256.Sum256(msg)
		for j := range a {
			total += bits.OnesCount8(a[j] ^ b[j])
		}
	}
	mean := float64(total) / rounds
	assert.InDelta(t, 128, mean, 8, "mean flipped output bits")
}

func TestDecodeStringToHash(t *testing.T) {
	tests := []*struct {
		str string
		err error
	}{
		{
			str: "0123456789",
			err: sha256.ErrInvalidHashLength,
		},
		{
			str: "01234567890123456789012345678901234567890123456789012345678901234",
			err: sha256.ErrInvalidHashLength,
		},
		{
			str: "0123456789012345678901234567890123456789012345678901234567890123",
			err: nil,
		},
		{
			str: "g123456789012345678901234567890123456789012345678901234567890123",
			err: errors.New("encoding/hex: invalid byte: U+0067 'g'"),
		},
	}

	for i, test := range tests {
		if _, err := sha256.DecodeStringToHash(test.str); !testutil.SameErrorString(err, test.err) {
			t.Errorf("%d, DecodeStringToHash error not match, got = %v, want = %v", i, err, test.err)
		}
	}

	h := sha256.Sum256([]byte("TestDecodeStringToHash"))
	decoded, err := sha256.DecodeStringToHash(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}
