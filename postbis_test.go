// Copyright 2026 The Postbis Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package postbis

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// alignedAASymbols are the bytes accepted by the case-insensitive
// aligned IUPAC table.
const alignedAASymbols = "ACDEFGHIKLMNPQRSTVWYBJXZ-"

func mustCompress(t *testing.T, s string, tm TypeModifier) *CompressedSequence {
	t.Helper()
	seq, err := Compress([]byte(s), tm, nil)
	require.NoError(t, err)
	return seq
}

func text(t *testing.T, seq *CompressedSequence) string {
	t.Helper()
	b, err := seq.Text()
	require.NoError(t, err)
	return string(b)
}

// randAligned generates gap-heavy aligned sequences, mixing letter
// cases the way real inputs do.
func randAligned(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		switch {
		case rng.Intn(3) == 0:
			out[i] = '-'
		case rng.Intn(4) == 0:
			b := alignedAASymbols[rng.Intn(len(alignedAASymbols)-1)]
			out[i] = b + ('a' - 'A')
		default:
			out[i] = alignedAASymbols[rng.Intn(len(alignedAASymbols)-1)]
		}
	}
	return out
}

func foldUpper(s []byte) []byte {
	return bytes.ToUpper(s)
}

func TestCompressScenarios(t *testing.T) {
	// The canonical walk-through: compress, length, substring.
	seq := mustCompress(t, "MKT--AA", TypeModifier{})
	require.Equal(t, 7, seq.CharLength())
	sub, err := seq.Substring(4, 2)
	require.NoError(t, err)
	require.Equal(t, "--", text(t, sub))
	sub, err = seq.Substring(4, 4)
	require.NoError(t, err)
	require.Equal(t, "--AA", text(t, sub))

	sub, err = mustCompress(t, "MKT-AA", TypeModifier{}).Substring(4, 2)
	require.NoError(t, err)
	require.Equal(t, "-A", text(t, sub))

	// Case folding under the default modifier: equal hash, equal order.
	lower := mustCompress(t, "mkt", TypeModifier{})
	upper := mustCompress(t, "MKT", TypeModifier{})
	hl, err := lower.Hash()
	require.NoError(t, err)
	hu, err := upper.Hash()
	require.NoError(t, err)
	require.Equal(t, hu, hl)
	c, err := lower.Compare(upper)
	require.NoError(t, err)
	require.Equal(t, 0, c)

	// Case preserved under a case-sensitive modifier.
	cs := TypeModifier{CaseSensitive: true}
	c, err = mustCompress(t, "Mkt", cs).Compare(mustCompress(t, "MKT", cs))
	require.NoError(t, err)
	require.NotEqual(t, 0, c)

	// '*' is not an aligned amino-acid symbol.
	_, err = Compress([]byte("MK*T"), TypeModifier{}, nil)
	require.True(t, errors.Is(err, ErrUnknownSymbol))
	require.EqualError(t, err, "aligned_aa: unknown symbol '*' at offset 2")

	rev, err := mustCompress(t, "ABC-D", TypeModifier{}).Reverse()
	require.NoError(t, err)
	require.Equal(t, "D-CBA", text(t, rev))

	pos, err := mustCompress(t, "MKTAAAG--M", TypeModifier{}).
		Strpos(mustCompress(t, "AAG", TypeModifier{}))
	require.NoError(t, err)
	require.Equal(t, 5, pos)
}

func TestSubstringClamping(t *testing.T) {
	seq := mustCompress(t, "MKTAAA", TypeModifier{})

	cases := []struct {
		start, length int
		want          string
	}{
		{1, 3, "MKT"},
		{4, 100, "AAA"},
		{0, 2, "M"},   // zero start shifts the window
		{-1, 3, "M"},  // negative start shifts further
		{-5, 3, ""},   // window entirely before the sequence
		{7, 3, ""},    // window entirely past the end
		{3, 0, ""},    // empty window
		{1, 6, "MKTAAA"},
	}
	for _, c := range cases {
		sub, err := seq.Substring(c.start, c.length)
		require.NoError(t, err, "substring(%d, %d)", c.start, c.length)
		require.Equal(t, c.want, text(t, sub), "substring(%d, %d)", c.start, c.length)
	}

	_, err := seq.Substring(1, -1)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestRoundTripRandom(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, tm := range []TypeModifier{
		{},
		{CaseSensitive: true},
	} {
		for i := 0; i < 50; i++ {
			in := randAligned(rng, rng.Intn(2000))
			seq, err := Compress(in, tm, nil)
			require.NoError(t, err)
			require.Equal(t, len(in), seq.CharLength())

			want := in
			if !tm.CaseSensitive {
				want = foldUpper(in)
			}
			require.Equal(t, string(want), text(t, seq))

			// The blob reparses to an identical value.
			reparsed, err := FromBytes(seq.Bytes())
			require.NoError(t, err)
			require.Equal(t, string(want), text(t, reparsed))
			require.Equal(t, tm, reparsed.Modifier())
		}
	}
}

func TestCompressWithSequenceInfo(t *testing.T) {
	in := []byte(strings.Repeat("MKT--aa-", 64))
	with, err := Compress(in, TypeModifier{}, ScanSequenceInfo(in))
	require.NoError(t, err)
	without, err := Compress(in, TypeModifier{}, nil)
	require.NoError(t, err)
	require.Equal(t, with.Bytes(), without.Bytes())
}

func TestSubstringLaw(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	in := foldUpper(randAligned(rng, 5000))
	seq, err := Compress(in, TypeModifier{}, nil)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		a := rng.Intn(len(in))
		l := rng.Intn(len(in) - a)
		sub, err := seq.Substring(a+1, l)
		require.NoError(t, err)
		require.Equal(t, string(in[a:a+l]), text(t, sub), "substring(%d, %d)", a+1, l)
	}
}

func TestReverseInvolution(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, n := range []int{0, 1, 7, 127, 128, 1000} {
		seq, err := Compress(randAligned(rng, n), TypeModifier{}, nil)
		require.NoError(t, err)
		rev, err := seq.Reverse()
		require.NoError(t, err)
		back, err := rev.Reverse()
		require.NoError(t, err)
		require.Equal(t, seq.Bytes(), back.Bytes(), "n=%d", n)
	}
}

func TestHashIgnoresSwizzle(t *testing.T) {
	// The hash covers the decoded stream, so values holding the same
	// symbols hash equally even when their tables and swizzles differ.
	// An uppercase input compresses identically-decoding values under
	// both case rules, with different code tables.
	in := strings.Repeat("W", 200) + "MKT"
	ci := mustCompress(t, in, TypeModifier{})
	cs := mustCompress(t, in, TypeModifier{CaseSensitive: true})

	h1, err := ci.Hash()
	require.NoError(t, err)
	h2, err := cs.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	copySeq, err := ci.Substring(1, ci.CharLength())
	require.NoError(t, err)
	h3, err := copySeq.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h3)

	eq, err := ci.Equal(cs)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestCompareTotality(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	var seqs []*CompressedSequence
	var texts []string
	for i := 0; i < 30; i++ {
		in := foldUpper(randAligned(rng, rng.Intn(300)))
		seq, err := Compress(in, TypeModifier{}, nil)
		require.NoError(t, err)
		seqs = append(seqs, seq)
		texts = append(texts, string(in))
	}
	for i := range seqs {
		for j := range seqs {
			want := strings.Compare(texts[i], texts[j])
			got, err := seqs[i].Compare(seqs[j])
			require.NoError(t, err)
			require.Equal(t, want, got, "%q vs %q", texts[i], texts[j])

			eq, err := seqs[i].Equal(seqs[j])
			require.NoError(t, err)
			require.Equal(t, want == 0, eq)
			lt, err := seqs[i].Less(seqs[j])
			require.NoError(t, err)
			require.Equal(t, want < 0, lt)
			ge, err := seqs[i].GreaterEqual(seqs[j])
			require.NoError(t, err)
			require.Equal(t, want >= 0, ge)
		}
	}
}

func TestStrposLaw(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	in := foldUpper(randAligned(rng, 3000))
	hay, err := Compress(in, TypeModifier{}, nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		a := rng.Intn(len(in))
		l := rng.Intn(min(len(in)-a, 20)) + 1
		needle, err := Compress(in[a:a+l], TypeModifier{}, nil)
		require.NoError(t, err)

		pos, err := hay.Strpos(needle)
		require.NoError(t, err)
		require.Equal(t, bytes.Index(in, in[a:a+l])+1, pos)
		require.Greater(t, pos, 0)

		// strpos law: the haystack substring at the returned position
		// decodes to the needle.
		sub, err := hay.Substring(pos, l)
		require.NoError(t, err)
		require.Equal(t, string(in[a:a+l]), text(t, sub))
	}

	// Case folding follows the haystack's modifier.
	pos, err := hay.Strpos(mustCompress(t, strings.ToLower(string(in[10:20])),
		TypeModifier{CaseSensitive: true}))
	require.NoError(t, err)
	require.Equal(t, bytes.Index(in, in[10:20])+1, pos)

	// Empty needle matches at position 1.
	pos, err = hay.Strpos(mustCompress(t, "", TypeModifier{}))
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	// A needle longer than the haystack is never found.
	little := mustCompress(t, "MKT", TypeModifier{})
	pos, err = little.Strpos(hay)
	require.NoError(t, err)
	require.Equal(t, 0, pos)
}

func TestIdempotentRecompression(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, n := range []int{0, 5, 127, 128, 2000} {
		v, err := Compress(randAligned(rng, n), TypeModifier{}, nil)
		require.NoError(t, err)
		decoded, err := v.Text()
		require.NoError(t, err)
		u, err := Compress(decoded, v.Modifier(), nil)
		require.NoError(t, err)
		require.Equal(t, v.Bytes(), u.Bytes(), "n=%d", n)
	}
}

func TestAlphabetExtraction(t *testing.T) {
	seq := mustCompress(t, "MKT--AA", TypeModifier{})
	ab, err := seq.Alphabet()
	require.NoError(t, err)
	require.Equal(t, "MKT-A", string(ab))

	seq = mustCompress(t, "mktMKT", TypeModifier{CaseSensitive: true})
	ab, err = seq.Alphabet()
	require.NoError(t, err)
	require.Equal(t, "mktMKT", string(ab))

	empty := mustCompress(t, "", TypeModifier{})
	ab, err = empty.Alphabet()
	require.NoError(t, err)
	require.Empty(t, ab)
}

func TestASCIIAlphabetMode(t *testing.T) {
	ascii := TypeModifier{RestrictingAlphabet: RestrictASCII}
	seq := mustCompress(t, "MKT 123 -- x*?", ascii)
	require.Equal(t, "MKT 123 -- X*?", text(t, seq))

	csASCII := TypeModifier{CaseSensitive: true, RestrictingAlphabet: RestrictASCII}
	seq = mustCompress(t, "Mkt {ok}", csASCII)
	require.Equal(t, "Mkt {ok}", text(t, seq))

	// Line endings are not stripped; they are symbol errors even under
	// ASCII, which accepts printable bytes only.
	_, err := Compress([]byte("MKT\n"), ascii, nil)
	require.True(t, errors.Is(err, ErrUnknownSymbol))
	_, err = Compress([]byte{0x80}, ascii, nil)
	require.True(t, errors.Is(err, ErrUnknownSymbol))

	// Whitespace is a symbol error under IUPAC.
	_, err = Compress([]byte("MKT "), TypeModifier{}, nil)
	require.True(t, errors.Is(err, ErrUnknownSymbol))
}

func TestEmptySequence(t *testing.T) {
	seq := mustCompress(t, "", TypeModifier{})
	require.Equal(t, 0, seq.CharLength())
	require.Equal(t, "", text(t, seq))
	require.Equal(t, headerSize, seq.OctetLength())

	rev, err := seq.Reverse()
	require.NoError(t, err)
	require.Equal(t, 0, rev.CharLength())

	reparsed, err := FromBytes(seq.Bytes())
	require.NoError(t, err)
	require.Equal(t, 0, reparsed.CharLength())
}

func TestOctetLengthAndRatio(t *testing.T) {
	in := strings.Repeat("-", 10000) + "MKT"
	seq := mustCompress(t, in, TypeModifier{})
	require.Equal(t, len(seq.Bytes()), seq.OctetLength())
	// Gap-heavy data compresses well even with header and index
	// overhead: 2 bits per symbol against 8 in text form.
	require.Greater(t, seq.CompressionRatio(), 2.0)
	require.Less(t, seq.CompressionRatio(), 4.0)
}

func TestCStringAdapter(t *testing.T) {
	seq, err := CompressCString([]byte("MKT--AA\x00trailing garbage"), TypeModifier{})
	require.NoError(t, err)
	require.Equal(t, 7, seq.CharLength())

	out, err := seq.CString()
	require.NoError(t, err)
	require.Equal(t, "MKT--AA\x00", string(out))

	// A buffer without a NUL is used whole.
	seq, err = CompressCString([]byte("MKT"), TypeModifier{})
	require.NoError(t, err)
	require.Equal(t, 3, seq.CharLength())
}

func TestDecompressOutOfRange(t *testing.T) {
	seq := mustCompress(t, "MKTAAA", TypeModifier{})
	out := make([]byte, 10)
	require.True(t, errors.Is(seq.Decompress(out, 4, 3), ErrOutOfRange))
	require.True(t, errors.Is(seq.Decompress(out, -1, 2), ErrOutOfRange))
	require.True(t, errors.Is(seq.Decompress(out, 0, -1), ErrOutOfRange))
	require.NoError(t, seq.Decompress(out, 4, 2))
	require.Equal(t, "AA", string(out[:2]))
}

func TestCorruptBlobs(t *testing.T) {
	_, err := FromBytes([]byte{1, 2})
	require.True(t, errors.Is(err, ErrCorruptHeader))

	// Impossible stride.
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))
	indexed := foldUpper(randAligned(rng, 1000))
	seq, err := Compress(indexed, TypeModifier{}, nil)
	require.NoError(t, err)
	blob := bytes.Clone(seq.Bytes())
	blob[4] = 0
	_, err = FromBytes(blob)
	require.True(t, errors.Is(err, ErrCorruptHeader), "%v", err)

	// Index anchors pointing past the truncated stream end.
	blob = bytes.Clone(seq.Bytes())
	_, err = FromBytes(blob[:len(blob)-100])
	require.True(t, errors.Is(err, ErrCorruptHeader), "%v", err)

	// Non-bijective swizzle map. A long single-symbol run swizzles but
	// stays below the index threshold, so the map starts at offset 4.
	swizzled := mustCompress(t, strings.Repeat("W", 100), TypeModifier{})
	blob = bytes.Clone(swizzled.Bytes())
	blob[4], blob[5] = 0, 0
	_, err = FromBytes(blob)
	require.True(t, errors.Is(err, ErrCorruptHeader), "%v", err)
}

func TestDescribe(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	seq, err := Compress(randAligned(rng, 500), TypeModifier{}, nil)
	require.NoError(t, err)
	dump := seq.Describe()
	require.Contains(t, dump, "symbol_count=500")
	require.Contains(t, dump, "table=iupac")
	require.Contains(t, dump, "stride_log2=6")
	require.Contains(t, dump, "code stream")
}

func TestIndexedRandomAccess(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	in := foldUpper(randAligned(rng, 20000))
	seq, err := Compress(in, TypeModifier{}, nil)
	require.NoError(t, err)

	out := make([]byte, 64)
	for i := 0; i < 500; i++ {
		from := rng.Intn(len(in) - 64)
		require.NoError(t, seq.Decompress(out, from, 64))
		require.Equal(t, string(in[from:from+64]), string(out))
	}
	// Tail windows that cross the final, implicit anchor.
	require.NoError(t, seq.Decompress(out, len(in)-64, 64))
	require.Equal(t, string(in[len(in)-64:]), string(out))
}
