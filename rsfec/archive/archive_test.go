package archive

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHuffmanCodesDyadic(t *testing.T) {
	codes, err := BuildHuffmanCodes([]float64{0.5, 0.25, 0.25})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	want := []string{"0", "11", "10"}
	for i, w := range want {
		if codes.Codewords[i] != w {
			t.Fatalf("codeword %d: got %q, want %q", i, codes.Codewords[i], w)
		}
	}
	if !almostEqual(codes.MeanCodeLength(), 1.5) {
		t.Fatalf("mean code length: got %v, want 1.5", codes.MeanCodeLength())
	}
	if !almostEqual(codes.Entropy(), 1.5) {
		t.Fatalf("entropy: got %v, want 1.5", codes.Entropy())
	}
	if !almostEqual(codes.RelativeEfficiency(), 1.0) {
		t.Fatalf("efficiency: got %v, want 1.0", codes.RelativeEfficiency())
	}
}

func TestHuffmanCodesSkewed(t *testing.T) {
	codes, err := BuildHuffmanCodes([]float64{0.4, 0.3, 0.2, 0.1})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !almostEqual(codes.MeanCodeLength(), 1.9) {
		t.Fatalf("mean code length: got %v, want 1.9", codes.MeanCodeLength())
	}
	if eff := codes.RelativeEfficiency(); eff <= 0 || eff > 1 {
		t.Fatalf("efficiency out of range: %v", eff)
	}
	assertPrefixFree(t, codes.Codewords)
}

func TestHuffmanCodesUnsortedInput(t *testing.T) {
	// Probabilities may be passed in any order.
	codes, err := BuildHuffmanCodes([]float64{0.25, 0.5, 0.25})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if codes.Probabilities[0] != 0.5 {
		t.Fatalf("probabilities not sorted: %v", codes.Probabilities)
	}
	if len(codes.Codewords[0]) != 1 {
		t.Fatalf("most probable symbol should get the shortest code, got %q", codes.Codewords[0])
	}
}

func TestShannonFanoCodesUniform(t *testing.T) {
	codes, err := BuildShannonFanoCodes([]float64{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	want := []string{"00", "01", "10", "11"}
	for i, w := range want {
		if codes.Codewords[i] != w {
			t.Fatalf("codeword %d: got %q, want %q", i, codes.Codewords[i], w)
		}
	}
	if !almostEqual(codes.MeanCodeLength(), 2) {
		t.Fatalf("mean code length: got %v, want 2", codes.MeanCodeLength())
	}
	if !almostEqual(codes.StatisticalCompression(), 1) {
		t.Fatalf("statistical compression: got %v, want 1", codes.StatisticalCompression())
	}
}

func TestShannonFanoPrefixFree(t *testing.T) {
	codes, err := BuildShannonFanoCodes([]float64{0.35, 0.17, 0.17, 0.16, 0.15})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	assertPrefixFree(t, codes.Codewords)
}

func TestBadDistributions(t *testing.T) {
	cases := [][]float64{
		nil,
		{},
		{0.5, 0.4},       // does not sum to 1
		{0.5, 0.6},       // sums above 1
		{1.2, -0.2},      // out of range
		{0.5, 0.5, 0.5},  // sums to 1.5
	}
	for _, probs := range cases {
		if _, err := BuildHuffmanCodes(probs); !errors.Is(err, ErrBadDistribution) {
			t.Fatalf("huffman accepted %v", probs)
		}
		if _, err := BuildShannonFanoCodes(probs); !errors.Is(err, ErrBadDistribution) {
			t.Fatalf("shannon-fano accepted %v", probs)
		}
	}
}

func TestSingleSymbolDistribution(t *testing.T) {
	codes, err := BuildHuffmanCodes([]float64{1.0})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if codes.Codewords[0] != "0" {
		t.Fatalf("got %q, want \"0\"", codes.Codewords[0])
	}
}

func assertPrefixFree(t *testing.T, codewords []string) {
	t.Helper()
	for i, a := range codewords {
		for j, b := range codewords {
			if i == j {
				continue
			}
			if len(a) <= len(b) && b[:len(a)] == a {
				t.Fatalf("codeword %q is a prefix of %q", a, b)
			}
		}
	}
}

func TestHuffmanCompressRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("Hello World"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaabbbbbbcc"),
		bytes.Repeat([]byte("the quick brown fox "), 50),
		{0x00, 0xFF, 0x00, 0xFF, 0x7F},
	}
	for _, in := range inputs {
		packed := HuffmanCompress(in)
		out, err := HuffmanDecompress(packed)
		if err != nil {
			t.Fatalf("decompress failed for %q: %v", in, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch: got %q, want %q", out, in)
		}
	}
}

func TestHuffmanCompressEmpty(t *testing.T) {
	out, err := HuffmanDecompress(HuffmanCompress(nil))
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestHuffmanCompressSingleSymbol(t *testing.T) {
	in := bytes.Repeat([]byte{'z'}, 1000)
	packed := HuffmanCompress(in)
	if len(packed) >= len(in) {
		t.Fatalf("single-symbol input should compress well: %d >= %d", len(packed), len(in))
	}
	out, err := HuffmanDecompress(packed)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatal("round trip mismatch")
	}
}

func TestHuffmanDecompressRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01, 0x02},
		[]byte("definitely not an archive"),
	}
	for _, in := range cases {
		if _, err := HuffmanDecompress(in); !errors.Is(err, ErrCorruptArchive) {
			t.Fatalf("accepted garbage payload %v", in)
		}
	}
}

func TestLZ4RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("redundant payload text "), 100)
	for _, level := range []Level{LevelFast, LevelBalanced, LevelBest} {
		packed, err := LZ4Compress(data, level)
		if err != nil {
			t.Fatalf("compress failed at level %d: %v", level, err)
		}
		if len(packed) >= len(data) {
			t.Fatalf("level %d: repetitive data did not shrink", level)
		}
		out, err := LZ4Decompress(packed)
		if err != nil {
			t.Fatalf("decompress failed at level %d: %v", level, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("level %d: round trip mismatch", level)
		}
	}
}

func TestLZ4StoresIncompressibleRaw(t *testing.T) {
	// A short high-entropy input cannot shrink; it must round trip via
	// the stored path with only the fixed header added.
	data := []byte{0x3A, 0x91, 0xF2, 0x07, 0x5C, 0xE8, 0x11, 0xB4}
	packed, err := LZ4Compress(data, LevelFast)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if len(packed) > len(data)+lz4HeaderSize {
		t.Fatalf("stored payload grew beyond the header: %d bytes", len(packed))
	}
	out, err := LZ4Decompress(packed)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %v", out)
	}
}

func TestLZ4Empty(t *testing.T) {
	packed, err := LZ4Compress(nil, LevelBalanced)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	out, err := LZ4Decompress(packed)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestLZ4DecompressRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01},
		[]byte("not an lz4 block at all"),
	}
	for _, in := range cases {
		if _, err := LZ4Decompress(in); !errors.Is(err, ErrDecompressionFailed) {
			t.Fatalf("accepted garbage payload %v", in)
		}
	}
	// Truncated body under a valid header must also fail.
	packed, err := LZ4Compress(bytes.Repeat([]byte("abcd"), 100), LevelFast)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if _, err := LZ4Decompress(packed[:len(packed)-3]); !errors.Is(err, ErrDecompressionFailed) {
		t.Fatal("accepted truncated payload")
	}
}

func TestCompressDispatch(t *testing.T) {
	data := bytes.Repeat([]byte("dispatch on the magic header "), 40)
	for _, m := range []Method{MethodHuffman, MethodLZ4Fast, MethodLZ4Best} {
		packed, err := Compress(data, m)
		if err != nil {
			t.Fatalf("method %d: compress failed: %v", m, err)
		}
		out, err := Decompress(packed)
		if err != nil {
			t.Fatalf("method %d: decompress failed: %v", m, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("method %d: round trip mismatch", m)
		}
	}
	if _, err := Compress(nil, Method(99)); !errors.Is(err, ErrCompressionFailed) {
		t.Fatal("accepted unknown method")
	}
	if _, err := Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF}); !errors.Is(err, ErrDecompressionFailed) {
		t.Fatal("accepted unknown magic")
	}
}

func BenchmarkHuffmanCompress(b *testing.B) {
	data := bytes.Repeat([]byte("entropy coding benchmark payload "), 32)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HuffmanCompress(data)
	}
}
