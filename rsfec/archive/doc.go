// Package archive provides entropy coding and compression utilities.
//
// Two families of statistically optimal prefix codes can be built from a
// symbol probability distribution: Huffman (binary-merge tree) and
// Shannon-Fano (balanced recursive split). The Codes result exposes the
// classic efficiency metrics: mean code length, entropy, relative
// efficiency, and statistical compression ratio.
//
// For practical byte payloads the package offers HuffmanCompress /
// HuffmanDecompress (self-contained bit-packed archives) and LZ4 helpers
// for fast general-purpose compression.
package archive
