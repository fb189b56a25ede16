package archive

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var (
	ErrCompressionFailed   = errors.New("archive: compression failed")
	ErrDecompressionFailed = errors.New("archive: decompression failed")
)

// lz4Magic marks the start of an LZ4 block payload. The flag byte after
// the magic records whether the block is compressed or stored raw.
const lz4Magic uint32 = 0x52534C5A // "RSLZ"

const (
	lz4Stored     = 0
	lz4Compressed = 1

	lz4HeaderSize = 4 + 1 + 4 // magic, flag, original length
)

// Level controls the LZ4 speed/ratio tradeoff.
type Level int

const (
	LevelFast     Level = iota // Fastest, lower ratio
	LevelBalanced              // Balanced
	LevelBest                  // Best ratio, slower
)

// Compressor state (hash and chain tables) is reused across calls.
var lz4Fast = sync.Pool{
	New: func() interface{} {
		return new(lz4.Compressor)
	},
}

var lz4HC = sync.Pool{
	New: func() interface{} {
		return new(lz4.CompressorHC)
	},
}

// LZ4Compress packs data into a single self-describing LZ4 block.
// Incompressible input is stored raw, so the result is never more than
// lz4HeaderSize bytes larger than the input. Unlike the entropy coders
// in this package, LZ4 exploits repetition rather than symbol
// statistics.
func LZ4Compress(data []byte, level Level) ([]byte, error) {
	out := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(data)))
	binary.BigEndian.PutUint32(out, lz4Magic)
	binary.BigEndian.PutUint32(out[5:], uint32(len(data)))

	var n int
	var err error
	switch level {
	case LevelFast:
		c := lz4Fast.Get().(*lz4.Compressor)
		n, err = c.CompressBlock(data, out[lz4HeaderSize:])
		lz4Fast.Put(c)
	default:
		c := lz4HC.Get().(*lz4.CompressorHC)
		if level == LevelBest {
			c.Level = lz4.Level9
		} else {
			c.Level = lz4.Level4
		}
		n, err = c.CompressBlock(data, out[lz4HeaderSize:])
		lz4HC.Put(c)
	}
	if err != nil {
		return nil, ErrCompressionFailed
	}
	if n == 0 || n >= len(data) {
		// Incompressible: store the input as-is.
		out[4] = lz4Stored
		return append(out[:lz4HeaderSize], data...), nil
	}
	out[4] = lz4Compressed
	return out[:lz4HeaderSize+n], nil
}

// LZ4Decompress reverses LZ4Compress.
func LZ4Decompress(payload []byte) ([]byte, error) {
	if len(payload) < lz4HeaderSize || binary.BigEndian.Uint32(payload) != lz4Magic {
		return nil, ErrDecompressionFailed
	}
	flag := payload[4]
	origLen := binary.BigEndian.Uint32(payload[5:])
	body := payload[lz4HeaderSize:]

	switch flag {
	case lz4Stored:
		if uint32(len(body)) != origLen {
			return nil, ErrDecompressionFailed
		}
		return append([]byte(nil), body...), nil
	case lz4Compressed:
		out := make([]byte, origLen)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil || uint32(n) != origLen {
			return nil, ErrDecompressionFailed
		}
		return out, nil
	default:
		return nil, ErrDecompressionFailed
	}
}

// Method selects the algorithm for the Compress/Decompress pair.
type Method int

const (
	MethodHuffman Method = iota
	MethodLZ4Fast
	MethodLZ4Best
)

// Compress packs data with the chosen method. Every method produces a
// self-describing payload, so Decompress needs no method argument.
func Compress(data []byte, m Method) ([]byte, error) {
	switch m {
	case MethodHuffman:
		return HuffmanCompress(data), nil
	case MethodLZ4Fast:
		return LZ4Compress(data, LevelFast)
	case MethodLZ4Best:
		return LZ4Compress(data, LevelBest)
	default:
		return nil, ErrCompressionFailed
	}
}

// Decompress unpacks a payload produced by Compress, dispatching on the
// magic header.
func Decompress(payload []byte) ([]byte, error) {
	if len(payload) < 4 {
		return nil, ErrDecompressionFailed
	}
	switch binary.BigEndian.Uint32(payload) {
	case huffMagic:
		out, err := HuffmanDecompress(payload)
		if err != nil {
			return nil, ErrDecompressionFailed
		}
		return out, nil
	case lz4Magic:
		return LZ4Decompress(payload)
	default:
		return nil, ErrDecompressionFailed
	}
}
