package archive

import (
	"encoding/binary"
	"errors"
	"sort"
)

// ErrCorruptArchive is returned when a compressed payload fails to parse.
var ErrCorruptArchive = errors.New("archive: corrupt payload")

// huffMagic marks the start of a Huffman-compressed payload.
const huffMagic uint32 = 0x52534846 // "RSHF"

// BuildHuffmanCodes constructs a Huffman prefix code for the given
// probability distribution. Codewords are returned in order of
// decreasing probability.
func BuildHuffmanCodes(probabilities []float64) (Codes, error) {
	sorted, err := checkDistribution(probabilities)
	if err != nil {
		return Codes{}, err
	}
	codewords := make([]string, len(sorted))
	if len(sorted) == 1 {
		codewords[0] = "0"
		return Codes{Probabilities: sorted, Codewords: codewords}, nil
	}

	type group struct {
		prob    float64
		members []int
	}
	groups := make([]group, len(sorted))
	for i, p := range sorted {
		groups[i] = group{prob: p, members: []int{i}}
	}
	for len(groups) > 1 {
		a := groups[len(groups)-2]
		b := groups[len(groups)-1]
		for _, m := range a.members {
			codewords[m] = "1" + codewords[m]
		}
		for _, m := range b.members {
			codewords[m] = "0" + codewords[m]
		}
		merged := group{prob: a.prob + b.prob, members: append(a.members, b.members...)}
		groups = groups[:len(groups)-2]
		at := sort.Search(len(groups), func(i int) bool {
			return groups[i].prob <= merged.prob
		})
		groups = append(groups, group{})
		copy(groups[at+1:], groups[at:])
		groups[at] = merged
	}
	return Codes{Probabilities: sorted, Codewords: codewords}, nil
}

type huffNode struct {
	freq   uint64
	symbol int // -1 for internal nodes
	left   *huffNode
	right  *huffNode
}

// buildHuffTree builds a deterministic Huffman tree from byte
// frequencies using the two-queue method. Returns nil when no symbol
// occurs.
func buildHuffTree(freqs *[256]uint32) *huffNode {
	var leaves []*huffNode
	for s := 0; s < 256; s++ {
		if freqs[s] > 0 {
			leaves = append(leaves, &huffNode{freq: uint64(freqs[s]), symbol: s})
		}
	}
	if len(leaves) == 0 {
		return nil
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].freq != leaves[j].freq {
			return leaves[i].freq < leaves[j].freq
		}
		return leaves[i].symbol < leaves[j].symbol
	})
	var merged []*huffNode
	pop := func() *huffNode {
		if len(leaves) > 0 && (len(merged) == 0 || leaves[0].freq <= merged[0].freq) {
			n := leaves[0]
			leaves = leaves[1:]
			return n
		}
		n := merged[0]
		merged = merged[1:]
		return n
	}
	total := len(leaves)
	for i := 0; i < total-1; i++ {
		left := pop()
		right := pop()
		merged = append(merged, &huffNode{
			freq:   left.freq + right.freq,
			symbol: -1,
			left:   left,
			right:  right,
		})
	}
	return pop()
}

type huffCode struct {
	bits  uint64
	nbits uint8
}

func collectCodes(n *huffNode, bits uint64, nbits uint8, table *[256]huffCode) {
	if n.symbol >= 0 {
		if nbits == 0 {
			// Lone symbol: assign a one-bit code.
			nbits = 1
		}
		table[n.symbol] = huffCode{bits: bits, nbits: nbits}
		return
	}
	collectCodes(n.left, bits<<1, nbits+1, table)
	collectCodes(n.right, bits<<1|1, nbits+1, table)
}

// HuffmanCompress encodes data into a self-contained archive carrying
// the symbol frequency table followed by the bit-packed stream.
func HuffmanCompress(data []byte) []byte {
	var freqs [256]uint32
	for _, b := range data {
		freqs[b]++
	}
	distinct := 0
	for _, f := range freqs {
		if f > 0 {
			distinct++
		}
	}
	out := make([]byte, 0, 10+distinct*5+len(data)/2)
	out = binary.BigEndian.AppendUint32(out, huffMagic)
	out = binary.BigEndian.AppendUint32(out, uint32(len(data)))
	out = binary.BigEndian.AppendUint16(out, uint16(distinct))
	for s, f := range freqs {
		if f > 0 {
			out = append(out, byte(s))
			out = binary.BigEndian.AppendUint32(out, f)
		}
	}
	tree := buildHuffTree(&freqs)
	if tree == nil {
		return out
	}
	var table [256]huffCode
	collectCodes(tree, 0, 0, &table)

	var acc uint64
	var accBits uint
	for _, b := range data {
		c := table[b]
		acc = acc<<c.nbits | c.bits
		accBits += uint(c.nbits)
		for accBits >= 8 {
			accBits -= 8
			out = append(out, byte(acc>>accBits))
		}
	}
	if accBits > 0 {
		out = append(out, byte(acc<<(8-accBits)))
	}
	return out
}

// HuffmanDecompress reverses HuffmanCompress.
func HuffmanDecompress(payload []byte) ([]byte, error) {
	if len(payload) < 10 {
		return nil, ErrCorruptArchive
	}
	if binary.BigEndian.Uint32(payload) != huffMagic {
		return nil, ErrCorruptArchive
	}
	origLen := binary.BigEndian.Uint32(payload[4:])
	distinct := int(binary.BigEndian.Uint16(payload[8:]))
	payload = payload[10:]
	if len(payload) < distinct*5 {
		return nil, ErrCorruptArchive
	}
	var freqs [256]uint32
	for i := 0; i < distinct; i++ {
		freqs[payload[i*5]] = binary.BigEndian.Uint32(payload[i*5+1:])
	}
	payload = payload[distinct*5:]

	if origLen == 0 {
		return []byte{}, nil
	}
	tree := buildHuffTree(&freqs)
	if tree == nil {
		return nil, ErrCorruptArchive
	}
	out := make([]byte, 0, origLen)
	if tree.symbol >= 0 {
		for i := uint32(0); i < origLen; i++ {
			out = append(out, byte(tree.symbol))
		}
		return out, nil
	}
	node := tree
	for _, b := range payload {
		for bit := 7; bit >= 0; bit-- {
			if b>>uint(bit)&1 == 1 {
				node = node.right
			} else {
				node = node.left
			}
			if node.symbol >= 0 {
				out = append(out, byte(node.symbol))
				if uint32(len(out)) == origLen {
					return out, nil
				}
				node = tree
			}
		}
	}
	return nil, ErrCorruptArchive
}
