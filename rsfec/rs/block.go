package rs

import "fmt"

// Block helpers run the codec over data longer than one codeword by
// splitting it into fixed-size message blocks. Every block carries its own
// controlCount parity symbols; a short final block simply yields a short
// final codeword (a shortened code decodes the same way).

// EncodeBlocks encodes data of arbitrary length as a sequence of codewords,
// each protecting at most MaxMessageLen message bytes. The result is the
// concatenation of the codewords. Empty input yields empty output.
func (c *Codec) EncodeBlocks(data []byte) ([]byte, error) {
	blockSize := c.MaxMessageLen()
	out := make([]byte, 0, len(data)+(len(data)/blockSize+1)*c.controlCount)

	for start := 0; start < len(data); start += blockSize {
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		cw, err := c.Encode(data[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, cw...)
	}
	return out, nil
}

// DecodeBlocks reverses EncodeBlocks: the input is split into codewords of
// up to MaxCodewordLen bytes, each decoded independently. A trailing block
// no longer than controlCount symbols cannot hold any message and is
// rejected as ErrInvalidParameters.
func (c *Codec) DecodeBlocks(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))

	for start := 0; start < len(data); start += MaxCodewordLen {
		end := start + MaxCodewordLen
		if end > len(data) {
			end = len(data)
		}
		if end-start <= c.controlCount {
			return nil, fmt.Errorf("%w: trailing block of %d bytes", ErrInvalidParameters, end-start)
		}
		msg, err := c.Decode(data[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, msg...)
	}
	return out, nil
}
