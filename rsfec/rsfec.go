package rsfec

import "github.com/laroxyss/rsfec/rsfec/rs"

// Top-level helpers for callers that do not want to hold a codec. The
// generator polynomial depends only on controlCount, so building a codec per
// call is cheap; hold an rs.Codec instead when throughput matters.

// Encode produces a systematic codeword: message followed by controlCount
// parity symbols. Fails with rs.ErrInvalidParameters when the message and
// control symbols together exceed 255 bytes.
func Encode(message []byte, controlCount int) ([]byte, error) {
	c, err := rs.NewCodec(controlCount)
	if err != nil {
		return nil, err
	}
	return c.Encode(message)
}

// Decode recovers the message from a received codeword, correcting up to
// controlCount/2 symbol errors. Fails with rs.ErrTooManyErrors when the
// corruption exceeds that bound.
func Decode(received []byte, controlCount int) ([]byte, error) {
	c, err := rs.NewCodec(controlCount)
	if err != nil {
		return nil, err
	}
	return c.Decode(received)
}

// EncodeBlocks protects data of arbitrary length, one codeword per
// (255 - controlCount)-byte block.
func EncodeBlocks(data []byte, controlCount int) ([]byte, error) {
	c, err := rs.NewCodec(controlCount)
	if err != nil {
		return nil, err
	}
	return c.EncodeBlocks(data)
}

// DecodeBlocks reverses EncodeBlocks.
func DecodeBlocks(data []byte, controlCount int) ([]byte, error) {
	c, err := rs.NewCodec(controlCount)
	if err != nil {
		return nil, err
	}
	return c.DecodeBlocks(data)
}
