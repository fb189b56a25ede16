package protocol

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/laroxyss/rsfec/rsfec/rs"
)

const (
	// MaxFramePayload limits a single protocol frame payload.
	MaxFramePayload = 1 << 20 // 1 MiB

	frameMagic uint32 = 0x52534650 // "RSFP"

	// headerSize covers magic, control count, and plain body length.
	headerSize = 4 + 1 + 4

	// plainHeaderSize covers the type byte and payload length inside
	// the protected body.
	plainHeaderSize = 1 + 4
)

var (
	ErrFrameTooLarge = errors.New("protocol: frame payload too large")
	ErrInvalidType   = errors.New("protocol: invalid message type")
	ErrInvalidFrame  = errors.New("protocol: malformed frame")
)

// Frame is the basic wire container.
// Format:
//
//	4 bytes: magic (big endian)
//	1 byte:  control symbol count
//	4 bytes: plain body length (big endian)
//	N bytes: Reed-Solomon protected body
//
// The protected body holds the type byte, the payload length, and the
// payload itself, split into codeword blocks. The header is not
// protected: a receiver that cannot trust it should fix the control
// count out of band and verify it against the field here.
type Frame struct {
	Type    MessageType
	Payload []byte
}

// EncodeFrame serializes f and protects the body with controlCount
// parity symbols per codeword block.
func EncodeFrame(f Frame, controlCount int) ([]byte, error) {
	if f.Type == 0 {
		return nil, ErrInvalidType
	}
	if len(f.Payload) > MaxFramePayload {
		return nil, ErrFrameTooLarge
	}
	codec, err := rs.NewCodec(controlCount)
	if err != nil {
		return nil, err
	}

	plain := make([]byte, 0, plainHeaderSize+len(f.Payload))
	plain = append(plain, byte(f.Type))
	plain = binary.BigEndian.AppendUint32(plain, uint32(len(f.Payload)))
	plain = append(plain, f.Payload...)

	body, err := codec.EncodeBlocks(plain)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, headerSize+len(body))
	out = binary.BigEndian.AppendUint32(out, frameMagic)
	out = append(out, byte(controlCount))
	out = binary.BigEndian.AppendUint32(out, uint32(len(plain)))
	out = append(out, body...)
	return out, nil
}

// DecodeFrame parses and corrects a frame produced by EncodeFrame.
// Corruption in the protected body is repaired up to the correction
// capacity of each codeword block.
func DecodeFrame(buf []byte) (Frame, error) {
	if len(buf) < headerSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrInvalidFrame, len(buf))
	}
	if binary.BigEndian.Uint32(buf) != frameMagic {
		return Frame{}, fmt.Errorf("%w: bad magic", ErrInvalidFrame)
	}
	controlCount := int(buf[4])
	plainLen := int(binary.BigEndian.Uint32(buf[5:]))
	if plainLen < plainHeaderSize || plainLen > plainHeaderSize+MaxFramePayload {
		return Frame{}, fmt.Errorf("%w: body length %d", ErrInvalidFrame, plainLen)
	}

	codec, err := rs.NewCodec(controlCount)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: control count %d", ErrInvalidFrame, controlCount)
	}
	if len(buf)-headerSize != ProtectedSize(plainLen, controlCount) {
		return Frame{}, fmt.Errorf("%w: body size mismatch", ErrInvalidFrame)
	}

	plain, err := codec.DecodeBlocks(buf[headerSize:])
	if err != nil {
		return Frame{}, err
	}
	if len(plain) != plainLen {
		return Frame{}, fmt.Errorf("%w: body size mismatch", ErrInvalidFrame)
	}

	mt := MessageType(plain[0])
	if mt == 0 {
		return Frame{}, ErrInvalidType
	}
	payloadLen := int(binary.BigEndian.Uint32(plain[1:]))
	if plainHeaderSize+payloadLen != plainLen {
		return Frame{}, fmt.Errorf("%w: payload length mismatch", ErrInvalidFrame)
	}
	return Frame{Type: mt, Payload: plain[plainHeaderSize:]}, nil
}

// ProtectedSize returns the number of body bytes produced for a plain
// body of plainLen bytes with the given control count.
func ProtectedSize(plainLen, controlCount int) int {
	blockSize := rs.MaxCodewordLen - controlCount
	full := plainLen / blockSize
	size := full * rs.MaxCodewordLen
	if tail := plainLen % blockSize; tail > 0 {
		size += tail + controlCount
	}
	return size
}

// WriteFrame encodes f and writes it to w.
func WriteFrame(w io.Writer, f Frame, controlCount int) error {
	buf, err := EncodeFrame(f, controlCount)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadFrame reads one frame from r, correcting body corruption.
func ReadFrame(r io.Reader) (Frame, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Frame{}, err
	}
	if binary.BigEndian.Uint32(header[:]) != frameMagic {
		return Frame{}, fmt.Errorf("%w: bad magic", ErrInvalidFrame)
	}
	controlCount := int(header[4])
	plainLen := int(binary.BigEndian.Uint32(header[5:]))
	if controlCount < 1 || controlCount > 254 {
		return Frame{}, fmt.Errorf("%w: control count %d", ErrInvalidFrame, controlCount)
	}
	if plainLen < plainHeaderSize || plainLen > plainHeaderSize+MaxFramePayload {
		return Frame{}, fmt.Errorf("%w: body length %d", ErrInvalidFrame, plainLen)
	}

	buf := make([]byte, headerSize+ProtectedSize(plainLen, controlCount))
	copy(buf, header[:])
	if _, err := io.ReadFull(r, buf[headerSize:]); err != nil {
		return Frame{}, err
	}
	return DecodeFrame(buf)
}
