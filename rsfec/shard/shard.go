package shard

import (
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrInvalidLayout = errors.New("shard: invalid data/parity shard counts")
	ErrTooManyLost   = errors.New("shard: too many shards lost to recover")
	ErrShortPayload  = errors.New("shard: recovered payload shorter than requested size")
)

// Protector stripes payloads across dataCount shards plus parityCount
// parity shards. Up to parityCount shards may be lost (set to nil) and the
// payload is still recoverable.
type Protector struct {
	enc         reedsolomon.Encoder
	dataCount   int
	parityCount int
}

// New creates a protector for the given shard layout.
func New(dataCount, parityCount int) (*Protector, error) {
	if dataCount <= 0 || parityCount <= 0 {
		return nil, ErrInvalidLayout
	}
	enc, err := reedsolomon.New(dataCount, parityCount)
	if err != nil {
		return nil, err
	}
	return &Protector{enc: enc, dataCount: dataCount, parityCount: parityCount}, nil
}

// DataShards returns the number of payload-carrying shards.
func (p *Protector) DataShards() int { return p.dataCount }

// ParityShards returns the number of redundant shards, which equals the
// number of shards that may be lost.
func (p *Protector) ParityShards() int { return p.parityCount }

// Overhead returns the size multiplier relative to the bare payload.
func (p *Protector) Overhead() float64 {
	return float64(p.dataCount+p.parityCount) / float64(p.dataCount)
}

// Protect splits the payload into data shards, pads the last one, and
// appends parity shards. The returned slice has DataShards+ParityShards
// entries of equal length.
func (p *Protector) Protect(payload []byte) ([][]byte, error) {
	shards, err := p.enc.Split(payload)
	if err != nil {
		return nil, err
	}
	if err := p.enc.Encode(shards); err != nil {
		return nil, err
	}
	return shards, nil
}

// Verify reports whether the parity shards are consistent with the data
// shards.
func (p *Protector) Verify(shards [][]byte) (bool, error) {
	return p.enc.Verify(shards)
}

// Recover rebuilds missing shards (nil entries) and reassembles the payload
// of the given size. Fails with ErrTooManyLost when more than ParityShards
// shards are missing.
func (p *Protector) Recover(shards [][]byte, size int) ([]byte, error) {
	if err := p.enc.ReconstructData(shards); err != nil {
		if errors.Is(err, reedsolomon.ErrTooFewShards) {
			return nil, ErrTooManyLost
		}
		return nil, err
	}

	payload := make([]byte, 0, size)
	for i := 0; i < p.dataCount && len(payload) < size; i++ {
		remaining := size - len(payload)
		if remaining < len(shards[i]) {
			payload = append(payload, shards[i][:remaining]...)
		} else {
			payload = append(payload, shards[i]...)
		}
	}
	if len(payload) < size {
		return nil, ErrShortPayload
	}
	return payload, nil
}
