package prng

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// ChaCha is a Source backed by the ChaCha20 keystream. It passes statistical
// tests the small generators fail, and is unpredictable when keyed with a
// secret. The key is 32 bytes; a convenience constructor expands an integer
// seed into the key.
type ChaCha struct {
	cipher *chacha20.Cipher
	buf    [64]byte
	off    int
}

// NewChaCha creates a keystream source from a 32-byte key.
func NewChaCha(key []byte) (*ChaCha, error) {
	cipher, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, err
	}
	c := &ChaCha{cipher: cipher}
	c.refill()
	return c, nil
}

// NewChaChaSeed expands a 64-bit seed into a ChaCha key. A zero seed is
// rejected for consistency with the other generators.
func NewChaChaSeed(seed uint64) (*ChaCha, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], seed)
		seed = seed*6364136223846793005 + 1442695040888963407
	}
	return NewChaCha(key)
}

func (c *ChaCha) refill() {
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.cipher.XORKeyStream(c.buf[:], c.buf[:])
	c.off = 0
}

func (c *ChaCha) Uint32() uint32 {
	if c.off+4 > len(c.buf) {
		c.refill()
	}
	v := binary.LittleEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v
}
