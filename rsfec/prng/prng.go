package prng

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"os"
	"sync/atomic"
	"time"
)

var ErrZeroSeed = errors.New("prng: seed must be non-zero")

// Source produces a stream of pseudo-random 32-bit values.
type Source interface {
	Uint32() uint32
}

// Float64 maps the next value of s to the interval [0, 1).
func Float64(s Source) float64 {
	return float64(s.Uint32()) / float64(1<<32)
}

// Intn returns a value in [0, n) drawn from s. It panics if n is not
// positive.
func Intn(s Source, n int) int {
	if n <= 0 {
		panic("prng: Intn called with non-positive n")
	}
	return int(s.Uint32() % uint32(n))
}

var seedCounter atomic.Uint64

// Seed derives a process-unique 64-bit seed from the PID, the current time
// in nanoseconds, and a call counter. Not cryptographically strong; use
// ChaCha with a secret key when unpredictability matters.
func Seed() uint64 {
	h := fnv.New64a()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(os.Getpid()))
	_, _ = h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	_, _ = h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], seedCounter.Add(1))
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
