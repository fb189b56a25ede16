package prng

// LCG is a linear congruential generator: x' = (a*x + c) mod m.
type LCG struct {
	m, a, c uint32
	x       uint32
}

// Default LCG parameters (the classic glibc constants).
const (
	lcgModulus    = 1 << 31
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// NewLCG creates a generator with the default parameters and the given
// non-zero seed.
func NewLCG(seed uint32) (*LCG, error) {
	return NewCustomLCG(lcgModulus, lcgMultiplier, lcgIncrement, seed)
}

// NewCustomLCG creates a generator with explicit parameters. The modulus is
// usually a power of two.
func NewCustomLCG(m, a, c, seed uint32) (*LCG, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &LCG{m: m, a: a, c: c, x: seed}, nil
}

func (l *LCG) Uint32() uint32 {
	l.x = (l.a*l.x + l.c) % l.m
	return l.x
}
