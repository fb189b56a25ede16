package prng

// XorShift32 is Marsaglia's 32-bit xorshift generator: a linear feedback
// shift register with period 2^32 - 1. The all-zero state is a fixed point,
// so a zero seed is rejected.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 creates a generator from a non-zero seed.
func NewXorShift32(seed uint32) (*XorShift32, error) {
	if seed == 0 {
		return nil, ErrZeroSeed
	}
	return &XorShift32{state: seed}, nil
}

func (x *XorShift32) Uint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}
