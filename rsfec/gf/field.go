package gf

import "errors"

// PrimitivePoly is the reducing polynomial x^8 + x^4 + x^3 + x^2 + 1.
const PrimitivePoly = 0x11D

// Alpha is the primitive element generating the multiplicative group.
const Alpha = 2

var ErrDivisionByZero = errors.New("gf: division by zero")

// Field holds the log/antilog tables for GF(2^8).
// Construct one with NewField and share it by reference; all methods are
// read-only after construction.
type Field struct {
	exp [256]byte
	log [256]byte
}

// NewField builds the field tables from the fixed primitive polynomial.
func NewField() *Field {
	f := &Field{}
	x := 1
	for i := 0; i < 255; i++ {
		if i > 0 && x == 1 {
			// The generator cycled early, so the polynomial is not
			// primitive. Unreachable with the fixed constant.
			panic("gf: reducing polynomial is not primitive")
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x <<= 1
		if x >= 256 {
			x ^= PrimitivePoly
		}
	}
	f.exp[255] = 1 // alpha^255 == alpha^0
	return f
}

// Add returns a + b. The field has characteristic 2, so addition is XOR.
func (f *Field) Add(a, b byte) byte { return a ^ b }

// Sub returns a - b, identical to Add in characteristic 2.
func (f *Field) Sub(a, b byte) byte { return a ^ b }

// Mul returns a * b.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%255]
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
func (f *Field) Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[(int(f.log[a])-int(f.log[b])+255)%255], nil
}

// Inv returns the multiplicative inverse of a, or ErrDivisionByZero for zero.
func (f *Field) Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return f.exp[(255-int(f.log[a]))%255], nil
}

// Pow returns a raised to the n-th power.
func (f *Field) Pow(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	idx := (int(f.log[a]) * n) % 255
	if idx < 0 {
		idx += 255
	}
	return f.exp[idx]
}

// Exp returns alpha^n for any integer n, reducing modulo the group order.
func (f *Field) Exp(n int) byte {
	idx := n % 255
	if idx < 0 {
		idx += 255
	}
	return f.exp[idx]
}

// Log returns the discrete logarithm of a to base alpha.
// The zero element has no logarithm.
func (f *Field) Log(a byte) (int, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return int(f.log[a]), nil
}
