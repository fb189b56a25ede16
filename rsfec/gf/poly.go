package gf

// Polynomial operations over the field. Coefficients are stored with the
// coefficient of x^i at index i, so the last element is the leading term.

// PolyTrim removes trailing zero coefficients, keeping at least one element
// so the zero polynomial stays representable.
func PolyTrim(p []byte) []byte {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []byte{0}
	}
	return p[:n]
}

// PolyIsZero reports whether every coefficient is zero.
func PolyIsZero(p []byte) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// PolyAdd adds two polynomials coefficient-wise.
func (f *Field) PolyAdd(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n)
	copy(out, a)
	for i, c := range b {
		out[i] ^= c
	}
	return out
}

// PolyMul multiplies two polynomials (full convolution).
func (f *Field) PolyMul(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return []byte{0}
	}
	out := make([]byte, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] ^= f.Mul(ca, cb)
		}
	}
	return out
}

// PolyScale multiplies every coefficient by the scalar k.
func (f *Field) PolyScale(p []byte, k byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = f.Mul(c, k)
	}
	return out
}

// PolyShift multiplies the polynomial by x^n, shifting coefficients up.
func (f *Field) PolyShift(p []byte, n int) []byte {
	out := make([]byte, n+len(p))
	copy(out[n:], p)
	return out
}

// PolyEval evaluates the polynomial at x using Horner's scheme.
func (f *Field) PolyEval(p []byte, x byte) byte {
	if len(p) == 0 {
		return 0
	}
	acc := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		acc = f.Mul(acc, x) ^ p[i]
	}
	return acc
}

// PolyDivMod divides dividend by divisor, returning quotient and remainder.
// The divisor must not be the zero polynomial.
func (f *Field) PolyDivMod(dividend, divisor []byte) (quotient, remainder []byte, err error) {
	divisor = PolyTrim(divisor)
	if PolyIsZero(divisor) {
		return nil, nil, ErrDivisionByZero
	}

	rem := make([]byte, len(dividend))
	copy(rem, dividend)
	if len(rem) < len(divisor) {
		return []byte{0}, PolyTrim(rem), nil
	}

	lead := divisor[len(divisor)-1]
	quot := make([]byte, len(rem)-len(divisor)+1)
	for i := len(rem) - 1; i >= len(divisor)-1; i-- {
		if rem[i] == 0 {
			continue
		}
		coef, derr := f.Div(rem[i], lead)
		if derr != nil {
			return nil, nil, derr
		}
		shift := i - (len(divisor) - 1)
		quot[shift] = coef
		for j, d := range divisor {
			rem[shift+j] ^= f.Mul(coef, d)
		}
	}
	return PolyTrim(quot), PolyTrim(rem[:len(divisor)-1]), nil
}

// PolyMod returns the remainder of dividend modulo divisor.
func (f *Field) PolyMod(dividend, divisor []byte) ([]byte, error) {
	_, rem, err := f.PolyDivMod(dividend, divisor)
	return rem, err
}
