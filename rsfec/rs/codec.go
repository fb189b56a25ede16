package rs

import (
	"errors"
	"fmt"

	"github.com/laroxyss/rsfec/rsfec/gf"
)

// MaxCodewordLen is the single-block ceiling of a GF(256) code: message and
// control symbols together never exceed 255.
const MaxCodewordLen = 255

var (
	ErrInvalidParameters = errors.New("rs: invalid message or control symbol count")
	ErrTooManyErrors     = errors.New("rs: too many errors to correct")
)

// Codec is a systematic Reed-Solomon coder for a fixed number of control
// symbols. The field tables and generator polynomial are built once and
// shared read-only across Encode/Decode calls.
type Codec struct {
	field        *gf.Field
	controlCount int
	gen          []byte
}

// NewCodec builds a codec with the given number of control symbols.
// The generator polynomial is the product of (x + alpha^i) for
// i in [0, controlCount).
func NewCodec(controlCount int) (*Codec, error) {
	if controlCount < 1 || controlCount > MaxCodewordLen-1 {
		return nil, fmt.Errorf("%w: control symbol count %d", ErrInvalidParameters, controlCount)
	}
	f := gf.NewField()
	gen := []byte{1}
	for i := 0; i < controlCount; i++ {
		gen = f.PolyMul(gen, []byte{f.Exp(i), 1})
	}
	return &Codec{field: f, controlCount: controlCount, gen: gen}, nil
}

// ControlCount returns the number of control symbols per codeword.
func (c *Codec) ControlCount() int { return c.controlCount }

// MaxMessageLen returns the longest message a single codeword can carry.
func (c *Codec) MaxMessageLen() int { return MaxCodewordLen - c.controlCount }

// Correctable returns the number of symbol errors the codec can repair.
func (c *Codec) Correctable() int { return c.controlCount / 2 }

// Encode produces the systematic codeword: the message bytes followed by
// controlCount parity symbols.
func (c *Codec) Encode(message []byte) ([]byte, error) {
	if len(message) == 0 || len(message)+c.controlCount > MaxCodewordLen {
		return nil, fmt.Errorf("%w: message length %d with %d control symbols",
			ErrInvalidParameters, len(message), c.controlCount)
	}

	// The message occupies the high-degree coefficients; the low
	// controlCount degrees are freed for the division remainder, which
	// makes the codeword a multiple of the generator polynomial.
	n := len(message) + c.controlCount
	poly := make([]byte, n)
	for i, b := range message {
		poly[n-1-i] = b
	}
	rem, err := c.field.PolyMod(poly, c.gen)
	if err != nil {
		return nil, err
	}

	codeword := make([]byte, n)
	copy(codeword, message)
	for i, b := range rem {
		codeword[n-1-i] = b
	}
	return codeword, nil
}

// Decode recovers the message from a received codeword, correcting up to
// controlCount/2 corrupted symbols. It returns ErrTooManyErrors when the
// error pattern exceeds the code's capacity; no best-effort output is
// produced in that case.
func (c *Codec) Decode(received []byte) ([]byte, error) {
	if len(received) <= c.controlCount || len(received) > MaxCodewordLen {
		return nil, fmt.Errorf("%w: codeword length %d with %d control symbols",
			ErrInvalidParameters, len(received), c.controlCount)
	}

	n := len(received)
	data := make([]byte, n)
	for i, b := range received {
		data[n-1-i] = b
	}

	msgLen := n - c.controlCount
	synd := c.syndromes(data)
	if allZero(synd) {
		// Clean codeword: the message is the systematic prefix.
		msg := make([]byte, msgLen)
		copy(msg, received[:msgLen])
		return msg, nil
	}

	locator, err := c.findErrorLocator(synd)
	if err != nil {
		return nil, err
	}
	positions, err := c.findErrorPositions(locator, n)
	if err != nil {
		return nil, err
	}
	magnitudes, err := c.findErrorMagnitudes(synd, locator, positions)
	if err != nil {
		return nil, err
	}
	for k, pos := range positions {
		data[pos] ^= magnitudes[k]
	}

	// The corrected word must be a clean codeword again; anything else
	// means the error pattern fooled the locator.
	if !allZero(c.syndromes(data)) {
		return nil, ErrTooManyErrors
	}

	msg := make([]byte, msgLen)
	for i := range msg {
		msg[i] = data[n-1-i]
	}
	return msg, nil
}

// syndromes evaluates the codeword polynomial at alpha^i for each control
// symbol. All zeros iff the word is a multiple of the generator polynomial.
func (c *Codec) syndromes(data []byte) []byte {
	synd := make([]byte, c.controlCount)
	for i := range synd {
		synd[i] = c.field.PolyEval(data, c.field.Exp(i))
	}
	return synd
}

// findErrorLocator runs Berlekamp-Massey over the syndrome sequence and
// returns the minimal-degree error locator polynomial.
func (c *Codec) findErrorLocator(synd []byte) ([]byte, error) {
	f := c.field

	locator := []byte{1}    // current locator C(x)
	oldLocator := []byte{1} // copy of C(x) from the last degree update
	degree := 0             // current degree L of C(x)
	shift := 1              // iterations since the last degree update
	oldDiscrepancy := byte(1)

	for n := 0; n < c.controlCount; n++ {
		// d = S_n + C_1*S_{n-1} + ... + C_L*S_{n-L}
		discrepancy := synd[n]
		for i := 1; i <= degree; i++ {
			if i < len(locator) && i <= n {
				discrepancy ^= f.Mul(locator[i], synd[n-i])
			}
		}
		if discrepancy == 0 {
			shift++
			continue
		}

		// C(x) += (d/b) * B(x) * x^shift
		scale, err := f.Div(discrepancy, oldDiscrepancy)
		if err != nil {
			return nil, err
		}
		correction := f.PolyShift(f.PolyScale(oldLocator, scale), shift)

		if 2*degree <= n {
			degree = n + 1 - degree
			oldLocator = append([]byte(nil), locator...)
			oldDiscrepancy = discrepancy
			shift = 1
		} else {
			shift++
		}

		locator = gf.PolyTrim(f.PolyAdd(locator, correction))
	}

	if degree > c.controlCount/2 {
		return nil, ErrTooManyErrors
	}
	return locator, nil
}

// findErrorPositions runs a Chien search: position i holds an error iff
// alpha^-i is a root of the locator. The root count must match the locator
// degree exactly, otherwise the pattern is uncorrectable.
func (c *Codec) findErrorPositions(locator []byte, n int) ([]int, error) {
	f := c.field
	expected := len(locator) - 1

	var positions []int
	for i := 0; i < n; i++ {
		if f.PolyEval(locator, f.Exp(-i)) == 0 {
			positions = append(positions, i)
		}
	}
	if len(positions) != expected {
		return nil, ErrTooManyErrors
	}
	return positions, nil
}

// findErrorMagnitudes applies Forney's formula: with the error evaluator
// Omega = S*Lambda mod x^controlCount and the formal derivative Lambda',
// the magnitude at position p is X * Omega(1/X) / Lambda'(1/X) for
// X = alpha^p.
func (c *Codec) findErrorMagnitudes(synd, locator []byte, positions []int) ([]byte, error) {
	f := c.field

	omega := f.PolyMul(locator, synd)
	if len(omega) > c.controlCount {
		omega = omega[:c.controlCount]
	}
	deriv := locatorDerivative(locator)

	magnitudes := make([]byte, len(positions))
	for k, pos := range positions {
		x := f.Exp(pos)
		xInv := f.Exp(-pos)
		num := f.PolyEval(omega, xInv)
		den := f.PolyEval(deriv, xInv)
		q, err := f.Div(num, den)
		if err != nil {
			// Degenerate derivative, the pattern cannot be resolved.
			return nil, ErrTooManyErrors
		}
		magnitudes[k] = f.Mul(q, x)
	}
	return magnitudes, nil
}

// locatorDerivative computes the formal derivative over GF(2^8): even-degree
// terms vanish, odd-degree terms drop one degree.
func locatorDerivative(locator []byte) []byte {
	deriv := make([]byte, len(locator))
	for i := 1; i < len(locator); i += 2 {
		deriv[i-1] = locator[i]
	}
	return gf.PolyTrim(deriv)
}

func allZero(p []byte) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}
