// Package gf implements arithmetic over the finite field GF(2^8) and
// polynomial algebra on its elements.
//
// The field is constructed modulo the primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with primitive element alpha = 2, the
// convention used by byte-oriented Reed-Solomon codes. Multiplication and
// division go through precomputed log/antilog tables, built once per Field
// value; a Field is immutable after construction and safe for concurrent use.
//
// Polynomials are []byte slices with the coefficient of x^i at index i.
// The zero polynomial is represented as a single zero coefficient.
package gf
