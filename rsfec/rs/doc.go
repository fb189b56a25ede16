// Package rs implements a systematic Reed-Solomon codec over GF(2^8).
//
// A codeword is the message followed by controlCount parity symbols, at most
// 255 symbols in total. The decoder corrects up to controlCount/2 symbol
// errors at unknown positions via the classic pipeline: syndrome computation,
// Berlekamp-Massey locator synthesis, Chien root search, and Forney magnitude
// resolution. An uncorrectable codeword is always reported as
// ErrTooManyErrors, never silently mis-corrected.
//
// A Codec is immutable after construction and safe for concurrent use;
// each Encode/Decode call works on its own scratch buffers.
package rs
