// Package rsfec provides forward error correction building blocks for
// byte-oriented transmission.
//
// The core is a systematic Reed-Solomon codec over GF(2^8) (rs, gf). Around
// it sit shard-level protection for large payloads (shard), entropy coding
// and compression utilities (archive), deterministic random sources (prng),
// and an FEC-protected frame codec with a QUIC datagram transport
// (protocol, transport/quic).
package rsfec
