// Package shard protects payloads larger than a single Reed-Solomon block.
//
// The symbol-level codec in rs corrects corrupted bytes inside one codeword
// of at most 255 symbols. This package addresses the complementary failure
// mode on transport paths: whole pieces of a payload going missing. The
// payload is striped across data shards, parity shards are computed with the
// klauspost/reedsolomon erasure coder, and any parityCount lost shards can
// be rebuilt from the survivors.
package shard
