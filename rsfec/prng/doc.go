// Package prng implements small deterministic pseudo-random number
// generators and sampling statistics.
//
// The generators are reproducible from a seed, which makes them suitable for
// simulating noisy channels and corruption patterns in tests and demos:
//   - XorShift32: Marsaglia's shift-register generator
//   - LCG: linear congruential generator with classic parameters
//   - ChaCha: a ChaCha20-keystream source for higher statistical quality
//
// Seed derives a process-unique seed; Measure computes sample mean and
// variance for quick uniformity checks.
package prng
