// Package modmath implements the integer number theory used by the
// ciphers: greatest common divisor, the extended Euclidean algorithm,
// modular inverses and fast modular exponentiation.
//
// # Integer Widths
//
// [GCD], [ExtendedGCD] and [ModInverse] work on int64. [ModPow] works on
// uint64 and computes every intermediate product as a 128-bit value with
// [math/bits.Mul64], so the result is exact for any non-zero uint64
// modulus.
package modmath
