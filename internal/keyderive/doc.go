// Package keyderive turns passphrases into classical cipher keys.
//
// Key material is derived with HKDF-SHA-512 (RFC 5869). Each cipher uses
// its own info string ([InfoCaesar], [InfoAffine]) so the same passphrase
// and salt give independent keys for different ciphers.
//
// # Key Mapping
//
// Derived bytes are read as big-endian uint64 values and reduced onto the
// key space:
//
//   - Caesar: a shift in [1, 25]. A shift of 0 is never produced.
//   - Affine: the multiplier a is picked from [AffineMultipliers], the
//     twelve units of Z/26, so every derived key is invertible. The offset
//     b is in [0, 25].
//
// The reduction has a small modulo bias. These ciphers offer no security
// and the bias is not worth removing.
package keyderive
