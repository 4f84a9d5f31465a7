// Package cipherkit implements three classical cipher families for
// teaching: Caesar (shift), Affine (modular linear transform) and a
// textbook RSA over machine-word integers.
//
// None of these ciphers is secure. RSA here has no padding, uses moduli
// below 2^63 and does not check that p and q are prime.
//
// Basic usage:
//
//	ct := cipherkit.CaesarEncrypt("HELLO", 3) // "KHOOR"
//
//	ct, err := cipherkit.AffineEncrypt("HELLO", 5, 8)
//	if errors.Is(err, cipherkit.ErrInvalidKey) {
//	    // a is not coprime with 26
//	}
//
//	key, err := cipherkit.RSASetup(61, 53, 17)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	blocks, err := key.Encrypt("HELLO")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := key.Decrypt(blocks)
//
// # RSA Framing
//
// RSA text is split into runs of [LettersPerBlock] letters. Each run is
// written as two decimal digits per letter (A=00 ... Z=25) and parsed as
// one integer below the modulus. Parsing drops leading zeros, so every
// [Block] also records how many letters it holds, and [RSADecrypt] uses
// that count to restore them. Blocks without a count (see
// [WithUntaggedBlocks] and [RSADecryptValues]) are decoded by padding odd
// lengths with a single zero, which loses letters when a block starts
// with 'A'.
//
// # Integer Limits
//
// Block values and exponents are uint64. Modular products are computed
// in 128 bits, and [RSASetup] rejects moduli at or above [MaxModulus] so
// the totient fits the signed arithmetic of the inverse computation.
package cipherkit
