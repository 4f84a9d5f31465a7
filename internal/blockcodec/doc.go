// Package blockcodec frames alphabetic text as decimal integer blocks for
// textbook RSA.
//
// Each letter is written as its two-digit position (A=00 ... Z=25) and the
// digits of a run of letters are concatenated and parsed as one decimal
// integer. [LettersPerBlock] picks the longest run whose largest possible
// value ("2525...25") is still below the modulus.
//
// # Leading Zeros
//
// Parsing drops leading zeros, so a block that starts with 'A' loses
// digits. [DecodeBlock] repairs a single dropped digit by padding odd
// lengths, which is not enough when a block starts with 'A' followed by
// another letter below 'K', or with several 'A's. [DecodeBlockWidth] takes
// the letter count the block was encoded from and is lossless.
package blockcodec
