package cipherkit

import (
	"strings"

	"github.com/cipherkit/cipherkit-go/internal/alphabet"
	"github.com/cipherkit/cipherkit-go/internal/modmath"
)

// CaesarEncrypt shifts every letter of text forward by k positions. Any
// integer k is accepted. Non-letters are copied unchanged and the output
// is uppercase.
func CaesarEncrypt(text string, k int) string {
	shift := alphabet.Mod(k)
	return mapLetters(text, func(p int) int { return p + shift })
}

// CaesarDecrypt reverses CaesarEncrypt with the same k.
func CaesarDecrypt(text string, k int) string {
	shift := alphabet.Mod(k)
	return mapLetters(text, func(p int) int { return p - shift })
}

// AffineEncrypt maps every letter position p to (a*p + b) mod 26.
// a must be coprime with 26.
func AffineEncrypt(text string, a, b int) (string, error) {
	if err := checkAffineKey(a); err != nil {
		return "", err
	}

	a, b = alphabet.Mod(a), alphabet.Mod(b)
	return mapLetters(text, func(p int) int { return a*p + b }), nil
}

// AffineDecrypt maps every letter position p to a⁻¹(p - b) mod 26.
// a must be coprime with 26.
func AffineDecrypt(text string, a, b int) (string, error) {
	if err := checkAffineKey(a); err != nil {
		return "", err
	}

	inv, err := modmath.ModInverse(int64(alphabet.Mod(a)), alphabet.Size)
	if err != nil {
		return "", wrapError(err)
	}

	invA, b := int(inv), alphabet.Mod(b)
	return mapLetters(text, func(p int) int { return invA * (p - b) }), nil
}

func checkAffineKey(a int) error {
	if !modmath.Coprime(int64(alphabet.Mod(a)), alphabet.Size) {
		return &KeyError{
			Cipher:  "affine",
			Param:   "a",
			Value:   int64(a),
			Modulus: alphabet.Size,
			Err:     ErrInvalidKey,
		}
	}
	return nil
}

// mapLetters applies f to the position of every ASCII letter in text and
// copies all other bytes through.
func mapLetters(text string, f func(p int) int) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if p, ok := alphabet.ToPosition(rune(c)); ok {
			sb.WriteRune(alphabet.ToChar(f(p)))
			continue
		}
		sb.WriteByte(c)
	}

	return sb.String()
}
