package cipherkit

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/cipherkit/cipherkit-go/internal/alphabet"
	"github.com/cipherkit/cipherkit-go/internal/blockcodec"
	"github.com/cipherkit/cipherkit-go/internal/modmath"
)

// MaxModulus is the largest RSA modulus RSASetup accepts.
const MaxModulus = 1<<63 - 1

// RSAKey holds textbook RSA key material.
type RSAKey struct {
	P, Q uint64
	// N is the modulus p*q.
	N uint64
	// Phi is the totient (p-1)(q-1).
	Phi uint64
	// E is the public exponent.
	E uint64
	// D is the private exponent, the inverse of E modulo Phi.
	D uint64
}

// RSASetup derives n, phi and d from p, q and e. p and q are not checked
// for primality; decryption only inverts encryption when they are prime.
func RSASetup(p, q, e uint64) (*RSAKey, error) {
	if p < 2 || q < 2 {
		return nil, fmt.Errorf("%w: p = %d, q = %d: both must be at least 2", ErrInvalidModulus, p, q)
	}

	hi, n := bits.Mul64(p, q)
	if hi != 0 || n > MaxModulus {
		return nil, fmt.Errorf("%w: p*q exceeds %d", ErrInvalidModulus, uint64(MaxModulus))
	}

	phi := (p - 1) * (q - 1)

	d, err := modmath.ModInverse(int64(e%phi), int64(phi))
	if err != nil {
		return nil, &KeyError{
			Cipher:  "rsa",
			Param:   "e",
			Value:   int64(e % phi),
			Modulus: int64(phi),
			Err:     ErrInvalidPublicExponent,
		}
	}

	return &RSAKey{P: p, Q: q, N: n, Phi: phi, E: e, D: uint64(d)}, nil
}

// Encrypt encrypts text with the public half of k.
func (k *RSAKey) Encrypt(text string, opts ...RSAOption) ([]Block, error) {
	return RSAEncrypt(text, k.E, k.N, opts...)
}

// Decrypt decrypts blocks with the private half of k.
func (k *RSAKey) Decrypt(blocks []Block) (string, error) {
	return RSADecrypt(blocks, k.D, k.N)
}

// RSAEncrypt splits text into runs of LettersPerBlock(n) letters and
// encrypts each run as block^e mod n. The last run may be shorter. text
// must contain only ASCII letters; lowercase is treated as uppercase.
func RSAEncrypt(text string, e, n uint64, opts ...RSAOption) ([]Block, error) {
	cfg := newRSAConfig(opts)

	for i := 0; i < len(text); i++ {
		if !alphabet.IsLetter(rune(text[i])) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNonLetterInRSAInput, text[i], i)
		}
	}

	letters, err := blockcodec.LettersPerBlock(n)
	if err != nil {
		return nil, wrapError(err)
	}

	blocks := make([]Block, 0, (len(text)+letters-1)/letters)
	for start := 0; start < len(text); start += letters {
		end := min(start+letters, len(text))

		m, err := blockcodec.EncodeBlock(text[start:end])
		if err != nil {
			return nil, wrapError(err)
		}

		b := Block{Value: modmath.ModPow(m, e, n)}
		if !cfg.untagged {
			b.Letters = end - start
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}

// RSADecrypt decrypts every block as value^d mod n and concatenates the
// decoded letters in order. Blocks with a letter count are decoded
// losslessly; blocks without one use the odd-length padding heuristic.
// A letter count above LettersPerBlock(n) is a *BlockError.
func RSADecrypt(blocks []Block, d, n uint64) (string, error) {
	if n == 0 {
		return "", fmt.Errorf("%w: n = 0", ErrInvalidModulus)
	}

	// Tagged blocks wider than this cannot come from RSAEncrypt under n.
	maxLetters, widthErr := blockcodec.LettersPerBlock(n)

	var sb strings.Builder
	for i, b := range blocks {
		m := modmath.ModPow(b.Value, d, n)

		if b.Letters <= 0 {
			sb.WriteString(blockcodec.DecodeBlock(m))
			continue
		}

		if widthErr != nil {
			return "", &BlockError{Index: i, Value: b.Value, Err: wrapError(widthErr)}
		}
		if b.Letters > maxLetters {
			return "", &BlockError{
				Index: i,
				Value: b.Value,
				Err:   fmt.Errorf("%w: letter count %d exceeds %d for n = %d", ErrMalformedBlock, b.Letters, maxLetters, n),
			}
		}

		chunk, err := blockcodec.DecodeBlockWidth(m, b.Letters)
		if err != nil {
			return "", &BlockError{Index: i, Value: b.Value, Err: wrapError(err)}
		}
		sb.WriteString(chunk)
	}

	return sb.String(), nil
}

// RSADecryptValues decrypts untagged block values with the odd-length
// padding heuristic.
func RSADecryptValues(values []uint64, d, n uint64) (string, error) {
	blocks := make([]Block, len(values))
	for i, v := range values {
		blocks[i] = Block{Value: v}
	}
	return RSADecrypt(blocks, d, n)
}
