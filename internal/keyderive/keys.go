package keyderive

import (
	"crypto/rand"
	"io"
)

// randReader is the random source used for salts.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// CaesarShift derives a Caesar shift in [1, 25].
func CaesarShift(passphrase, salt []byte) (int, error) {
	words, err := ExpandWords(passphrase, salt, InfoCaesar, 1)
	if err != nil {
		return 0, err
	}
	return int(words[0]%25) + 1, nil
}

// AffineKey derives an Affine key (a, b) with a coprime with 26.
func AffineKey(passphrase, salt []byte) (a, b int, err error) {
	words, err := ExpandWords(passphrase, salt, InfoAffine, 2)
	if err != nil {
		return 0, 0, err
	}
	a = AffineMultipliers[words[0]%uint64(len(AffineMultipliers))]
	b = int(words[1] % 26)
	return a, b, nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
