package keyderive

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ExpandWords runs HKDF-SHA-512 over passphrase and returns count
// big-endian uint64 words of output keying material. A nil or empty salt
// is replaced with a hash-length run of zero bytes as RFC 5869 specifies.
func ExpandWords(passphrase, salt []byte, info string, count int) ([]uint64, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	okm := make([]byte, count*8)
	reader := hkdf.New(sha512.New, passphrase, salt, []byte(info))
	if _, err := io.ReadFull(reader, okm); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", info, err)
	}

	words := make([]uint64, count)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(okm[i*8:])
	}
	return words, nil
}
