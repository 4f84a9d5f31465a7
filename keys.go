package cipherkit

import "github.com/cipherkit/cipherkit-go/internal/keyderive"

// SaltSize is the size of a salt returned by NewSalt.
const SaltSize = keyderive.SaltSize

// DeriveCaesarShift derives a shift in [1, 25] from a passphrase using
// HKDF-SHA-512. salt may be nil.
func DeriveCaesarShift(passphrase string, salt []byte) (int, error) {
	k, err := keyderive.CaesarShift([]byte(passphrase), salt)
	if err != nil {
		return 0, wrapError(err)
	}
	return k, nil
}

// DeriveAffineKey derives an Affine key from a passphrase using
// HKDF-SHA-512. The multiplier is always coprime with 26. salt may be nil.
func DeriveAffineKey(passphrase string, salt []byte) (a, b int, err error) {
	a, b, err = keyderive.AffineKey([]byte(passphrase), salt)
	if err != nil {
		return 0, 0, wrapError(err)
	}
	return a, b, nil
}

// NewSalt returns a random salt for the Derive functions.
func NewSalt() ([]byte, error) {
	return keyderive.NewSalt()
}
