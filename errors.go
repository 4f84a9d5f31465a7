package cipherkit

import (
	"errors"
	"fmt"

	"github.com/cipherkit/cipherkit-go/internal/blockcodec"
	"github.com/cipherkit/cipherkit-go/internal/keyderive"
	"github.com/cipherkit/cipherkit-go/internal/modmath"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKey is returned when an Affine multiplier is not coprime with 26.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidPublicExponent is returned when e is not coprime with the totient.
	ErrInvalidPublicExponent = errors.New("invalid public exponent")

	// ErrModulusTooSmall is returned when the RSA modulus cannot hold one letter.
	ErrModulusTooSmall = errors.New("modulus too small")

	// ErrNonLetterInRSAInput is returned when RSA plaintext contains a non-letter.
	ErrNonLetterInRSAInput = errors.New("non-letter in RSA input")

	// ErrInvalidModulus is returned when p, q or n are out of range.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrMalformedBlock is returned when a cipher block cannot be parsed or decoded.
	ErrMalformedBlock = errors.New("malformed block")

	// ErrInvalidPassphrase is returned when a key derivation passphrase is empty.
	ErrInvalidPassphrase = errors.New("invalid passphrase")
)

// CipherKitError is implemented by all typed errors of this package.
type CipherKitError interface {
	error
	CipherKitError() // marker method
}

// KeyError describes a key that fails its coprimality requirement.
type KeyError struct {
	Cipher  string // "affine" or "rsa"
	Param   string // "a" or "e"
	Value   int64
	Modulus int64
	Err     error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v: %s = %d is not coprime with %d", e.Cipher, e.Err, e.Param, e.Value, e.Modulus)
}

// Unwrap returns the underlying sentinel.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// CipherKitError implements the CipherKitError interface.
func (e *KeyError) CipherKitError() {}

// BlockError reports which block of a sequence failed.
type BlockError struct {
	Index int
	Value uint64
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%d): %v", e.Index, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *BlockError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *BlockError) Is(target error) bool {
	return target == ErrMalformedBlock
}

// CipherKitError implements the CipherKitError interface.
func (e *BlockError) CipherKitError() {}

// internalErrors maps sentinels of the internal packages to public ones.
var internalErrors = []struct {
	internal error
	public   error
}{
	{blockcodec.ErrModulusTooSmall, ErrModulusTooSmall},
	{blockcodec.ErrNonLetter, ErrNonLetterInRSAInput},
	{blockcodec.ErrBlockOverflow, ErrMalformedBlock},
	{blockcodec.ErrBlockWidth, ErrMalformedBlock},
	{modmath.ErrInvalidModulus, ErrInvalidModulus},
	{keyderive.ErrEmptyPassphrase, ErrInvalidPassphrase},
}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	for _, m := range internalErrors {
		if errors.Is(err, m.internal) {
			return fmt.Errorf("%w: %w", m.public, err)
		}
	}

	return err
}
