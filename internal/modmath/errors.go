package modmath

import "errors"

var (
	// ErrNoInverse is returned when the value is not coprime with the modulus.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrInvalidModulus is returned when the modulus is not positive.
	ErrInvalidModulus = errors.New("invalid modulus")
)
