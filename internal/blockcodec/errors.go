package blockcodec

import "errors"

var (
	// ErrModulusTooSmall is returned when not even one letter fits below
	// the modulus.
	ErrModulusTooSmall = errors.New("modulus too small to encode a letter")

	// ErrNonLetter is returned when a block contains a non-letter.
	ErrNonLetter = errors.New("non-letter in block")

	// ErrBlockOverflow is returned when the encoded block does not fit in
	// 64 bits.
	ErrBlockOverflow = errors.New("block does not fit in 64 bits")

	// ErrBlockWidth is returned when a value has more digits than its
	// letter count allows.
	ErrBlockWidth = errors.New("block value wider than its letter count")
)
