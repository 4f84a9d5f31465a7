package cipherkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cipherkit/cipherkit-go/internal/blockcodec"
)

// Block is one RSA cipher block.
type Block struct {
	// Value is the encrypted block, below the modulus.
	Value uint64
	// Letters is the number of plaintext letters in the block, or 0 when
	// unknown.
	Letters int
}

// String formats the block as "value:letters", or "value" when the letter
// count is unknown. ParseBlock reads the same form.
func (b Block) String() string {
	if b.Letters > 0 {
		return strconv.FormatUint(b.Value, 10) + ":" + strconv.Itoa(b.Letters)
	}
	return strconv.FormatUint(b.Value, 10)
}

// ParseBlock parses "value" or "value:letters".
func ParseBlock(s string) (Block, error) {
	valueStr, lettersStr, tagged := strings.Cut(strings.TrimSpace(s), ":")

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %q: %w", ErrMalformedBlock, s, err)
	}

	if !tagged {
		return Block{Value: value}, nil
	}

	letters, err := strconv.Atoi(lettersStr)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %q: %w", ErrMalformedBlock, s, err)
	}
	if letters < 1 || letters > blockcodec.MaxLetters {
		return Block{}, fmt.Errorf("%w: %q: letter count must be in 1..%d", ErrMalformedBlock, s, blockcodec.MaxLetters)
	}

	return Block{Value: value, Letters: letters}, nil
}

// ParseBlocks parses every field with ParseBlock.
func ParseBlocks(fields []string) ([]Block, error) {
	blocks := make([]Block, 0, len(fields))
	for _, f := range fields {
		b, err := ParseBlock(f)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Values returns the block values without letter counts.
func Values(blocks []Block) []uint64 {
	values := make([]uint64, len(blocks))
	for i, b := range blocks {
		values[i] = b.Value
	}
	return values
}

// LettersPerBlock returns how many letters fit in one block below n.
// It fails with ErrModulusTooSmall when n <= 25.
func LettersPerBlock(n uint64) (int, error) {
	l, err := blockcodec.LettersPerBlock(n)
	if err != nil {
		return 0, wrapError(err)
	}
	return l, nil
}
