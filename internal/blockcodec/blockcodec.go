package blockcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cipherkit/cipherkit-go/internal/alphabet"
)

const (
	// DigitsPerLetter is the number of decimal digits used for each letter.
	DigitsPerLetter = 2

	// MaxLetters is the widest block a uint64 value can carry: its 20
	// decimal digits hold ten letters.
	MaxLetters = 10

	// maxLetterCode is the two-digit code of the last letter ('Z').
	maxLetterCode = "25"
)

// LettersPerBlock returns the largest L such that L copies of "25",
// parsed as a decimal integer, is strictly less than n.
func LettersPerBlock(n uint64) (int, error) {
	letters := 1
	for {
		value, err := strconv.ParseUint(strings.Repeat(maxLetterCode, letters), 10, 64)
		if err != nil || value >= n {
			break
		}
		letters++
	}
	letters--

	if letters < 1 {
		return 0, fmt.Errorf("%w: n = %d", ErrModulusTooSmall, n)
	}
	return letters, nil
}

// EncodeBlock converts letters into a single block value.
func EncodeBlock(letters string) (uint64, error) {
	var sb strings.Builder
	sb.Grow(len(letters) * DigitsPerLetter)

	for i, r := range letters {
		p, ok := alphabet.ToPosition(r)
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrNonLetter, r, i)
		}
		if p < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.Itoa(p))
	}

	if sb.Len() == 0 {
		return 0, nil
	}

	value, err := strconv.ParseUint(sb.String(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %d letters", ErrBlockOverflow, len(letters))
		}
		return 0, err
	}
	return value, nil
}

// DecodeBlock converts a block value back into letters, restoring one
// dropped leading zero when the decimal form has an odd length.
func DecodeBlock(value uint64) string {
	digits := strconv.FormatUint(value, 10)
	if len(digits)%DigitsPerLetter != 0 {
		digits = "0" + digits
	}
	return decodeDigits(digits)
}

// DecodeBlockWidth converts a block value encoded from exactly letters
// letters back into text, restoring every dropped leading zero.
func DecodeBlockWidth(value uint64, letters int) (string, error) {
	if letters <= 0 || letters > MaxLetters {
		return "", fmt.Errorf("%w: letter count %d outside 1..%d", ErrBlockWidth, letters, MaxLetters)
	}

	digits := strconv.FormatUint(value, 10)
	width := letters * DigitsPerLetter
	if len(digits) > width {
		return "", fmt.Errorf("%w: %d has %d digits, want at most %d", ErrBlockWidth, value, len(digits), width)
	}

	return decodeDigits(strings.Repeat("0", width-len(digits)) + digits), nil
}

// decodeDigits maps each pair of digits to a letter. Codes above 25 wrap
// around the alphabet.
func decodeDigits(digits string) string {
	var sb strings.Builder
	sb.Grow(len(digits) / DigitsPerLetter)

	for i := 0; i+DigitsPerLetter <= len(digits); i += DigitsPerLetter {
		code := int(digits[i]-'0')*10 + int(digits[i+1]-'0')
		sb.WriteRune(alphabet.ToChar(code))
	}
	return sb.String()
}
