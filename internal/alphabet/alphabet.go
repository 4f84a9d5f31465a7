// Package alphabet maps letters of the 26-letter Latin alphabet to their
// zero-based positions and back.
package alphabet

// Size is the number of letters in the alphabet.
const Size = 26

// ToPosition returns the position of r in the alphabet (A=0 ... Z=25).
// Both cases map to the same position. The second result is false when r
// is not an ASCII letter.
func ToPosition(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	}
	return 0, false
}

// ToChar returns the uppercase letter at position n. Any integer is
// accepted; n is reduced with a true modulo so negative offsets wrap.
func ToChar(n int) rune {
	return rune('A' + Mod(n))
}

// Mod reduces n into [0, Size).
func Mod(n int) int {
	return (n%Size + Size) % Size
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	_, ok := ToPosition(r)
	return ok
}
