package modmath

import (
	"fmt"
	"math/bits"
)

// GCD returns the greatest common divisor of a and b. The result is never
// negative and GCD(a, 0) is |a|.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ExtendedGCD returns g = GCD(a, b) together with Bézout coefficients x
// and y such that a*x + b*y == g.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldX, x := int64(1), int64(0)
	oldY, y := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldX, x = x, oldX-q*x
		oldY, y = y, oldY-q*y
	}

	if oldR < 0 {
		return -oldR, -oldX, -oldY
	}
	return oldR, oldX, oldY
}

// ModInverse returns the inverse of a modulo m in [0, m).
func ModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidModulus, m)
	}

	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, g)
	}

	return (x%m + m) % m, nil
}

// Coprime reports whether GCD(a, b) is 1.
func Coprime(a, b int64) bool {
	return GCD(a, b) == 1
}

// ModPow returns base^exp mod mod using square-and-multiply. The result is
// in [0, mod). ModPow panics if mod is zero.
func ModPow(base, exp, mod uint64) uint64 {
	if mod == 0 {
		panic("modmath: zero modulus")
	}

	result := 1 % mod
	base %= mod

	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, mod)
		}
		exp >>= 1
		base = MulMod(base, base, mod)
	}

	return result
}

// MulMod returns a*b mod mod without overflowing. mod must be non-zero.
func MulMod(a, b, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, mod)
}
