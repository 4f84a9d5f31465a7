package keyderive

const (
	// InfoCaesar is the HKDF info string for Caesar shifts.
	InfoCaesar = "cipherkit:caesar:v1"
	// InfoAffine is the HKDF info string for Affine keys.
	InfoAffine = "cipherkit:affine:v1"

	// SaltSize is the size of a generated salt in bytes.
	SaltSize = 16
)

// AffineMultipliers lists the values in [0, 26) that are coprime with 26.
var AffineMultipliers = [...]int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}
