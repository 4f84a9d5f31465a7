package keyderive

import "io"

// SetRandReaderForTesting makes NewSalt read its bytes from r, so tests
// get fixed salts or read failures. Call the returned func to put the
// crypto/rand source back.
func SetRandReaderForTesting(r io.Reader) func() {
	prev := randReader
	randReader = r
	return func() { randReader = prev }
}
