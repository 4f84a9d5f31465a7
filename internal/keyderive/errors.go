package keyderive

import "errors"

// ErrEmptyPassphrase is returned when the passphrase is empty.
var ErrEmptyPassphrase = errors.New("empty passphrase")
