package cipherkit

// rsaConfig holds configuration for RSA encryption.
type rsaConfig struct {
	untagged bool
}

// RSAOption configures RSA encryption.
type RSAOption func(*rsaConfig)

// WithUntaggedBlocks drops the letter count from encrypted blocks, leaving
// bare decimal values as in the classic classroom exercise. Decrypting such
// blocks relies on the odd-length padding heuristic and is lossy when a
// block starts with 'A'.
func WithUntaggedBlocks() RSAOption {
	return func(c *rsaConfig) {
		c.untagged = true
	}
}

func newRSAConfig(opts []RSAOption) rsaConfig {
	var cfg rsaConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
