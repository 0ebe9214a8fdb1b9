package sflcrypto

import "io"

// Option configures a SecretCipher.
type Option func(*SecretCipher)

// WithRandom sets the source used to draw one-time secret keys. Intended
// for tests and deterministic fixtures; production callers should keep the
// default crypto/rand source.
func WithRandom(r io.Reader) Option {
	return func(c *SecretCipher) {
		c.rand = r
	}
}
