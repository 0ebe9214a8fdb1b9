package sflcrypto

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrIntegrity is returned when a checksum frame fails validation.
	// It signals corrupted ciphertext, a truncated frame, or decryption
	// with the wrong key or password.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrFormat is returned when input cannot be parsed: invalid base64,
	// a wrong colon-delimited field count, a bad cipher key length, or a
	// ciphertext that is not a whole number of blocks.
	ErrFormat = errors.New("malformed input")
)
