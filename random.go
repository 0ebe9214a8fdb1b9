package sflcrypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// defaultRand is the process-wide random source used when no override is
// given. crypto/rand serializes access internally and opens the system
// entropy source once per process, so the very first read may block briefly
// while the pool initializes.
var defaultRand io.Reader = rand.Reader

// readRandom fills a fresh n-byte slice from src.
func readRandom(src io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
