package sflcrypto

import (
	"crypto/aes"
	"fmt"
	"io"
)

// SecretKeySize is the size of a one-time AES-256 secret key in bytes.
const SecretKeySize = 32

// SecretFormat tags how a decrypted secret was validated.
type SecretFormat int

const (
	// FormatValidated means the checksum frame verified; the record is in
	// the current format.
	FormatValidated SecretFormat = iota
	// FormatLegacyUnchecked means the record predates checksum framing and
	// was decoded verbatim with no integrity check. Callers should flag
	// the record for re-encryption.
	FormatLegacyUnchecked
)

// EncodedSecret is a persisted service secret: the one-time key and the
// ciphertext, each independently base64-encoded. The storage collaborator
// keeps them as two separate fields so every secret can be re-keyed on its
// own; a key is never reused across secrets.
type EncodedSecret struct {
	Key        string
	Ciphertext string
}

// DecryptedSecret is the result of SecretCipher.Decrypt: the plaintext and
// the format tag that tells callers whether it was integrity-checked.
type DecryptedSecret struct {
	Plaintext []byte
	Format    SecretFormat
}

// SecretCipher encrypts service secrets, drawing a fresh one-time AES-256
// key per call from its random source. The zero value has no source;
// construct with NewSecretCipher.
type SecretCipher struct {
	rand io.Reader
}

// NewSecretCipher returns a cipher backed by crypto/rand unless overridden
// with WithRandom.
func NewSecretCipher(opts ...Option) *SecretCipher {
	c := &SecretCipher{rand: defaultRand}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt draws 32 fresh random bytes as a one-time key, checksum-frames
// secret, zero-pads it to the 16-byte AES block size and encrypts with no
// IV. Key and ciphertext are returned as an independent base64 pair.
func (c *SecretCipher) Encrypt(secret []byte) (EncodedSecret, error) {
	key, err := readRandom(c.rand, SecretKeySize)
	if err != nil {
		return EncodedSecret{}, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return EncodedSecret{}, fmt.Errorf("create cipher: %w", err)
	}
	framed := padZero(WrapChecksum(secret), aes.BlockSize)
	return EncodedSecret{
		Key:        ToBase64(key),
		Ciphertext: ToBase64(encryptECB(block, framed)),
	}, nil
}

// Decrypt decodes and decrypts a persisted secret. When the checksum frame
// verifies, the result is tagged FormatValidated. When it does not, the
// record is treated as the pre-checksum legacy format and the zero-stripped
// bytes are returned verbatim, tagged FormatLegacyUnchecked; this fallback
// must stay until an explicit data migration retires the old records.
func (c *SecretCipher) Decrypt(keyB64, ciphertextB64 string) (DecryptedSecret, error) {
	key, err := FromBase64(keyB64)
	if err != nil {
		return DecryptedSecret{}, err
	}
	raw, err := FromBase64(ciphertextB64)
	if err != nil {
		return DecryptedSecret{}, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return DecryptedSecret{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	framed, err := decryptECB(block, raw)
	if err != nil {
		return DecryptedSecret{}, err
	}
	stripped := stripZero(framed)
	if len(stripped) == 0 {
		// An empty secret frames to its zero CRC alone, which the strip
		// consumes entirely; the empty remainder is a validated record.
		return DecryptedSecret{Plaintext: stripped, Format: FormatValidated}, nil
	}
	plain, err := UnwrapChecksum(stripped)
	if err != nil {
		// Pre-checksum record format.
		return DecryptedSecret{Plaintext: stripped, Format: FormatLegacyUnchecked}, nil
	}
	return DecryptedSecret{Plaintext: plain, Format: FormatValidated}, nil
}
