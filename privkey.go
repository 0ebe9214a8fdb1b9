package sflcrypto

import (
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// EncryptPrivateKey encrypts a serialized private key with a password for
// local storage. The password bytes key a Blowfish cipher directly, with no
// key-derivation hardening. The plaintext is checksum-framed, zero-padded
// to the 8-byte block size, encrypted with no IV and base64-encoded. The
// resulting blob is stored as the "key" field of the local configuration
// file. Blowfish accepts passwords of 1 to 56 bytes; anything else is
// ErrFormat.
func EncryptPrivateKey(plaintext, password []byte) (string, error) {
	block, err := blowfish.NewCipher(password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	framed := padZero(WrapChecksum(plaintext), blowfish.BlockSize)
	return ToBase64(encryptECB(block, framed)), nil
}

// DecryptPrivateKey reverses EncryptPrivateKey. A wrong password scrambles
// the checksum frame and surfaces as ErrIntegrity; unlike the secret
// cipher, this path never falls back to returning unvalidated bytes.
func DecryptPrivateKey(blobB64 string, password []byte) ([]byte, error) {
	block, err := blowfish.NewCipher(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	raw, err := FromBase64(blobB64)
	if err != nil {
		return nil, err
	}
	framed, err := decryptECB(block, raw)
	if err != nil {
		return nil, err
	}
	stripped := stripZero(framed)
	if len(stripped) == 0 {
		// An empty plaintext frames to its zero CRC alone, which the strip
		// consumes entirely; garbage from a wrong password strips to empty
		// only when every block decrypted to zeros.
		return stripped, nil
	}
	return UnwrapChecksum(stripped)
}
