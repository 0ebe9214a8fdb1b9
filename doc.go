// Package sflcrypto implements the cryptographic encoding layer of the
// SFLvault credential store: serialization of ElGamal key material to and
// from transportable text, checksum framing of plaintext, password-based
// encryption of the locally stored private key, and per-secret symmetric
// encryption of service credentials.
//
// The package performs no I/O and no asymmetric arithmetic. Key generation,
// ElGamal encryption/decryption, storage and transport are collaborators;
// this package only frames and encodes the values they consume and produce.
// Every format below is persisted data and must be reproduced bit for bit,
// or existing vaults become unreadable.
//
// # Wire Formats
//
// All text forms use standard base64 with padding (RFC 4648 §4). The
// standard alphabet never contains ':', so colon-joined fields are
// unambiguous. Integers are encoded as their minimal big-endian bytes with
// no sign bit; zero encodes as the empty string.
//
//   - Message pair: base64(c1) ":" base64(c2)
//   - Public key: base64(p) ":" base64(g) ":" base64(y)
//   - Private key: four colon-joined base64 integer fields in stored order
//   - Persisted secret: two independent base64 strings (key, ciphertext)
//   - Private-key blob: one base64 string, Blowfish-encrypted
//
// # Checksum Framing
//
// Before encryption, plaintext is framed as plaintext || CRC-32(plaintext)
// with the checksum stored as 4 big-endian bytes. The CRC detects
// accidental corruption and wrong decryption keys; it is not a MAC and
// offers no protection against deliberate tampering.
//
// # Ciphers
//
// Both ciphers run their block cipher with no IV, so identical plaintext
// blocks yield identical ciphertext blocks; the persisted formats depend on
// this mode. Plaintext is right-padded with zero bytes to the block size
// and the padding is stripped after decryption. A frame whose CRC happens
// to end in a zero byte loses those bytes to the strip; the ambiguity is
// part of the format and kept for back-read compatibility.
//
// [EncryptPrivateKey] protects the single local private-key record with
// Blowfish keyed directly by the password bytes. A wrong password surfaces
// as [ErrIntegrity]; decryption never silently accepts an invalid frame.
//
// [SecretCipher.Encrypt] draws a fresh 256-bit AES key per secret and
// returns key and ciphertext as an independent pair, so each secret can be
// re-keyed on its own.
//
// # Legacy Records
//
// Secrets written before checksum framing carry no CRC trailer.
// [SecretCipher.Decrypt] therefore never fails on a checksum mismatch:
// it returns the zero-stripped bytes verbatim, tagged
// [FormatLegacyUnchecked], and callers flag the record for re-encryption.
// This fallback is permanent until an explicit data migration. The private
// key path has no such fallback; the asymmetry is deliberate.
package sflcrypto
