package sflcrypto

import (
	"fmt"
	"math/big"
	"strings"
)

// MessagePair is an ElGamal ciphertext: two opaque byte strings produced by
// the asymmetric encryption collaborator. The vault stores one pair per
// user, carrying that user's copy of a secret's symmetric key.
type MessagePair struct {
	C1 []byte
	C2 []byte
}

// PublicKey is an ElGamal public key as the ordered triple (p, g, y).
type PublicKey struct {
	P *big.Int
	G *big.Int
	Y *big.Int
}

// PrivateKey is an ElGamal private key as an ordered quadruple of
// non-negative integers. The first two elements hold the private component
// and the last two the corresponding public parameters; the stored order is
// part of the persisted format and is preserved as-is rather than given
// names the original record layout never enforced.
type PrivateKey [4]*big.Int

// EncodeMessagePair serializes pair as base64(c1) ":" base64(c2).
func EncodeMessagePair(pair MessagePair) string {
	return ToBase64(pair.C1) + ":" + ToBase64(pair.C2)
}

// DecodeMessagePair parses the two-field message pair form.
func DecodeMessagePair(s string) (MessagePair, error) {
	fields, err := splitFields(s, 2)
	if err != nil {
		return MessagePair{}, err
	}
	c1, err := FromBase64(fields[0])
	if err != nil {
		return MessagePair{}, err
	}
	c2, err := FromBase64(fields[1])
	if err != nil {
		return MessagePair{}, err
	}
	return MessagePair{C1: c1, C2: c2}, nil
}

// EncodePublicKey serializes key as base64(p) ":" base64(g) ":" base64(y),
// each integer as its minimal big-endian bytes (zero encodes as the empty
// field).
func EncodePublicKey(key PublicKey) string {
	return encodeInts(key.P, key.G, key.Y)
}

// DecodePublicKey parses the three-field public key form.
func DecodePublicKey(s string) (PublicKey, error) {
	ints, err := decodeInts(s, 3)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{P: ints[0], G: ints[1], Y: ints[2]}, nil
}

// EncodePrivateKey serializes key as four colon-joined base64 integer
// fields in stored order. The result is the plaintext EncryptPrivateKey
// protects in the local configuration file.
func EncodePrivateKey(key PrivateKey) string {
	return encodeInts(key[0], key[1], key[2], key[3])
}

// DecodePrivateKey parses the four-field private key form.
func DecodePrivateKey(s string) (PrivateKey, error) {
	ints, err := decodeInts(s, 4)
	if err != nil {
		return PrivateKey{}, err
	}
	var key PrivateKey
	copy(key[:], ints)
	return key, nil
}

// splitFields splits s on ':' and fails unless exactly want fields result.
// Base64 text never contains the delimiter, so an unexpected count means
// the input is not a value this package produced; no recovery is attempted.
func splitFields(s string, want int) ([]string, error) {
	fields := strings.Split(s, ":")
	if len(fields) != want {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrFormat, len(fields), want)
	}
	return fields, nil
}

func encodeInts(vals ...*big.Int) string {
	encoded := make([]string, len(vals))
	for i, v := range vals {
		encoded[i] = ToBase64(v.Bytes())
	}
	return strings.Join(encoded, ":")
}

func decodeInts(s string, want int) ([]*big.Int, error) {
	fields, err := splitFields(s, want)
	if err != nil {
		return nil, err
	}
	ints := make([]*big.Int, len(fields))
	for i, f := range fields {
		raw, err := FromBase64(f)
		if err != nil {
			return nil, err
		}
		ints[i] = new(big.Int).SetBytes(raw)
	}
	return ints, nil
}
