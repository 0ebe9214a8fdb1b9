package sflcrypto

import (
	"encoding/base64"
	"fmt"
)

// ToBase64 encodes bytes to standard base64 with padding (RFC 4648 §4).
// The standard alphabet never contains ':', which keeps the colon
// delimiter of the key material encodings unambiguous.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64 to bytes. Invalid input is
// reported as ErrFormat.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrFormat, err)
	}
	return data, nil
}
