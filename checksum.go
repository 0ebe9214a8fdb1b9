package sflcrypto

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// ChecksumSize is the length of the CRC-32 trailer in bytes.
const ChecksumSize = 4

// WrapChecksum appends the big-endian CRC-32 (IEEE) of plain to its end.
// The result is the checksum frame both ciphers encrypt after padding.
func WrapChecksum(plain []byte) []byte {
	framed := make([]byte, len(plain)+ChecksumSize)
	copy(framed, plain)
	binary.BigEndian.PutUint32(framed[len(plain):], crc32.ChecksumIEEE(plain))
	return framed
}

// UnwrapChecksum splits the trailing 4-byte checksum from framed,
// recomputes the CRC-32 over the remaining prefix and compares. It returns
// the prefix on match, and ErrIntegrity on mismatch or when framed is
// shorter than the checksum itself.
func UnwrapChecksum(framed []byte) ([]byte, error) {
	if len(framed) < ChecksumSize {
		return nil, fmt.Errorf("%w: frame too short (%d bytes)", ErrIntegrity, len(framed))
	}
	plain := framed[:len(framed)-ChecksumSize]
	stored := binary.BigEndian.Uint32(framed[len(framed)-ChecksumSize:])
	if crc32.ChecksumIEEE(plain) != stored {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrIntegrity)
	}
	return plain, nil
}
