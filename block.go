package sflcrypto

import (
	"crypto/cipher"
	"fmt"
)

// encryptECB encrypts src block by block with no IV. src must already be
// padded to a whole number of blocks.
func encryptECB(block cipher.Block, src []byte) []byte {
	bs := block.BlockSize()
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += bs {
		block.Encrypt(dst[i:i+bs], src[i:i+bs])
	}
	return dst
}

// decryptECB reverses encryptECB. A length that is not a whole number of
// blocks means the ciphertext was truncated or not produced by this
// package.
func decryptECB(block cipher.Block, src []byte) ([]byte, error) {
	bs := block.BlockSize()
	if len(src)%bs != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of block size %d", ErrFormat, len(src), bs)
	}
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += bs {
		block.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
	return dst, nil
}

// padZero right-pads b with zero bytes to the next multiple of blockSize.
// Already-aligned input comes back unchanged.
func padZero(b []byte, blockSize int) []byte {
	n := (blockSize - len(b)%blockSize) % blockSize
	if n == 0 {
		return b
	}
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	return padded
}

// stripZero removes all trailing zero bytes. For legacy records this also
// eats zero bytes the plaintext itself ended with; the ambiguity is part of
// the persisted format.
func stripZero(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
