package sburger

import (
	"crypto/cipher"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// open reverses seal. blockFor resolves the key ID in the header to a
// block cipher. The checksum catches a wrong key or corrupted data; it
// does not authenticate the payload.
func open(data []byte, blockFor func(keyID string) (cipher.Block, error)) ([]byte, error) {
	h, body, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	b, err := blockFor(h.keyID)
	if err != nil {
		return nil, err
	}

	for off := 0; off < len(body); off += BlockSize {
		b.Decrypt(body[off:], body[off:])
	}

	plaintext, err := unpad(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if xxhash.Sum64(plaintext) != h.checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrDecryptionFailed)
	}

	return plaintext, nil
}
