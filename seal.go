package sburger

import (
	"bytes"
	"crypto/cipher"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// seal pads plaintext, encrypts it block by block with b and prepends the
// header naming keyID.
func seal(plaintext []byte, keyID string, b cipher.Block) ([]byte, error) {
	body := pad(plaintext)
	for off := 0; off < len(body); off += BlockSize {
		b.Encrypt(body[off:], body[off:])
	}

	h := &header{
		version:   formatVersion,
		algorithm: algSBurger256,
		keyID:     keyID,
		checksum:  xxhash.Sum64(plaintext),
	}

	var buf bytes.Buffer
	buf.Grow(headerSize(keyID) + len(body))
	if err := writeHeader(&buf, h); err != nil {
		return nil, fmt.Errorf("sburger: failed to write header: %w", err)
	}
	buf.Write(body)

	return buf.Bytes(), nil
}
