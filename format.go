package sburger

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary format constants.
const (
	// magic is the 2-byte payload signature "SB".
	magic = "SB"

	// formatVersion is the current binary format version.
	formatVersion = 0x01

	// algSBurger256 identifies sBurger-256 with PKCS#7 chunking.
	algSBurger256 = 0x01

	// checksumSize is the size of the xxhash64 plaintext checksum.
	checksumSize = 8

	// minHeaderSize is the minimum header size: magic(2) + version(1) + alg(1) + keyIDLen(1).
	minHeaderSize = 5

	// maxKeyIDLen is the largest key ID the one-byte length field can hold.
	maxKeyIDLen = 255
)

// header represents the parsed header of a sealed payload.
type header struct {
	version   byte
	algorithm byte
	keyID     string
	checksum  uint64
}

// headerSize returns the total header size in bytes for the given key ID.
func headerSize(keyID string) int {
	return minHeaderSize + len(keyID) + checksumSize
}

// writeHeader writes the binary header to w.
func writeHeader(w io.Writer, h *header) error {
	keyIDBytes := []byte(h.keyID)
	if len(keyIDBytes) > maxKeyIDLen {
		return fmt.Errorf("%w: key ID too long", ErrInvalidFormat)
	}

	buf := make([]byte, 0, headerSize(h.keyID))
	buf = append(buf, magic...)
	buf = append(buf, h.version, h.algorithm, byte(len(keyIDBytes)))
	buf = append(buf, keyIDBytes...)
	buf = binary.BigEndian.AppendUint64(buf, h.checksum)

	_, err := w.Write(buf)
	return err
}

// readHeader parses the binary header from data, returning the header and
// the remaining ciphertext. The ciphertext is a copy, safe to decrypt in place.
func readHeader(data []byte) (*header, []byte, error) {
	if len(data) < minHeaderSize {
		return nil, nil, fmt.Errorf("%w: data too short", ErrInvalidFormat)
	}

	if string(data[0:2]) != magic {
		return nil, nil, fmt.Errorf("%w: invalid magic bytes", ErrInvalidFormat)
	}

	h := &header{
		version:   data[2],
		algorithm: data[3],
	}

	if h.version != formatVersion {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, h.version)
	}

	if h.algorithm != algSBurger256 {
		return nil, nil, fmt.Errorf("%w: unsupported algorithm %d", ErrInvalidFormat, h.algorithm)
	}

	keyIDLen := int(data[4])
	offset := minHeaderSize

	if len(data) < offset+keyIDLen+checksumSize {
		return nil, nil, fmt.Errorf("%w: data too short for header", ErrInvalidFormat)
	}

	h.keyID = string(data[offset : offset+keyIDLen])
	offset += keyIDLen

	h.checksum = binary.BigEndian.Uint64(data[offset : offset+checksumSize])
	offset += checksumSize

	body := data[offset:]
	if len(body) == 0 || len(body)%BlockSize != 0 {
		return nil, nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", ErrInvalidFormat, len(body), BlockSize)
	}

	return h, append([]byte(nil), body...), nil
}
