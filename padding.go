package sburger

import "fmt"

// pad returns a copy of msg extended to a multiple of BlockSize with
// PKCS#7 padding. It always adds between 1 and BlockSize bytes, each
// holding the pad length.
func pad(msg []byte) []byte {
	n := BlockSize - len(msg)%BlockSize
	out := make([]byte, len(msg)+n)
	copy(out, msg)
	for i := len(msg); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpad strips PKCS#7 padding added by pad, validating every pad byte.
func unpad(padded []byte) ([]byte, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrInvalidPadding, len(padded), BlockSize)
	}
	n := int(padded[len(padded)-1])
	if n == 0 || n > BlockSize {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, n)
	}
	var bad byte
	for _, b := range padded[len(padded)-n:] {
		bad |= b ^ byte(n)
	}
	if bad != 0 {
		return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
	}
	return padded[:len(padded)-n], nil
}
