package sburger

import (
	"bytes"
	"testing"
)

func TestPadLengths(t *testing.T) {
	tests := []struct {
		in     int
		padded int
		pad    byte
	}{
		{0, 32, 32},
		{1, 32, 31},
		{31, 32, 1},
		{32, 64, 32},
		{33, 64, 31},
		{100, 128, 28},
	}
	for _, tt := range tests {
		msg := bytes.Repeat([]byte{'m'}, tt.in)
		got := pad(msg)
		if len(got) != tt.padded {
			t.Errorf("pad(len %d): got len %d, want %d", tt.in, len(got), tt.padded)
			continue
		}
		if !bytes.Equal(got[:tt.in], msg) {
			t.Errorf("pad(len %d) changed the message", tt.in)
		}
		for i, b := range got[tt.in:] {
			if b != tt.pad {
				t.Errorf("pad(len %d) byte %d: got %d, want %d", tt.in, tt.in+i, b, tt.pad)
			}
		}

		back, err := unpad(got)
		if err != nil {
			t.Fatalf("unpad(len %d): %v", tt.padded, err)
		}
		if !bytes.Equal(back, msg) {
			t.Errorf("unpad: got %q, want %q", back, msg)
		}
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	msg := make([]byte, 4, 64)
	copy(msg, "abcd")
	p := pad(msg)
	p[0] = 'z'
	if msg[0] != 'a' {
		t.Error("pad wrote into the caller's buffer")
	}
}

func TestUnpadRejects(t *testing.T) {
	valid := pad([]byte("hello"))

	zeroPad := bytes.Clone(valid)
	zeroPad[len(zeroPad)-1] = 0

	tooLong := bytes.Clone(valid)
	tooLong[len(tooLong)-1] = 33

	inconsistent := bytes.Clone(valid)
	inconsistent[len(inconsistent)-2] ^= 0xFF

	tests := map[string][]byte{
		"empty":        {},
		"not aligned":  valid[:31],
		"zero pad":     zeroPad,
		"pad too long": tooLong,
		"inconsistent": inconsistent,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := unpad(data); !IsInvalidPadding(err) {
				t.Errorf("expected ErrInvalidPadding, got %v", err)
			}
		})
	}
}
