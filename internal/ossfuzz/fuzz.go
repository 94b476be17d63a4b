//go:build gofuzz

// Package ossfuzz holds the OSS-Fuzz entry points, built with go-118-fuzz-build.
package ossfuzz

import (
	"bytes"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/AdamKorcz/go-118-fuzz-build/testing"
	"github.com/rbaliyan/config/codec"

	"github.com/rbaliyan/sburger"
)

// FuzzCipher splits the input into a key and a block and checks that
// every accepted block round-trips.
func FuzzCipher(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		key, err := c.GetNBytes(sburger.KeySize)
		if err != nil {
			return
		}
		block, err := c.GetBytes()
		if err != nil {
			return
		}

		ci, err := sburger.New(key)
		if err != nil {
			return
		}
		buf := bytes.Clone(block)
		if _, err := ci.Encrypt(buf); err != nil {
			return
		}
		if _, err := ci.Decrypt(buf); err != nil {
			t.Fatalf("Decrypt after successful Encrypt: %v", err)
		}
		if !bytes.Equal(buf, block) {
			t.Fatalf("round trip: got %x, want %x", buf, block)
		}
	})
}

// FuzzCodecDecode feeds arbitrary bytes to Codec.Decode.
func FuzzCodecDecode(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		c := fuzz.NewConsumer(data)
		key, err := c.GetNBytes(sburger.KeySize)
		if err != nil {
			return
		}
		payload, err := c.GetBytes()
		if err != nil {
			return
		}

		p, err := sburger.NewStaticKeyProvider(key, "fuzz")
		if err != nil {
			return
		}
		dec, err := sburger.NewCodec(codec.JSON(), p)
		if err != nil {
			t.Fatalf("NewCodec: %v", err)
		}
		var v any
		_ = dec.Decode(payload, &v)
	})
}
