package sburger

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"
)

// WrappedKey is key material held encrypted by an external key manager
// (a KMS, a vault). Unwrap returns the 32 plaintext key bytes.
type WrappedKey struct {
	ID     string
	Unwrap func(ctx context.Context) ([]byte, error)
}

// LoadKeys unwraps every key and returns a StaticKeyProvider holding them.
// The first key becomes the current key; the rest remain available for
// opening payloads sealed before a rotation. Key IDs must be unique; a
// duplicate returns ErrInvalidKeyID before anything is unwrapped.
// Unwrapped plaintexts are wiped once they are sealed inside the provider.
// The unwrap functions are not retained.
func LoadKeys(ctx context.Context, keys ...WrappedKey) (*StaticKeyProvider, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("sburger: at least one wrapped key is required")
	}

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate key ID %q", ErrInvalidKeyID, k.ID)
		}
		seen[k.ID] = struct{}{}
	}

	plain := make([][]byte, 0, len(keys))
	defer func() {
		for _, b := range plain {
			memguard.WipeBytes(b)
		}
	}()

	for _, k := range keys {
		if k.Unwrap == nil {
			return nil, fmt.Errorf("%w: key %q has no unwrap function", ErrMissingInput, k.ID)
		}
		b, err := k.Unwrap(ctx)
		if err != nil {
			return nil, fmt.Errorf("sburger: failed to unwrap key %q: %w", k.ID, err)
		}
		plain = append(plain, b)
	}

	opts := make([]StaticOption, 0, len(keys)-1)
	for i, k := range keys[1:] {
		opts = append(opts, WithOldKey(plain[i+1], k.ID))
	}

	return NewStaticKeyProvider(plain[0], keys[0].ID, opts...)
}
