// Package vault loads sBurger-256 keys wrapped by the HashiCorp Vault Transit
// secrets engine.
//
// Each wrapped key is a Transit ciphertext ("vault:v1:...") of 32 bytes of key
// material. Keys are unwrapped once at construction and held by an
// sburger.StaticKeyProvider.
//
// Usage:
//
//	provider, err := vault.New(ctx, client,
//	    vault.WithEncryptedKey(ciphertext, "key-1", "my-transit-key"),
//	)
package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/rbaliyan/sburger"
)

// ciphertextPrefix starts every Transit ciphertext.
const ciphertextPrefix = "vault:v"

// Client abstracts the Vault Transit decrypt operation, so any Vault client
// library (or a mock) can be plugged in.
type Client interface {
	// TransitDecrypt decrypts ciphertext with the named Transit key and
	// returns the plaintext bytes.
	TransitDecrypt(ctx context.Context, keyName string, ciphertext string) ([]byte, error)
}

// Option configures New.
type Option func(*options)

type options struct {
	keys []entry
}

type entry struct {
	ciphertext     string
	id             string
	transitKeyName string
}

// WithEncryptedKey adds a Transit-encrypted key under id, decrypted with the
// Transit key transitKeyName. The first key added becomes the current key.
func WithEncryptedKey(ciphertext string, id, transitKeyName string) Option {
	return func(o *options) {
		o.keys = append(o.keys, entry{ciphertext: ciphertext, id: id, transitKeyName: transitKeyName})
	}
}

// New unwraps every configured key through Vault Transit. The client is not
// retained after construction.
func New(ctx context.Context, client Client, opts ...Option) (*sburger.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if client == nil {
		return nil, fmt.Errorf("vault: client is nil")
	}

	wrapped := make([]sburger.WrappedKey, 0, len(o.keys))
	for _, e := range o.keys {
		if !strings.HasPrefix(e.ciphertext, ciphertextPrefix) {
			return nil, fmt.Errorf("vault: key %q: ciphertext is not in Transit format", e.id)
		}
		wrapped = append(wrapped, sburger.WrappedKey{
			ID: e.id,
			Unwrap: func(ctx context.Context) ([]byte, error) {
				return client.TransitDecrypt(ctx, e.transitKeyName, e.ciphertext)
			},
		})
	}

	p, err := sburger.LoadKeys(ctx, wrapped...)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	return p, nil
}
