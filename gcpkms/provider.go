// Package gcpkms loads sBurger-256 keys wrapped by Google Cloud KMS.
//
// Each wrapped key is the ciphertext of a Cloud KMS Encrypt over 32 bytes of
// key material. Keys are unwrapped once at construction and held by an
// sburger.StaticKeyProvider.
//
// Usage:
//
//	client, err := kms.NewKeyManagementClient(ctx)
//	provider, err := gcpkms.New(ctx, client,
//	    gcpkms.WithEncryptedKey(ciphertext, "key-1", resourceName),
//	)
package gcpkms

import (
	"context"
	"fmt"

	kmspb "cloud.google.com/go/kms/apiv1/kmspb"

	"github.com/rbaliyan/sburger"
)

// Client is the subset of the GCP Cloud KMS API used by this provider.
type Client interface {
	Decrypt(ctx context.Context, req *kmspb.DecryptRequest) (*kmspb.DecryptResponse, error)
}

// Option configures New.
type Option func(*options)

type options struct {
	keys []entry
}

type entry struct {
	ciphertext   []byte
	id           string
	resourceName string // projects/*/locations/*/keyRings/*/cryptoKeys/*
}

// WithEncryptedKey adds a Cloud KMS-encrypted key under id. resourceName is
// the full CryptoKey resource name. The first key added becomes the current key.
func WithEncryptedKey(ciphertext []byte, id, resourceName string) Option {
	return func(o *options) {
		o.keys = append(o.keys, entry{ciphertext: ciphertext, id: id, resourceName: resourceName})
	}
}

// New unwraps every configured key with Cloud KMS Decrypt. The client is not
// retained after construction.
func New(ctx context.Context, client Client, opts ...Option) (*sburger.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if client == nil {
		return nil, fmt.Errorf("gcpkms: client is nil")
	}

	wrapped := make([]sburger.WrappedKey, 0, len(o.keys))
	for _, e := range o.keys {
		if e.resourceName == "" {
			return nil, fmt.Errorf("gcpkms: key %q has no resource name", e.id)
		}
		wrapped = append(wrapped, sburger.WrappedKey{
			ID: e.id,
			Unwrap: func(ctx context.Context) ([]byte, error) {
				resp, err := client.Decrypt(ctx, &kmspb.DecryptRequest{
					Name:       e.resourceName,
					Ciphertext: e.ciphertext,
				})
				if err != nil {
					return nil, err
				}
				return resp.Plaintext, nil
			},
		})
	}

	p, err := sburger.LoadKeys(ctx, wrapped...)
	if err != nil {
		return nil, fmt.Errorf("gcpkms: %w", err)
	}
	return p, nil
}
