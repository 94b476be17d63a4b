// Package azurekv loads sBurger-256 keys wrapped by Azure Key Vault.
//
// Each wrapped key is the result of a Key Vault WrapKey over 32 bytes of key
// material. Keys are unwrapped once at construction and held by an
// sburger.StaticKeyProvider.
//
// Usage:
//
//	cred, err := azidentity.NewDefaultAzureCredential(nil)
//	client, err := azkeys.NewClient("https://my-vault.vault.azure.net/", cred, nil)
//	provider, err := azurekv.New(ctx, client,
//	    azurekv.WithWrappedKey(wrappedKeyBytes, "key-1", "my-key-name", "key-version"),
//	)
package azurekv

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azkeys"

	"github.com/rbaliyan/sburger"
)

// Client is the subset of the Azure Key Vault API used by this provider.
type Client interface {
	UnwrapKey(ctx context.Context, keyName string, keyVersion string, parameters azkeys.KeyOperationParameters, options *azkeys.UnwrapKeyOptions) (azkeys.UnwrapKeyResponse, error)
}

// Option configures New.
type Option func(*options)

type options struct {
	keys []entry
}

type entry struct {
	ciphertext []byte
	id         string
	keyName    string
	keyVersion string
	algorithm  azkeys.EncryptionAlgorithm
}

// WithWrappedKey adds a wrapped key under id, unwrapped with RSA-OAEP-256 by
// the Key Vault key keyName at keyVersion. The first key added becomes the
// current key.
func WithWrappedKey(ciphertext []byte, id, keyName, keyVersion string) Option {
	return WithWrappedKeyAlgorithm(ciphertext, id, keyName, keyVersion, azkeys.EncryptionAlgorithmRSAOAEP256)
}

// WithWrappedKeyAlgorithm is like WithWrappedKey with an explicit unwrap algorithm.
func WithWrappedKeyAlgorithm(ciphertext []byte, id, keyName, keyVersion string, alg azkeys.EncryptionAlgorithm) Option {
	return func(o *options) {
		o.keys = append(o.keys, entry{
			ciphertext: ciphertext,
			id:         id,
			keyName:    keyName,
			keyVersion: keyVersion,
			algorithm:  alg,
		})
	}
}

// New unwraps every configured key through Key Vault. The client is not
// retained after construction.
func New(ctx context.Context, client Client, opts ...Option) (*sburger.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if client == nil {
		return nil, fmt.Errorf("azurekv: client is nil")
	}

	wrapped := make([]sburger.WrappedKey, 0, len(o.keys))
	for _, e := range o.keys {
		wrapped = append(wrapped, sburger.WrappedKey{
			ID: e.id,
			Unwrap: func(ctx context.Context) ([]byte, error) {
				resp, err := client.UnwrapKey(ctx, e.keyName, e.keyVersion, azkeys.KeyOperationParameters{
					Algorithm: &e.algorithm,
					Value:     e.ciphertext,
				}, nil)
				if err != nil {
					return nil, err
				}
				return resp.Result, nil
			},
		})
	}

	p, err := sburger.LoadKeys(ctx, wrapped...)
	if err != nil {
		return nil, fmt.Errorf("azurekv: %w", err)
	}
	return p, nil
}
