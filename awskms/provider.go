// Package awskms loads sBurger-256 keys wrapped by AWS KMS.
//
// Each wrapped key is the output of KMS Encrypt or GenerateDataKey over 32
// bytes of key material. Keys are unwrapped once at construction and held by
// an sburger.StaticKeyProvider.
//
// Usage:
//
//	cfg, err := awsconfig.LoadDefaultConfig(ctx)
//	provider, err := awskms.New(ctx, kms.NewFromConfig(cfg),
//	    awskms.WithEncryptedKey(encryptedKeyBytes, "key-1"),
//	)
package awskms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/kms"

	"github.com/rbaliyan/sburger"
)

// Client is the subset of the AWS KMS API used by this provider.
type Client interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// Option configures New.
type Option func(*options)

type options struct {
	keys []entry
}

type entry struct {
	ciphertext []byte
	id         string
	kmsKeyID   string // ARN or alias; empty lets KMS read it from the ciphertext
}

// WithEncryptedKey adds a KMS-encrypted key under id.
// The first key added becomes the current key.
func WithEncryptedKey(ciphertext []byte, id string) Option {
	return func(o *options) {
		o.keys = append(o.keys, entry{ciphertext: ciphertext, id: id})
	}
}

// WithEncryptedKeyForKMSKey is like WithEncryptedKey but pins the KMS key
// ARN or alias used for decryption.
func WithEncryptedKeyForKMSKey(ciphertext []byte, id, kmsKeyID string) Option {
	return func(o *options) {
		o.keys = append(o.keys, entry{ciphertext: ciphertext, id: id, kmsKeyID: kmsKeyID})
	}
}

// New unwraps every configured key with KMS Decrypt. The client is not
// retained after construction.
func New(ctx context.Context, client Client, opts ...Option) (*sburger.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if client == nil {
		return nil, fmt.Errorf("awskms: client is nil")
	}

	wrapped := make([]sburger.WrappedKey, 0, len(o.keys))
	for _, e := range o.keys {
		wrapped = append(wrapped, sburger.WrappedKey{
			ID: e.id,
			Unwrap: func(ctx context.Context) ([]byte, error) {
				in := &kms.DecryptInput{CiphertextBlob: e.ciphertext}
				if e.kmsKeyID != "" {
					in.KeyId = &e.kmsKeyID
				}
				out, err := client.Decrypt(ctx, in)
				if err != nil {
					return nil, err
				}
				return out.Plaintext, nil
			},
		})
	}

	p, err := sburger.LoadKeys(ctx, wrapped...)
	if err != nil {
		return nil, fmt.Errorf("awskms: %w", err)
	}
	return p, nil
}
