package sburger

import (
	"context"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/go-logr/logr"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rbaliyan/config/codec"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCacheSize is the default number of derived ciphers a Codec keeps.
const DefaultCacheSize = 64

// Codec wraps an inner codec with sBurger-256 encryption.
// On Encode, the inner codec serializes the value, then the result is sealed.
// On Decode, the data is opened, then the inner codec deserializes the plaintext.
//
// Ciphers derived from provider keys are cached per key ID. Codec is safe for
// concurrent use if the underlying KeyProvider and inner codec are safe for
// concurrent use. StaticKeyProvider satisfies this requirement.
type Codec struct {
	inner    codec.Codec
	provider KeyProvider
	name     string
	logger   logr.Logger
	inst     *instruments
	ciphers  *lru.Cache[string, *block]
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// CodecOption configures a Codec.
type CodecOption func(*codecOptions)

type codecOptions struct {
	logger         logr.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	cacheSize      int
}

// WithLogger sets the logger for codec diagnostics. Key material and
// plaintext are never logged. Defaults to logr.Discard().
func WithLogger(l logr.Logger) CodecOption {
	return func(o *codecOptions) { o.logger = l }
}

// WithMeterProvider sets the meter provider. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) CodecOption {
	return func(o *codecOptions) { o.meterProvider = mp }
}

// WithTracerProvider sets the tracer provider. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) CodecOption {
	return func(o *codecOptions) { o.tracerProvider = tp }
}

// WithCacheSize sets how many derived ciphers are cached. Must be positive.
func WithCacheSize(n int) CodecOption {
	return func(o *codecOptions) { o.cacheSize = n }
}

// NewCodec creates an encrypting codec that wraps the given inner codec.
// The codec name is "sburger:<inner>", e.g. "sburger:json".
// Returns an error if inner or provider is nil.
func NewCodec(inner codec.Codec, provider KeyProvider, opts ...CodecOption) (*Codec, error) {
	if inner == nil {
		return nil, fmt.Errorf("sburger: NewCodec inner codec is nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("sburger: NewCodec provider is nil")
	}

	o := codecOptions{
		logger:    logr.Discard(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.cacheSize <= 0 {
		return nil, fmt.Errorf("sburger: cache size must be positive, got %d", o.cacheSize)
	}

	ciphers, err := lru.New[string, *block](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("sburger: failed to create cipher cache: %w", err)
	}
	inst, err := newInstruments(o.meterProvider, o.tracerProvider)
	if err != nil {
		return nil, err
	}

	name := "sburger:" + inner.Name()
	return &Codec{
		inner:    inner,
		provider: provider,
		name:     name,
		logger:   o.logger.WithValues("codec", name),
		inst:     inst,
		ciphers:  ciphers,
	}, nil
}

// Name returns the codec name, e.g. "sburger:json".
func (c *Codec) Name() string {
	return c.name
}

// Encode serializes the value using the inner codec, then seals the result.
func (c *Codec) Encode(v any) (out []byte, err error) {
	ctx, span := c.inst.start(context.Background(), "sburger.Codec.Encode", attrEncode, attribute.String("sburger.codec", c.name))
	blocks := 0
	defer func() {
		c.inst.end(ctx, span, attrEncode, blocks, err)
		if err != nil {
			c.logger.Error(err, "encode failed")
		}
	}()

	plaintext, err := c.inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("sburger: inner encode failed: %w", err)
	}

	key, err := c.provider.CurrentKey()
	if err != nil {
		return nil, fmt.Errorf("sburger: failed to get current key: %w", err)
	}
	defer key.Wipe()

	b, err := c.blockFor(key)
	if err != nil {
		return nil, err
	}

	out, err = seal(plaintext, key.ID, b)
	if err != nil {
		return nil, err
	}
	blocks = len(plaintext)/BlockSize + 1
	c.logger.V(1).Info("sealed value", "keyID", key.ID, "blocks", blocks)
	return out, nil
}

// Decode opens the data, then deserializes the plaintext using the inner codec.
func (c *Codec) Decode(data []byte, v any) (err error) {
	ctx, span := c.inst.start(context.Background(), "sburger.Codec.Decode", attrDecode, attribute.String("sburger.codec", c.name))
	blocks := 0
	defer func() {
		c.inst.end(ctx, span, attrDecode, blocks, err)
		if err != nil {
			c.logger.Error(err, "decode failed")
		}
	}()

	plaintext, err := open(data, func(keyID string) (cipher.Block, error) {
		key, err := c.provider.KeyByID(keyID)
		if err != nil {
			return nil, err
		}
		defer key.Wipe()
		return c.blockFor(key)
	})
	if err != nil {
		return fmt.Errorf("sburger: decrypt failed: %w", err)
	}
	blocks = len(plaintext)/BlockSize + 1

	if err := c.inner.Decode(plaintext, v); err != nil {
		return fmt.Errorf("sburger: inner decode failed: %w", err)
	}
	return nil
}

// blockFor returns the cached cipher for key, deriving a new one when the
// ID is unknown or its key bytes changed.
func (c *Codec) blockFor(key Key) (*block, error) {
	if len(key.Bytes) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key.Bytes))
	}
	if b, ok := c.ciphers.Get(key.ID); ok && subtle.ConstantTimeCompare(b.c.key[:], key.Bytes) == 1 {
		return b, nil
	}

	b, err := newBlock(key.Bytes)
	if err != nil {
		return nil, fmt.Errorf("sburger: key %q: %w", key.ID, err)
	}
	c.ciphers.Add(key.ID, b)
	c.logger.V(2).Info("derived cipher", "keyID", key.ID)
	return b, nil
}
