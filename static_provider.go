package sburger

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// StaticKeyProvider is a KeyProvider backed by in-memory keys. Key material
// is kept sealed in memguard enclaves and only decrypted into locked memory
// while it is copied out.
// It is safe for concurrent use.
type StaticKeyProvider struct {
	mu      sync.RWMutex
	current string
	keys    map[string]*memguard.Enclave
	err     error // deferred validation error from options
}

// StaticOption configures a StaticKeyProvider.
type StaticOption func(*StaticKeyProvider)

// WithOldKey adds a previous key for opening payloads during key rotation.
// The keyBytes must be 32 bytes and id must not be empty or already in use.
func WithOldKey(keyBytes []byte, id string) StaticOption {
	return func(p *StaticKeyProvider) {
		if p.err != nil {
			return
		}
		if err := validateKey(keyBytes, id); err != nil {
			p.err = fmt.Errorf("old key %q: %w", id, err)
			return
		}
		if _, ok := p.keys[id]; ok {
			p.err = fmt.Errorf("old key %q: %w: duplicate key ID", id, ErrInvalidKeyID)
			return
		}
		p.keys[id] = sealKey(keyBytes)
	}
}

// NewStaticKeyProvider creates a KeyProvider with the given current key.
// The keyBytes must be 32 bytes and not all zero. The id identifies this key.
// Old keys can be added with WithOldKey for rotation support.
// Key bytes are copied internally; the caller may safely zero the original after construction.
func NewStaticKeyProvider(keyBytes []byte, id string, opts ...StaticOption) (*StaticKeyProvider, error) {
	if err := validateKey(keyBytes, id); err != nil {
		return nil, err
	}

	p := &StaticKeyProvider{
		current: id,
		keys:    map[string]*memguard.Enclave{id: sealKey(keyBytes)},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.err != nil {
		return nil, p.err
	}

	return p, nil
}

// Rotate makes keyBytes the current key under id. The previous current key
// stays available through KeyByID. An id already held by the provider is
// accepted only with identical bytes; it returns ErrInvalidKeyID otherwise.
func (p *StaticKeyProvider) Rotate(keyBytes []byte, id string) error {
	if err := validateKey(keyBytes, id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.keys[id]; ok {
		buf, err := e.Open()
		if err != nil {
			return fmt.Errorf("sburger: failed to open key %q: %w", id, err)
		}
		same := subtle.ConstantTimeCompare(buf.Bytes(), keyBytes) == 1
		buf.Destroy()
		if !same {
			return fmt.Errorf("%w: key %q already exists with different bytes", ErrInvalidKeyID, id)
		}
		p.current = id
		return nil
	}
	p.keys[id] = sealKey(keyBytes)
	p.current = id
	return nil
}

// CurrentKey returns the current key for new payloads.
func (p *StaticKeyProvider) CurrentKey() (Key, error) {
	p.mu.RLock()
	id := p.current
	p.mu.RUnlock()
	return p.KeyByID(id)
}

// KeyByID returns the key with the given ID.
func (p *StaticKeyProvider) KeyByID(id string) (Key, error) {
	p.mu.RLock()
	e, ok := p.keys[id]
	p.mu.RUnlock()
	if !ok {
		return Key{}, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}

	buf, err := e.Open()
	if err != nil {
		return Key{}, fmt.Errorf("sburger: failed to open key %q: %w", id, err)
	}
	defer buf.Destroy()

	b := make([]byte, buf.Size())
	copy(b, buf.Bytes())
	return Key{ID: id, Bytes: b}, nil
}

func validateKey(keyBytes []byte, id string) error {
	if len(keyBytes) != KeySize {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(keyBytes))
	}
	if id == "" {
		return fmt.Errorf("%w: key ID must not be empty", ErrInvalidKeyID)
	}
	if isZero(keyBytes) {
		return fmt.Errorf("%w: key %q is all zero", ErrKeyNotSet, id)
	}
	return nil
}

// sealKey moves a copy of keyBytes into an enclave. NewEnclave wipes its
// argument, so the caller's slice is left untouched.
func sealKey(keyBytes []byte) *memguard.Enclave {
	b := make([]byte, len(keyBytes))
	copy(b, keyBytes)
	return memguard.NewEnclave(b)
}

// Compile-time interface check.
var _ KeyProvider = (*StaticKeyProvider)(nil)
