package sburger

// Key represents a named cipher key.
type Key struct {
	// ID is a unique identifier for the key (e.g., "key-2024-01").
	ID string

	// Bytes is the raw key material. Must be 32 bytes.
	Bytes []byte
}

// Wipe zeroes the key material.
func (k Key) Wipe() {
	clear(k.Bytes)
}

// KeyProvider abstracts key retrieval for sealing and opening.
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	// CurrentKey returns the key to use for new payloads. The caller owns
	// the returned bytes.
	CurrentKey() (Key, error)

	// KeyByID returns the key with the given ID, used for opening.
	// Returns ErrKeyNotFound if the key ID is not known.
	KeyByID(id string) (Key, error)
}
