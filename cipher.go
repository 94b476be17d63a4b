package sburger

import "fmt"

// State is the lifecycle stage of a Cipher.
type State uint8

const (
	// StateUninitialized means the key is the all-zero sentinel.
	StateUninitialized State = iota
	// StateKeyAssigned means a key is present but settings are missing or stale.
	StateKeyAssigned
	// StateReady means settings were derived from the current key.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateKeyAssigned:
		return "key-assigned"
	case StateReady:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Cipher is an sBurger-256 instance: a 32-byte key plus the network
// derived from it.
//
// Every key change requires a DeriveSettings call before data can be
// transformed. A Cipher has no internal locking. Encrypt and Decrypt do
// not modify a ready Cipher, so they may run concurrently as long as no
// goroutine calls SetKey, DeriveSettings or Wipe at the same time.
type Cipher struct {
	key   [KeySize]byte
	state State

	// set only in StateReady
	settings Settings
	net      *network
}

// New returns a ready Cipher for key. It is SetKey followed by DeriveSettings.
func New(key []byte) (*Cipher, error) {
	c := &Cipher{}
	if err := c.SetKey(key); err != nil {
		return nil, err
	}
	if err := c.DeriveSettings(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetKey copies key into the cipher and drops any derived settings.
// The caller may reuse or zero key afterwards.
func (c *Cipher) SetKey(key []byte) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", ErrMissingInput)
	}
	if len(key) != KeySize {
		return fmt.Errorf("%w: key has %d bytes, want %d", ErrInvalidLength, len(key), KeySize)
	}

	copy(c.key[:], key)
	c.settings = Settings{}
	c.net = nil
	if isZero(c.key[:]) {
		c.state = StateUninitialized
	} else {
		c.state = StateKeyAssigned
	}
	return nil
}

// Key returns a copy of the current key.
func (c *Cipher) Key() [KeySize]byte {
	return c.key
}

// State reports the lifecycle stage of the cipher.
func (c *Cipher) State() State {
	return c.state
}

// DeriveSettings derives the network parameters from the current key.
// It returns ErrKeyNotSet if no key was assigned.
func (c *Cipher) DeriveSettings() error {
	s, err := DeriveSettings(&c.key)
	if err != nil {
		return err
	}
	c.settings = s
	c.net = compile(s)
	c.state = StateReady
	return nil
}

// Settings returns the derived settings, or ErrNotReady.
func (c *Cipher) Settings() (Settings, error) {
	if c.state != StateReady {
		return Settings{}, fmt.Errorf("%w: state is %s", ErrNotReady, c.state)
	}
	return c.settings, nil
}

// Encrypt transforms data in place and returns it. The block must hold
// 1 to BlockSize bytes.
func (c *Cipher) Encrypt(data []byte) ([]byte, error) {
	if err := c.check(data); err != nil {
		return nil, err
	}
	c.net.encrypt(&c.key, data)
	return data, nil
}

// Decrypt reverses Encrypt in place and returns data.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	if err := c.check(data); err != nil {
		return nil, err
	}
	c.net.decrypt(&c.key, data)
	return data, nil
}

// Wipe zeroes the key and settings, returning the cipher to StateUninitialized.
func (c *Cipher) Wipe() {
	clear(c.key[:])
	c.settings = Settings{}
	c.net = nil
	c.state = StateUninitialized
}

func (c *Cipher) check(data []byte) error {
	if data == nil {
		return fmt.Errorf("%w: data is nil", ErrMissingInput)
	}
	if c.state != StateReady {
		return fmt.Errorf("%w: state is %s", ErrNotReady, c.state)
	}
	if len(data) == 0 || len(data) > BlockSize {
		return fmt.Errorf("%w: block has %d bytes, want 1..%d", ErrInvalidLength, len(data), BlockSize)
	}
	return nil
}
