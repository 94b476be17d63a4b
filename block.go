package sburger

import "crypto/cipher"

// block adapts a ready Cipher to crypto/cipher.Block.
type block struct {
	c *Cipher
}

// Compile-time interface check.
var _ cipher.Block = (*block)(nil)

// NewBlock returns a cipher.Block over full 32-byte blocks for key.
func NewBlock(key []byte) (cipher.Block, error) {
	b, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newBlock(key []byte) (*block, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	return &block{c: c}, nil
}

func (b *block) BlockSize() int { return BlockSize }

func (b *block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sburger: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sburger: output not full block")
	}
	copy(dst, src[:BlockSize])
	b.c.net.encrypt(&b.c.key, dst[:BlockSize])
}

func (b *block) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("sburger: input not full block")
	}
	if len(dst) < BlockSize {
		panic("sburger: output not full block")
	}
	copy(dst, src[:BlockSize])
	b.c.net.decrypt(&b.c.key, dst[:BlockSize])
}
