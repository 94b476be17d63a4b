// Package sburger implements the sBurger-256 block cipher and an encrypting
// codec for github.com/rbaliyan/config built on it.
//
// A 32-byte key determines a small per-byte network of XOR, inversion,
// rotation and byte-order reversal steps. Cipher transforms one block of 1
// to 32 bytes in place; NewBlock exposes the same cipher as a
// crypto/cipher.Block.
//
// Codec pads values to whole blocks and prefixes a header naming the key ID.
// The header also carries an xxhash checksum of the plaintext, which detects
// a wrong key or corrupted data. It is not a MAC: sBurger-256 provides no
// authentication and no resistance to deliberate tampering.
//
// Keys come from a KeyProvider. StaticKeyProvider keeps them in memguard
// enclaves; the awskms, azurekv, gcpkms and vault modules load keys wrapped
// by external key managers.
package sburger
