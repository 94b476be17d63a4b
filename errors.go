package sburger

import "errors"

var (
	// ErrMissingInput is returned when a key or data buffer is nil.
	ErrMissingInput = errors.New("sburger: missing input")

	// ErrInvalidLength is returned when a key is not 32 bytes or a data
	// block is empty or longer than 32 bytes.
	ErrInvalidLength = errors.New("sburger: invalid length")

	// ErrKeyNotSet is returned when settings are derived from the all-zero
	// key, which marks a cipher whose key was never assigned.
	ErrKeyNotSet = errors.New("sburger: key not set")

	// ErrNotReady is returned when a block is transformed before settings
	// were derived for the current key.
	ErrNotReady = errors.New("sburger: settings not derived for current key")

	// ErrKeyNotFound is returned when a key ID is not found in the provider.
	ErrKeyNotFound = errors.New("sburger: key not found")

	// ErrInvalidKeySize is returned when provider key material is not 32 bytes.
	ErrInvalidKeySize = errors.New("sburger: invalid key size, must be 32 bytes")

	// ErrInvalidKeyID is returned when a key ID is empty or invalid.
	ErrInvalidKeyID = errors.New("sburger: invalid key ID")

	// ErrInvalidFormat is returned when sealed data has an invalid format.
	ErrInvalidFormat = errors.New("sburger: invalid sealed data format")

	// ErrInvalidPadding is returned when a padded message is malformed.
	ErrInvalidPadding = errors.New("sburger: invalid padding")

	// ErrDecryptionFailed is returned when opening fails (wrong key, tampered data).
	ErrDecryptionFailed = errors.New("sburger: decryption failed")
)

// IsMissingInput returns true if the error is or wraps ErrMissingInput.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsInvalidLength returns true if the error is or wraps ErrInvalidLength.
func IsInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

// IsKeyNotSet returns true if the error is or wraps ErrKeyNotSet.
func IsKeyNotSet(err error) bool {
	return errors.Is(err, ErrKeyNotSet)
}

// IsNotReady returns true if the error is or wraps ErrNotReady.
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// IsKeyNotFound returns true if the error is or wraps ErrKeyNotFound.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsInvalidKeySize returns true if the error is or wraps ErrInvalidKeySize.
func IsInvalidKeySize(err error) bool {
	return errors.Is(err, ErrInvalidKeySize)
}

// IsInvalidKeyID returns true if the error is or wraps ErrInvalidKeyID.
func IsInvalidKeyID(err error) bool {
	return errors.Is(err, ErrInvalidKeyID)
}

// IsInvalidFormat returns true if the error is or wraps ErrInvalidFormat.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsInvalidPadding returns true if the error is or wraps ErrInvalidPadding.
func IsInvalidPadding(err error) bool {
	return errors.Is(err, ErrInvalidPadding)
}

// IsDecryptionFailed returns true if the error is or wraps ErrDecryptionFailed.
func IsDecryptionFailed(err error) bool {
	return errors.Is(err, ErrDecryptionFailed)
}
