package convcrypto

import "errors"

var (
	// ErrCryptoUnavailable means the AEAD primitive could not be constructed.
	// Secure messaging cannot work at all in this state.
	ErrCryptoUnavailable = errors.New("secure messaging unavailable")

	// ErrEncryptionFailed is returned when sealing a message fails. The send
	// should be aborted; retrying is safe.
	ErrEncryptionFailed = errors.New("failed to encrypt message")

	// ErrDecryptionFailed covers tampering, corruption, malformed input and
	// key mismatch. Callers render UnavailablePlaceholder instead.
	ErrDecryptionFailed = errors.New("failed to decrypt message")

	// ErrEmptyParticipant is returned when either participant ID is empty.
	ErrEmptyParticipant = errors.New("participant id must not be empty")
)
