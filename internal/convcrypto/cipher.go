package convcrypto

import (
	"errors"
	"fmt"
)

// UnavailablePlaceholder is shown instead of a message body that cannot be
// decrypted.
const UnavailablePlaceholder = "[Encrypted message - unable to decrypt]"

// Cipher encrypts with the length-prefixed key scheme and decrypts with
// every scheme it has been configured to accept.
type Cipher struct {
	acceptLegacy bool
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithLegacyKeys makes the Cipher fall back to the delimiter-joined key
// scheme when an envelope does not open under the current one.
func WithLegacyKeys() Option {
	return func(c *Cipher) { c.acceptLegacy = true }
}

// New returns a Cipher with the given options applied.
func New(opts ...Option) *Cipher {
	c := &Cipher{}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultCipher = New()

// Encrypt seals plaintext for the conversation between idA and idB.
func Encrypt(plaintext, idA, idB string) (string, error) {
	return defaultCipher.Encrypt(plaintext, idA, idB)
}

// Decrypt opens an envelope for the conversation between idA and idB.
// Argument order does not matter.
func Decrypt(envelope, idA, idB string) (string, error) {
	return defaultCipher.Decrypt(envelope, idA, idB)
}

// DecryptOrPlaceholder is Decrypt for display paths: on any failure it
// returns UnavailablePlaceholder and false.
func DecryptOrPlaceholder(envelope, idA, idB string) (string, bool) {
	return defaultCipher.DecryptOrPlaceholder(envelope, idA, idB)
}

// Encrypt seals plaintext for the conversation between idA and idB.
func (c *Cipher) Encrypt(plaintext, idA, idB string) (string, error) {
	kr, err := c.Keyring(idA, idB)
	if err != nil {
		return "", classify(ErrEncryptionFailed, err)
	}
	return kr.Seal(plaintext)
}

// Decrypt opens an envelope for the conversation between idA and idB.
func (c *Cipher) Decrypt(envelope, idA, idB string) (string, error) {
	kr, err := c.Keyring(idA, idB)
	if err != nil {
		return "", classify(ErrDecryptionFailed, err)
	}
	return kr.Open(envelope)
}

// DecryptOrPlaceholder opens an envelope or returns UnavailablePlaceholder.
func (c *Cipher) DecryptOrPlaceholder(envelope, idA, idB string) (string, bool) {
	text, err := c.Decrypt(envelope, idA, idB)
	if err != nil {
		return UnavailablePlaceholder, false
	}
	return text, true
}

// Keyring derives the current conversation key once and, if legacy keys
// are accepted, the legacy key lazily on first need. A Keyring is not safe
// for concurrent use.
func (c *Cipher) Keyring(idA, idB string) (*Keyring, error) {
	primary, err := DeriveKey(idA, idB)
	if err != nil {
		return nil, err
	}
	return &Keyring{
		idA:          idA,
		idB:          idB,
		primary:      primary,
		acceptLegacy: c.acceptLegacy,
	}, nil
}

// Keyring holds the keys of one conversation.
type Keyring struct {
	idA, idB     string
	primary      *Key
	legacy       *Key
	acceptLegacy bool
}

// Seal encrypts with the current scheme.
func (kr *Keyring) Seal(plaintext string) (string, error) {
	return kr.primary.Seal(plaintext)
}

// Open tries the current key and then, when enabled, the legacy key.
func (kr *Keyring) Open(envelope string) (string, error) {
	raw, err := envelopeEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %w", ErrDecryptionFailed, err)
	}

	text, err := kr.primary.openRaw(raw)
	if err == nil || !kr.acceptLegacy {
		return text, err
	}

	if kr.legacy == nil {
		legacy, lerr := deriveKey(SchemeLegacyJoined, kr.idA, kr.idB)
		if lerr != nil {
			return "", err
		}
		kr.legacy = legacy
	}
	return kr.legacy.openRaw(raw)
}

// OpenOrPlaceholder is Open for display paths.
func (kr *Keyring) OpenOrPlaceholder(envelope string) (string, bool) {
	text, err := kr.Open(envelope)
	if err != nil {
		return UnavailablePlaceholder, false
	}
	return text, true
}

// classify tags a derivation error with the operation's failure class.
// ErrCryptoUnavailable keeps its own class.
func classify(class, err error) error {
	if errors.Is(err, ErrCryptoUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", class, err)
}
