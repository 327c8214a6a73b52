package convcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32
	// Iterations is the PBKDF2 work factor.
	Iterations = 100_000
)

// salt is fixed so that both participants derive the same key independently.
var salt = []byte("citylifes-secure-messaging")

// randReader is the nonce source; tests replace it to force failures.
var randReader io.Reader = rand.Reader

// envelopeEncoding rejects non-canonical base64 so that every change to an
// envelope string is either a decode error or a different byte string.
var envelopeEncoding = base64.StdEncoding.Strict()

// KeyScheme selects how the two participant IDs are turned into key material.
type KeyScheme int

const (
	// SchemeLengthPrefixed encodes the sorted pair as
	// len(A) ‖ A ‖ len(B) ‖ B with 32-bit big-endian lengths.
	SchemeLengthPrefixed KeyScheme = iota

	// SchemeLegacyJoined joins the sorted pair with "-". Two different pairs
	// can collide under it ("a-b","c" vs "a","b-c"), so it is only accepted
	// for reading messages written by the earlier web client.
	SchemeLegacyJoined
)

func (s KeyScheme) String() string {
	switch s {
	case SchemeLengthPrefixed:
		return "length-prefixed"
	case SchemeLegacyJoined:
		return "legacy-joined"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Key is a derived conversation key. It can only seal and open envelopes;
// the raw key bytes are not reachable from outside the package.
type Key struct {
	scheme KeyScheme
	aead   cipher.AEAD
}

// DeriveKey derives the conversation key for the unordered pair {idA, idB}
// using the length-prefixed scheme. DeriveKey(a, b) and DeriveKey(b, a)
// produce the same key.
func DeriveKey(idA, idB string) (*Key, error) {
	return deriveKey(SchemeLengthPrefixed, idA, idB)
}

func deriveKey(scheme KeyScheme, idA, idB string) (*Key, error) {
	raw, err := deriveRaw(scheme, idA, idB)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}

	return &Key{scheme: scheme, aead: aead}, nil
}

func deriveRaw(scheme KeyScheme, idA, idB string) ([]byte, error) {
	if idA == "" || idB == "" {
		return nil, ErrEmptyParticipant
	}

	material := keyMaterial(scheme, idA, idB)
	digest := sha256.Sum256(material)
	defer common.WipeByteArray(digest[:])

	return pbkdf2.Key(digest[:], salt, Iterations, KeySize, sha256.New), nil
}

func keyMaterial(scheme KeyScheme, idA, idB string) []byte {
	if idB < idA {
		idA, idB = idB, idA
	}

	if scheme == SchemeLegacyJoined {
		return []byte(idA + "-" + idB)
	}

	buf := make([]byte, 0, 8+len(idA)+len(idB))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(idA)))
	buf = append(buf, idA...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(idB)))
	buf = append(buf, idB...)
	return buf
}

// Scheme reports which derivation produced k.
func (k *Key) Scheme() KeyScheme { return k.scheme }

// Seal encrypts plaintext under a fresh random nonce and returns the
// base64 envelope nonce ‖ ciphertext ‖ tag.
func (k *Key) Seal(plaintext string) (string, error) {
	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return "", fmt.Errorf("%w: nonce: %w", ErrEncryptionFailed, err)
	}

	sealed := k.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return envelopeEncoding.EncodeToString(sealed), nil
}

// Open verifies and decrypts an envelope produced by Seal. Every failure is
// reported as ErrDecryptionFailed and no plaintext is returned with it.
func (k *Key) Open(envelope string) (string, error) {
	raw, err := envelopeEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %w", ErrDecryptionFailed, err)
	}
	return k.openRaw(raw)
}

func (k *Key) openRaw(raw []byte) (string, error) {
	if len(raw) < NonceSize+TagSize {
		return "", fmt.Errorf("%w: envelope too short (%d bytes)", ErrDecryptionFailed, len(raw))
	}

	plaintext, err := k.aead.Open(nil, raw[:NonceSize], raw[NonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}
