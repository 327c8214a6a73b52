// Package convcrypto encrypts chat message bodies between exactly two
// participants without any key exchange or server-side key storage.
//
// The conversation key is a pure function of the two participant IDs:
// the sorted pair is encoded, hashed with SHA-256 and stretched with
// PBKDF2-HMAC-SHA256 (100 000 iterations, fixed salt) into an AES-256 key.
// Message bodies are sealed with AES-GCM under a random 96-bit nonce and
// stored as base64(nonce ‖ ciphertext ‖ tag) in the field that would
// otherwise hold plaintext.
//
// Typical usage:
//
//	envelope, err := convcrypto.Encrypt("hello", senderID, receiverID)
//	...
//	text, ok := convcrypto.DecryptOrPlaceholder(envelope, receiverID, senderID)
//
// Decrypting many messages of one conversation should go through a Keyring
// so the PBKDF2 work is done once per call rather than once per message.
package convcrypto
