// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-pass-vault/models"

// CipherService encrypts and decrypts vault payloads at rest.
//
// Every method accepts an optional [Key]. A nil key selects the default key
// the service was constructed with; callers that need secrecy across
// principals pass their own key. The ciphertext envelope is
// base64(nonce || AES-256-GCM(ciphertext)).
//
// Implementations are stateless after construction and safe for concurrent
// use.
type CipherService interface {
	// Encrypt seals plaintext with key.
	Encrypt(plaintext string, key Key) (models.CipheredData, error)

	// Decrypt opens ciphertext with key. Any failure wraps [ErrDecryption].
	Decrypt(ciphertext models.CipheredData, key Key) (string, error)

	// EncryptPayload serializes v to canonical JSON and seals the result.
	EncryptPayload(v any, key Key) (models.CipheredData, error)

	// DecryptPayload opens ciphertext and unmarshals the JSON into target,
	// which must be a non-nil pointer. Any failure wraps [ErrDecryption].
	DecryptPayload(ciphertext models.CipheredData, key Key, target any) error
}

// PassphraseHasher hashes link passphrases so that only the hash is stored.
type PassphraseHasher interface {
	// Hash returns a self-describing encoded hash of passphrase.
	Hash(passphrase string) (string, error)

	// Verify reports whether passphrase matches encoded. The comparison runs
	// in constant time. A malformed encoded value wraps
	// [ErrInvalidPassphraseHash].
	Verify(passphrase, encoded string) (bool, error)
}
