// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// cipherService is the AES-256-GCM implementation of [CipherService].
type cipherService struct {
	// defaultKey is used when callers pass a nil key. It may be nil, in which
	// case such calls fail with ErrNoDefaultKey.
	defaultKey Key

	// random is the nonce source.
	random io.Reader
}

// NewCipherService constructs a [CipherService] whose default key is
// defaultKey. Pass nil to require every caller to supply a key.
func NewCipherService(defaultKey Key) CipherService {
	return &cipherService{
		defaultKey: defaultKey,
		random:     rand.Reader,
	}
}

// NewScopedCipherService constructs a [CipherService] whose default key is
// resolved from ring for scope. It fails with [ErrNoDefaultKey] when the
// scope has no key configured.
func NewScopedCipherService(ring KeyRing, scope Scope) (CipherService, error) {
	key, err := ring.Default(scope)
	if err != nil {
		return nil, err
	}
	return NewCipherService(key), nil
}

// Encrypt implements [CipherService].
func (c *cipherService) Encrypt(plaintext string, key Key) (models.CipheredData, error) {
	return c.seal([]byte(plaintext), key)
}

// Decrypt implements [CipherService].
func (c *cipherService) Decrypt(ciphertext models.CipheredData, key Key) (string, error) {
	plaintext, err := c.open(ciphertext, key)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptPayload implements [CipherService]. encoding/json emits struct
// fields in declaration order and map keys sorted, so equal values produce
// equal plaintexts.
func (c *cipherService) EncryptPayload(v any, key Key) (models.CipheredData, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return c.seal(plaintext, key)
}

// DecryptPayload implements [CipherService].
func (c *cipherService) DecryptPayload(ciphertext models.CipheredData, key Key, target any) error {
	plaintext, err := c.open(ciphertext, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal payload: %w", ErrDecryption, err)
	}
	return nil
}

func (c *cipherService) resolve(key Key) (Key, error) {
	if key != nil {
		return key, nil
	}
	if c.defaultKey == nil {
		return nil, ErrNoDefaultKey
	}
	return c.defaultKey, nil
}

func (c *cipherService) aead(key Key) (cipher.AEAD, error) {
	material, err := c.resolve(key)
	if err != nil {
		return nil, err
	}

	derived, err := deriveKey(material)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func (c *cipherService) seal(plaintext []byte, key Key) (models.CipheredData, error) {
	gcm, err := c.aead(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = nonce || ciphertext
	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return models.CipheredData(base64.StdEncoding.EncodeToString(blob)), nil
}

func (c *cipherService) open(ciphertext models.CipheredData, key Key) ([]byte, error) {
	gcm, err := c.aead(key)
	if err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(string(ciphertext))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return plaintext, nil
}
