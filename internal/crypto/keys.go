// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"golang.org/x/crypto/hkdf"
)

// keyInfo is the HKDF info label binding derived keys to vault payloads.
const keyInfo = "go-pass-vault/cipher/v1"

// aesKeyLen is the AES-256 key length in bytes.
const aesKeyLen = 32

// Key is caller-supplied key material of any length. It is stretched to an
// AES-256 key with HKDF-SHA256 before use. A nil Key selects the default key.
type Key []byte

// Scope selects which configured default key a process may use.
type Scope int

const (
	// ScopeServer may use the server-only key and falls back to the public
	// key when the server key is not configured.
	ScopeServer Scope = iota

	// ScopePublic may use only the restricted public key. It is meant for
	// processes that must not hold server secrets.
	ScopePublic
)

// KeyRing holds the default keys resolved from configuration at startup.
// It is immutable after construction.
type KeyRing struct {
	server Key
	public Key
}

// NewKeyRing resolves the default keys from cfg once. Empty values mean the
// key is not configured.
func NewKeyRing(cfg config.Crypto) KeyRing {
	var ring KeyRing
	if cfg.ServerKey != "" {
		ring.server = Key(cfg.ServerKey)
	}
	if cfg.PublicKey != "" {
		ring.public = Key(cfg.PublicKey)
	}
	return ring
}

// Default returns the default key for scope, or [ErrNoDefaultKey] when the
// scope has no key configured.
func (r KeyRing) Default(scope Scope) (Key, error) {
	switch scope {
	case ScopeServer:
		if len(r.server) > 0 {
			return r.server, nil
		}
		if len(r.public) > 0 {
			return r.public, nil
		}
	case ScopePublic:
		if len(r.public) > 0 {
			return r.public, nil
		}
	}
	return nil, fmt.Errorf("%w: scope %d", ErrNoDefaultKey, scope)
}

// deriveKey stretches material into an AES-256 key.
func deriveKey(material Key) ([]byte, error) {
	if len(material) == 0 {
		return nil, ErrEmptyKey
	}

	derived := make([]byte, aesKeyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, material, nil, []byte(keyInfo)), derived); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return derived, nil
}
