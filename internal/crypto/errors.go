// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned when a ciphertext cannot be opened with the
	// given key: wrong key, corrupted blob, or a key rotated without
	// re-encrypting the data. Callers must never treat it as an empty payload.
	ErrDecryption = errors.New("unable to decrypt data")

	// ErrNoDefaultKey is returned when no key is passed and no default key is
	// configured for the requested scope.
	ErrNoDefaultKey = errors.New("no default encryption key configured")

	// ErrEmptyKey is returned when a caller-supplied key has no material.
	ErrEmptyKey = errors.New("encryption key is empty")

	// ErrInvalidPassphraseHash is returned when a stored passphrase hash is not
	// in the expected encoded form.
	ErrInvalidPassphraseHash = errors.New("invalid passphrase hash")
)
