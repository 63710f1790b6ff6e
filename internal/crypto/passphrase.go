// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the Argon2id tuning parameters of a [PassphraseHasher].
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32, // 256 bits
		SaltLen: 16,
	}
}

// argon2Hasher implements [PassphraseHasher] with Argon2id. Hashes are
// encoded in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// with salt and hash in unpadded standard base64. Verify reads the
// parameters back from the encoded string, so changing the defaults does not
// invalidate stored hashes.
type argon2Hasher struct {
	params Argon2Params
	random io.Reader
}

// NewPassphraseHasher constructs a [PassphraseHasher] with
// [DefaultArgon2Params].
func NewPassphraseHasher() PassphraseHasher {
	return NewPassphraseHasherWithParams(DefaultArgon2Params())
}

// NewPassphraseHasherWithParams constructs a [PassphraseHasher] with the
// given parameters.
func NewPassphraseHasherWithParams(params Argon2Params) PassphraseHasher {
	return &argon2Hasher{
		params: params,
		random: rand.Reader,
	}
}

// Hash implements [PassphraseHasher].
func (h *argon2Hasher) Hash(passphrase string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(passphrase), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PassphraseHasher].
func (h *argon2Hasher) Verify(passphrase, encoded string) (bool, error) {
	params, salt, want, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, ErrInvalidPassphraseHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported version", ErrInvalidPassphraseHash)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidPassphraseHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidPassphraseHash, err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return params, nil, nil, fmt.Errorf("%w: bad hash", ErrInvalidPassphraseHash)
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(hash))
	return params, salt, hash, nil
}
