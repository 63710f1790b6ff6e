// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast
func testHasher() PassphraseHasher {
	return NewPassphraseHasherWithParams(Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
}

func TestPassphraseHasher_HashAndVerify(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("open sesame")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, encoded, "open sesame")

	ok, err := h.Verify("open sesame", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("open sesame!", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPassphraseHasher_SaltedHashesDiffer(t *testing.T) {
	h := testHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPassphraseHasher_VerifyReadsParamsFromHash(t *testing.T) {
	encoded, err := testHasher().Hash("pw")
	require.NoError(t, err)

	// a hasher with different defaults still verifies older hashes
	other := NewPassphraseHasherWithParams(Argon2Params{Time: 2, Memory: 2048, Threads: 2, KeyLen: 16, SaltLen: 8})
	ok, err := other.Verify("pw", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPassphraseHasher_VerifyMalformed(t *testing.T) {
	h := testHasher()

	for _, encoded := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$!!$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		_, err := h.Verify("pw", encoded)
		assert.ErrorIs(t, err, ErrInvalidPassphraseHash, encoded)
	}
}
