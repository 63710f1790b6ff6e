// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "4111111111111111", want: "•••• •••• •••• 1111"},
		{in: "4111 1111 1111 4242", want: "•••• •••• •••• 4242"},
		{in: "4111-1111-1111-0005", want: "•••• •••• •••• 0005"},
		{in: "1234", want: "•••• •••• •••• 1234"},
		{in: "123", want: GenericCardMask},
		{in: "", want: GenericCardMask},
		{in: "1 2-3", want: GenericCardMask},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCardNumber(tt.in))
		})
	}
}

func TestMaskPassword_FixedRegardlessOfInput(t *testing.T) {
	for _, in := range []string{"", "a", "hunter2", "a very long passphrase with many words in it"} {
		assert.Equal(t, PasswordMask, MaskPassword(in))
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "ab@example.com", want: "a•••b@example.com"},
		{in: "alice@example.com", want: "a•••e@example.com"},
		{in: "a@example.com", want: "a•••@example.com"},
		{in: "al+tag@sub.example.org", want: "a•••g@sub.example.org"},
		{in: "no-at-sign", want: GenericEmailMask},
		{in: "@example.com", want: GenericEmailMask},
		{in: "alice@", want: GenericEmailMask},
		{in: "", want: GenericEmailMask},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}

func TestMaskEmail_DoesNotRevealLocalLength(t *testing.T) {
	assert.Equal(t,
		len(MaskEmail("ab@example.com")),
		len(MaskEmail("abcdefghijklmnop@example.com")),
	)
}
