// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strings"

// Display masks. They are fixed strings so the mask never reveals the length
// of the hidden part. Masking is for display only and must not be applied
// before storage.
const (
	// PasswordMask is returned by [MaskPassword] for every input.
	PasswordMask = "••••••••••••"

	// GenericCardMask is returned by [MaskCardNumber] for inputs with fewer
	// than four characters.
	GenericCardMask = "•••• •••• •••• ••••"

	// GenericEmailMask is returned by [MaskEmail] for inputs without an
	// @-delimited domain.
	GenericEmailMask = "••••••••"

	cardPrefixMask = "•••• •••• •••• "
	emailInterior  = "•••"
)

// MaskCardNumber keeps only the last four characters of a card number.
// Spaces and dashes used as group separators are ignored.
func MaskCardNumber(number string) string {
	digits := []rune(strings.NewReplacer(" ", "", "-", "").Replace(number))
	if len(digits) < 4 {
		return GenericCardMask
	}
	return cardPrefixMask + string(digits[len(digits)-4:])
}

// MaskPassword returns [PasswordMask] regardless of the input.
func MaskPassword(string) string {
	return PasswordMask
}

// MaskEmail keeps the domain and the first and last characters of the local
// part. The interior is replaced by a fixed bullet run.
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return GenericEmailMask
	}

	local := []rune(email[:at])
	domain := email[at+1:]

	var b strings.Builder
	b.WriteRune(local[0])
	b.WriteString(emailInterior)
	if len(local) > 1 {
		b.WriteRune(local[len(local)-1])
	}
	b.WriteByte('@')
	b.WriteString(domain)
	return b.String()
}
