// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// payloadFields maps every item type to the JSON field names its payload
// accepts. Collection links scope submissions against these names.
var payloadFields = map[ItemType][]string{
	ItemTypeCredential: {"username", "email", "password", "website", "websites", "totp", "notes", "customFields"},
	ItemTypeCard:       {"cardholderName", "cardNumber", "expirationDate", "cvv", "pin", "zip", "notes", "customFields"},
	ItemTypeNote:       {"content"},
	ItemTypeContact:    {"fullName", "email", "phone", "address", "company", "birthday", "notes", "customFields"},
	ItemTypeDocument:   {"filename", "fileUrl", "fileSize", "mimeType", "notes"},
	ItemTypePasskey:    {"credentialId", "deviceName", "publicKey", "relyingParty", "username"},
}

// requiredFields maps every item type to the fields that must be present
// and non-blank for the payload to be valid.
var requiredFields = map[ItemType][]string{
	ItemTypeCredential: {"password"},
	ItemTypeCard:       {"cardholderName", "cardNumber", "expirationDate", "cvv"},
	ItemTypeNote:       {"content"},
	ItemTypeContact:    {"fullName"},
	ItemTypeDocument:   {"filename", "fileUrl", "fileSize", "mimeType"},
	ItemTypePasskey:    {"credentialId", "deviceName", "publicKey"},
}

// PayloadFields returns the field names accepted by the payload of t.
// The returned slice is a copy.
func PayloadFields(t ItemType) []string {
	return append([]string(nil), payloadFields[t]...)
}

// RequiredFields returns the field names required by the payload of t.
// The returned slice is a copy.
func RequiredFields(t ItemType) []string {
	return append([]string(nil), requiredFields[t]...)
}

// IsPayloadField reports whether name is a field of the payload of t.
func IsPayloadField(t ItemType, name string) bool {
	for _, f := range payloadFields[t] {
		if f == name {
			return true
		}
	}
	return false
}
