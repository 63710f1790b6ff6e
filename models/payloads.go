// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownItemType is returned when a payload is requested for an item type
// outside [ItemTypes].
var ErrUnknownItemType = errors.New("unknown item type")

// Payload is the decrypted form of [VaultItem.EncryptedData]. The set of
// implementations is closed: only the variants declared in this file satisfy it.
type Payload interface {
	// ItemType returns the discriminator the payload belongs to.
	ItemType() ItemType

	sealed()
}

// CustomField is a user-defined key/value pair attached to a payload.
type CustomField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden,omitempty"`
}

// CredentialPayload represents login credentials.
type CredentialPayload struct {
	Username     string        `json:"username,omitempty"`
	Email        string        `json:"email,omitempty"`
	Password     string        `json:"password"`
	Website      string        `json:"website,omitempty"`
	Websites     []string      `json:"websites,omitempty"`
	TOTP         string        `json:"totp,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CustomFields []CustomField `json:"customFields,omitempty"`
}

// CardPayload represents payment card information. Every field is sensitive.
type CardPayload struct {
	CardholderName string        `json:"cardholderName"`
	CardNumber     string        `json:"cardNumber"`
	ExpirationDate string        `json:"expirationDate"`
	CVV            string        `json:"cvv"`
	PIN            string        `json:"pin,omitempty"`
	Zip            string        `json:"zip,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CustomFields   []CustomField `json:"customFields,omitempty"`
}

// NotePayload represents a secure free-form note.
type NotePayload struct {
	Content string `json:"content"`
}

// ContactPayload represents personal contact details.
type ContactPayload struct {
	FullName     string        `json:"fullName"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Address      string        `json:"address,omitempty"`
	Company      string        `json:"company,omitempty"`
	Birthday     string        `json:"birthday,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CustomFields []CustomField `json:"customFields,omitempty"`
}

// DocumentPayload references a stored file. The file bytes are kept
// elsewhere; only the reference is encrypted here.
type DocumentPayload struct {
	Filename string `json:"filename"`
	FileURL  string `json:"fileUrl"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	Notes    string `json:"notes,omitempty"`
}

// PasskeyPayload references a WebAuthn credential.
type PasskeyPayload struct {
	CredentialID string `json:"credentialId"`
	DeviceName   string `json:"deviceName"`
	PublicKey    string `json:"publicKey"`
	RelyingParty string `json:"relyingParty,omitempty"`
	Username     string `json:"username,omitempty"`
}

func (CredentialPayload) ItemType() ItemType { return ItemTypeCredential }
func (CardPayload) ItemType() ItemType       { return ItemTypeCard }
func (NotePayload) ItemType() ItemType       { return ItemTypeNote }
func (ContactPayload) ItemType() ItemType    { return ItemTypeContact }
func (DocumentPayload) ItemType() ItemType   { return ItemTypeDocument }
func (PasskeyPayload) ItemType() ItemType    { return ItemTypePasskey }

func (CredentialPayload) sealed() {}
func (CardPayload) sealed()       {}
func (NotePayload) sealed()       {}
func (ContactPayload) sealed()    {}
func (DocumentPayload) sealed()   {}
func (PasskeyPayload) sealed()    {}

// NewPayload returns a pointer to a zero payload of the variant selected by t.
func NewPayload(t ItemType) (Payload, error) {
	switch t {
	case ItemTypeCredential:
		return &CredentialPayload{}, nil
	case ItemTypeCard:
		return &CardPayload{}, nil
	case ItemTypeNote:
		return &NotePayload{}, nil
	case ItemTypeContact:
		return &ContactPayload{}, nil
	case ItemTypeDocument:
		return &DocumentPayload{}, nil
	case ItemTypePasskey:
		return &PasskeyPayload{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, t)
	}
}

// DecodePayload unmarshals raw JSON into the variant selected by t and
// returns it by value.
func DecodePayload(t ItemType, raw []byte) (Payload, error) {
	target, err := NewPayload(t)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}

	return Deref(target), nil
}

// Deref returns the value form of a pointer payload so that callers always
// compare and switch on values.
func Deref(p Payload) Payload {
	switch v := p.(type) {
	case *CredentialPayload:
		return *v
	case *CardPayload:
		return *v
	case *NotePayload:
		return *v
	case *ContactPayload:
		return *v
	case *DocumentPayload:
		return *v
	case *PasskeyPayload:
		return *v
	default:
		return p
	}
}
