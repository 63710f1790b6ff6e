// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipheredData is an opaque, encrypted payload. The persistence layer never
// interprets its content.
type CipheredData string

// ItemType is the discriminator of the closed set of vault item payloads.
// The value fixes which payload variant may be decoded from
// [VaultItem.EncryptedData].
type ItemType string

const (
	// ItemTypeCredential holds login credentials (see [CredentialPayload]).
	ItemTypeCredential ItemType = "credential"

	// ItemTypeCard holds payment card data (see [CardPayload]).
	ItemTypeCard ItemType = "card"

	// ItemTypeNote holds a secure free-form note (see [NotePayload]).
	ItemTypeNote ItemType = "note"

	// ItemTypeContact holds personal contact details (see [ContactPayload]).
	ItemTypeContact ItemType = "contact"

	// ItemTypeDocument holds a reference to a stored file (see [DocumentPayload]).
	ItemTypeDocument ItemType = "document"

	// ItemTypePasskey holds a WebAuthn passkey reference (see [PasskeyPayload]).
	ItemTypePasskey ItemType = "passkey"
)

// ItemTypes lists every supported item type.
var ItemTypes = []ItemType{
	ItemTypeCredential,
	ItemTypeCard,
	ItemTypeNote,
	ItemTypeContact,
	ItemTypeDocument,
	ItemTypePasskey,
}

// IsValid reports whether t is one of [ItemTypes].
func (t ItemType) IsValid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (t ItemType) String() string {
	return string(t)
}

// VaultItem is a single stored secret record. Only Title, tags and the
// lifecycle fields are kept in plaintext; the typed payload lives in
// EncryptedData and is never persisted decrypted.
type VaultItem struct {
	// ID is the unique identifier of the item.
	ID string `json:"id"`

	// UserID is the exclusive owner of the item.
	UserID string `json:"user_id"`

	// ItemType selects the payload variant stored in EncryptedData.
	ItemType ItemType `json:"item_type"`

	// Title is the plaintext, searchable display name.
	Title string `json:"title"`

	// EncryptedData is the ciphertext of the typed payload.
	EncryptedData CipheredData `json:"encrypted_data"`

	// FolderID is a weak reference to a [Folder].
	FolderID *string `json:"folder_id,omitempty"`

	// Tags is a normalized set of labels.
	Tags []string `json:"tags,omitempty"`

	// IsTrashed marks a soft-deleted item. TrashedAt is set together with it.
	IsTrashed bool       `json:"is_trashed"`
	TrashedAt *time.Time `json:"trashed_at,omitempty"`

	// SourceLinkID is set only when the item was created by a
	// [CollectionLink] submission.
	SourceLinkID *string `json:"source_link_id,omitempty"`

	// SubmitterID identifies the external contributor of a link submission.
	// It is distinct from UserID, which always names the link owner.
	SubmitterID *string `json:"submitter_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// LastAccessedAt is updated only when the secret payload is revealed,
	// never on metadata reads.
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
}

// TableName returns the name of the database table associated with
// the VaultItem model.
func (VaultItem) TableName() string {
	return "vault_items"
}

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	UserID         string
	FolderID       *string
	ItemType       ItemType
	Tag            string
	Query          string
	SourceLinkID   *string
	IncludeTrashed bool
	OnlyTrashed    bool
}

// NewItem carries the owner-supplied data for a new vault item.
type NewItem struct {
	Title    string
	Payload  Payload
	FolderID *string
	Tags     []string
}

// ItemUpdate is a partial update of a vault item. Nil fields are left as is.
// The item type cannot change, so a new Payload must be of the same variant.
type ItemUpdate struct {
	Title    *string
	Payload  Payload
	FolderID *string
	// ClearFolder detaches the item from its folder.
	ClearFolder bool
	Tags        *[]string
}

// RevealedItem is an item together with its decrypted payload. It is
// produced only by a reveal and must never be persisted.
type RevealedItem struct {
	Item    VaultItem `json:"item"`
	Payload Payload   `json:"payload"`
}
