// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultItemRepository persists vault items. Payloads arrive already
// encrypted; the repository never interprets EncryptedData.
type VaultItemRepository interface {
	// CreateItem inserts a new item.
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// GetItem returns the item with id or [ErrNotFound].
	GetItem(ctx context.Context, id string) (models.VaultItem, error)

	// ListItems returns the items matching filter ordered by title.
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.VaultItem, error)

	// ListItemsByIDs returns the items among ids that exist. Missing ids are
	// skipped.
	ListItemsByIDs(ctx context.Context, ids []string) ([]models.VaultItem, error)

	// UpdateItem overwrites the mutable columns of an existing item: title,
	// encrypted data, folder, tags, the trash state and updatedAt.
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// TouchItem stamps lastAccessedAt without changing updatedAt.
	TouchItem(ctx context.Context, id string, at time.Time) error

	// PurgeItem deletes the item and revokes, at the same instant, every
	// active grant and collection link that points at it.
	PurgeItem(ctx context.Context, id string, at time.Time) error
}

// FolderRepository persists folders.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	GetFolder(ctx context.Context, id string) (models.Folder, error)
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)

	// UpdateFolder overwrites the name, parent and updatedAt of a folder.
	UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)

	// DeleteFolder removes the folder and clears the weak references held by
	// its child folders and items.
	DeleteFolder(ctx context.Context, id string, at time.Time) error
}

// ShareRepository persists direct grants. Grants are never deleted.
type ShareRepository interface {
	// CreateShare inserts a grant. A second active grant for the same item
	// and principal is [ErrAlreadyExists].
	CreateShare(ctx context.Context, share models.SharedItem) (models.SharedItem, error)

	GetShare(ctx context.Context, id string) (models.SharedItem, error)

	// ListSharesForItem returns every grant of the item, revoked ones
	// included.
	ListSharesForItem(ctx context.Context, itemID string) ([]models.SharedItem, error)

	// ListActiveShares returns the active grants principalID holds on itemID.
	ListActiveShares(ctx context.Context, itemID, principalID string) ([]models.SharedItem, error)

	// ListSharedWith returns every active grant held by principalID.
	ListSharedWith(ctx context.Context, principalID string) ([]models.SharedItem, error)

	// RevokeShare stamps revokedAt on an active grant. A revoked grant is
	// [ErrAlreadyRevoked]; a missing one is [ErrNotFound].
	RevokeShare(ctx context.Context, id string, at time.Time) error
}

// CollectionLinkRepository persists collection links.
type CollectionLinkRepository interface {
	CreateLink(ctx context.Context, link models.CollectionLink) (models.CollectionLink, error)
	GetLink(ctx context.Context, id string) (models.CollectionLink, error)
	ListLinks(ctx context.Context, ownerID string) ([]models.CollectionLink, error)

	// RevokeLink stamps revokedAt on an active link. A revoked link is
	// [ErrAlreadyRevoked]; a missing one is [ErrNotFound].
	RevokeLink(ctx context.Context, id string, at time.Time) error

	// ConsumeLink atomically increments currentUses of a link that is
	// unrevoked, unexpired at now and below maxUses, then inserts item when
	// it is non-nil. If the increment matches nothing the call returns
	// [ErrLinkNotConsumable] and has no effect. On success it returns the
	// link after the increment.
	ConsumeLink(ctx context.Context, id string, now time.Time, item *models.VaultItem) (models.CollectionLink, error)
}
