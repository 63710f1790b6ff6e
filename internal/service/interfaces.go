// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultItemService manages the lifecycle of vault items. Every operation is
// performed on behalf of an explicit principal and checks its effective
// permission on the item before touching storage.
type VaultItemService interface {
	// Create encrypts the payload and stores a new item owned by actor.
	Create(ctx context.Context, actor models.Principal, item models.NewItem) (models.VaultItem, error)

	// Get returns item metadata. It needs view and never decrypts.
	Get(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error)

	// List returns the actor's own items matching filter. filter.UserID is
	// ignored.
	List(ctx context.Context, actor models.Principal, filter models.ItemFilter) ([]models.VaultItem, error)

	// ListShared returns the untrashed items other principals granted actor.
	ListShared(ctx context.Context, actor models.Principal) ([]models.VaultItem, error)

	// Reveal decrypts the payload. It needs reveal and stamps lastAccessedAt.
	Reveal(ctx context.Context, actor models.Principal, itemID string) (models.RevealedItem, error)

	// Update applies a partial update. It needs edit.
	Update(ctx context.Context, actor models.Principal, itemID string, update models.ItemUpdate) (models.VaultItem, error)

	// Trash and Restore move the item in and out of the trash. They need
	// owner.
	Trash(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error)
	Restore(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error)

	// Purge irrecoverably removes a trashed item and revokes every grant and
	// link that points at it. Only the true owner may purge.
	Purge(ctx context.Context, actor models.Principal, itemID string) error
}

// FolderService manages an owner's folder tree.
type FolderService interface {
	Create(ctx context.Context, actor models.Principal, name string, parentID *string) (models.Folder, error)
	Rename(ctx context.Context, actor models.Principal, folderID, name string) (models.Folder, error)

	// Move re-parents a folder. A nil parentID moves it to the root.
	Move(ctx context.Context, actor models.Principal, folderID string, parentID *string) (models.Folder, error)

	List(ctx context.Context, actor models.Principal) ([]models.Folder, error)

	// Delete removes the folder. Child folders move to the root and items
	// lose their folder reference.
	Delete(ctx context.Context, actor models.Principal, folderID string) error
}

// ShareService manages direct grants.
type ShareService interface {
	// Grant gives sharedWithID permission on itemID. The actor needs owner.
	Grant(ctx context.Context, actor models.Principal, itemID, sharedWithID string, permission models.Permission) (models.SharedItem, error)

	// Revoke permanently invalidates a grant. The actor needs owner on the
	// shared item.
	Revoke(ctx context.Context, actor models.Principal, shareID string) error

	// ListForItem returns every grant of the item, revoked ones included.
	ListForItem(ctx context.Context, actor models.Principal, itemID string) ([]models.SharedItem, error)

	// Authorize returns the actor's effective permission on itemID, or
	// [ErrPermissionDenied] when it does not allow required.
	Authorize(ctx context.Context, actor models.Principal, itemID string, required models.Permission) (models.Permission, error)
}

// CollectionLinkService manages collection and disclosure links.
type CollectionLinkService interface {
	Create(ctx context.Context, actor models.Principal, link models.NewCollectionLink) (models.CollectionLink, error)
	Revoke(ctx context.Context, actor models.Principal, linkID string) error
	List(ctx context.Context, actor models.Principal) ([]models.CollectionLink, error)

	// Status is public. It returns the derived state and presentation hints
	// and never exposes secrets.
	Status(ctx context.Context, linkID string) (models.LinkStatus, error)

	// Submit consumes an inbound collection link and stores the submitted
	// item in the link owner's vault.
	Submit(ctx context.Context, actor models.Principal, linkID string, submission models.LinkSubmission) (models.VaultItem, error)

	// Open consumes a disclosure link and returns the allow-listed fields of
	// the linked item.
	Open(ctx context.Context, actor models.Principal, linkID, passphrase string) (models.DisclosedItem, error)
}

// AuthService bridges bearer tokens and principals.
type AuthService interface {
	IssueToken(ctx context.Context, principalID string) (models.Token, error)

	// ResolvePrincipal maps an Authorization header to a principal. An empty
	// header is the anonymous principal.
	ResolvePrincipal(ctx context.Context, authorizationHeader string) (models.Principal, error)
}

// VaultItemServiceWrapper defines middleware composition for VaultItemService.
// Implementations wrap an existing VaultItemService to add behavior such as
// logging or validating.
type VaultItemServiceWrapper interface {
	Wrap(VaultItemService) VaultItemService // returns a decorated VaultItemService applying additional behavior
}
