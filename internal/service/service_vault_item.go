// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultItemService is the concrete implementation of [VaultItemService].
// Payloads are encrypted with the cipher's default key before they reach
// the repository; plaintext payloads are never stored.
type vaultItemService struct {
	items   store.VaultItemRepository
	folders store.FolderRepository
	shares  store.ShareRepository
	access  accessResolver
	cipher  crypto.CipherService
	deps    Deps
}

// NewVaultItemService constructs a [VaultItemService]. Input validation is
// the job of the wrapper returned by [NewVaultItemValidationService].
func NewVaultItemService(deps Deps) VaultItemService {
	return &vaultItemService{
		items:   deps.Storages.Items,
		folders: deps.Storages.Folders,
		shares:  deps.Storages.Shares,
		access:  newAccessResolver(deps.Storages),
		cipher:  deps.Cipher,
		deps:    deps,
	}
}

func (s *vaultItemService) Create(ctx context.Context, actor models.Principal, newItem models.NewItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAuthenticated() {
		return models.VaultItem{}, ErrPermissionDenied
	}

	if newItem.FolderID != nil {
		if err := s.checkFolder(ctx, actor.ID, *newItem.FolderID); err != nil {
			return models.VaultItem{}, err
		}
	}

	payload := models.Deref(newItem.Payload)
	encrypted, err := s.cipher.EncryptPayload(payload, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultItemService.Create").Msg("failed to encrypt payload")
		return models.VaultItem{}, fmt.Errorf("error encrypting payload: %w", err)
	}

	now := s.deps.now()
	item := models.VaultItem{
		ID:            s.deps.IDs.Generate(),
		UserID:        actor.ID,
		ItemType:      payload.ItemType(),
		Title:         strings.TrimSpace(newItem.Title),
		EncryptedData: encrypted,
		FolderID:      newItem.FolderID,
		Tags:          normalizeTags(newItem.Tags),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.items.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemService.Create").Str("item_id", item.ID).Msg("failed to store item")
		return models.VaultItem{}, fmt.Errorf("error storing item: %w", err)
	}

	log.Info().
		Str("func", "vaultItemService.Create").
		Str("item_id", created.ID).
		Stringer("item_type", created.ItemType).
		Msg("vault item created")
	return created, nil
}

func (s *vaultItemService) Get(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionView)
	return item, err
}

func (s *vaultItemService) List(ctx context.Context, actor models.Principal, filter models.ItemFilter) ([]models.VaultItem, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrPermissionDenied
	}

	filter.UserID = actor.ID
	items, err := s.items.ListItems(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultItemService.List").Msg("failed to list items")
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

func (s *vaultItemService) ListShared(ctx context.Context, actor models.Principal) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAuthenticated() {
		return nil, ErrPermissionDenied
	}

	shares, err := s.shares.ListSharedWith(ctx, actor.ID)
	if err != nil {
		log.Err(err).Str("func", "vaultItemService.ListShared").Msg("failed to list grants")
		return nil, fmt.Errorf("error listing grants: %w", err)
	}

	ids := make([]string, 0, len(shares))
	for _, share := range shares {
		if !slices.Contains(ids, share.ItemID) {
			ids = append(ids, share.ItemID)
		}
	}

	items, err := s.items.ListItemsByIDs(ctx, ids)
	if err != nil {
		log.Err(err).Str("func", "vaultItemService.ListShared").Msg("failed to load shared items")
		return nil, fmt.Errorf("error loading shared items: %w", err)
	}

	return slices.DeleteFunc(items, func(item models.VaultItem) bool {
		return item.IsTrashed || item.UserID == actor.ID
	}), nil
}

func (s *vaultItemService) Reveal(ctx context.Context, actor models.Principal, itemID string) (models.RevealedItem, error) {
	log := logger.FromContext(ctx)

	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionReveal)
	if err != nil {
		return models.RevealedItem{}, err
	}

	payload, err := decryptPayload(s.cipher, item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemService.Reveal").Str("item_id", itemID).Msg("failed to decrypt payload")
		return models.RevealedItem{}, err
	}

	now := s.deps.now()
	if err = s.items.TouchItem(ctx, item.ID, now); err != nil {
		log.Err(err).Str("func", "vaultItemService.Reveal").Str("item_id", itemID).Msg("failed to stamp last access")
		return models.RevealedItem{}, fmt.Errorf("error stamping last access: %w", err)
	}
	item.LastAccessedAt = &now

	log.Info().
		Str("func", "vaultItemService.Reveal").
		Str("item_id", itemID).
		Str("principal_id", actor.ID).
		Msg("vault item revealed")
	return models.RevealedItem{Item: item, Payload: payload}, nil
}

func (s *vaultItemService) Update(ctx context.Context, actor models.Principal, itemID string, update models.ItemUpdate) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionEdit)
	if err != nil {
		return models.VaultItem{}, err
	}
	if item.IsTrashed {
		return models.VaultItem{}, ErrItemTrashed
	}

	if update.Title != nil {
		item.Title = strings.TrimSpace(*update.Title)
	}
	if update.Payload != nil {
		payload := models.Deref(update.Payload)
		if payload.ItemType() != item.ItemType {
			return models.VaultItem{}, validators.NewFieldError(validators.FieldPayload, fmt.Sprintf("must be a %s payload", item.ItemType))
		}
		if item.EncryptedData, err = s.cipher.EncryptPayload(payload, nil); err != nil {
			log.Err(err).Str("func", "vaultItemService.Update").Str("item_id", itemID).Msg("failed to encrypt payload")
			return models.VaultItem{}, fmt.Errorf("error encrypting payload: %w", err)
		}
	}
	switch {
	case update.ClearFolder:
		item.FolderID = nil
	case update.FolderID != nil:
		if err = s.checkFolder(ctx, item.UserID, *update.FolderID); err != nil {
			return models.VaultItem{}, err
		}
		item.FolderID = update.FolderID
	}
	if update.Tags != nil {
		item.Tags = normalizeTags(*update.Tags)
	}
	item.UpdatedAt = s.deps.now()

	return s.save(ctx, "vaultItemService.Update", item)
}

func (s *vaultItemService) Trash(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionOwner)
	if err != nil {
		return models.VaultItem{}, err
	}
	if item.IsTrashed {
		return models.VaultItem{}, ErrItemTrashed
	}

	now := s.deps.now()
	item.IsTrashed = true
	item.TrashedAt = &now
	item.UpdatedAt = now

	return s.save(ctx, "vaultItemService.Trash", item)
}

func (s *vaultItemService) Restore(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionOwner)
	if err != nil {
		return models.VaultItem{}, err
	}
	if !item.IsTrashed {
		return models.VaultItem{}, ErrItemNotTrashed
	}

	item.IsTrashed = false
	item.TrashedAt = nil
	item.UpdatedAt = s.deps.now()

	return s.save(ctx, "vaultItemService.Restore", item)
}

func (s *vaultItemService) Purge(ctx context.Context, actor models.Principal, itemID string) error {
	log := logger.FromContext(ctx)

	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionOwner)
	if err != nil {
		return err
	}
	// a granted owner level does not extend to purging
	if item.UserID != actor.ID {
		return ErrPermissionDenied
	}
	if !item.IsTrashed {
		return ErrItemNotTrashed
	}

	if err = s.items.PurgeItem(ctx, itemID, s.deps.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		log.Err(err).Str("func", "vaultItemService.Purge").Str("item_id", itemID).Msg("failed to purge item")
		return fmt.Errorf("error purging item: %w", err)
	}

	log.Info().Str("func", "vaultItemService.Purge").Str("item_id", itemID).Msg("vault item purged")
	return nil
}

func (s *vaultItemService) save(ctx context.Context, fn string, item models.VaultItem) (models.VaultItem, error) {
	updated, err := s.items.UpdateItem(ctx, item)
	if errors.Is(err, store.ErrNotFound) {
		return models.VaultItem{}, ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("item_id", item.ID).Msg("failed to update item")
		return models.VaultItem{}, fmt.Errorf("error updating item: %w", err)
	}
	return updated, nil
}

// checkFolder verifies that folderID exists and belongs to ownerID.
func (s *vaultItemService) checkFolder(ctx context.Context, ownerID, folderID string) error {
	folder, err := s.folders.GetFolder(ctx, folderID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && folder.UserID != ownerID) {
		return ErrFolderNotFound
	}
	if err != nil {
		return fmt.Errorf("error loading folder: %w", err)
	}
	return nil
}

// decryptPayload opens the payload of item into its typed variant. Failures
// keep wrapping [crypto.ErrDecryption].
func decryptPayload(cipher crypto.CipherService, item models.VaultItem) (models.Payload, error) {
	target, err := models.NewPayload(item.ItemType)
	if err != nil {
		return nil, err
	}
	if err = cipher.DecryptPayload(item.EncryptedData, nil, target); err != nil {
		return nil, fmt.Errorf("error decrypting item %s: %w", item.ID, err)
	}
	return models.Deref(target), nil
}

// normalizeTags trims, drops empty values, deduplicates and sorts.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" && !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return out
}
