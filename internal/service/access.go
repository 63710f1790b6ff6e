// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accessResolver computes a principal's effective permission on an item.
type accessResolver struct {
	items  store.VaultItemRepository
	shares store.ShareRepository
}

func newAccessResolver(storages *store.Storages) accessResolver {
	return accessResolver{items: storages.Items, shares: storages.Shares}
}

// level returns the effective permission of actor on item: owner for the
// true owner, otherwise the highest active grant. Grants are suspended
// while the item is in the trash.
func (a accessResolver) level(ctx context.Context, actor models.Principal, item models.VaultItem) (models.Permission, error) {
	if !actor.IsAuthenticated() {
		return models.PermissionNone, nil
	}
	if item.UserID == actor.ID {
		return models.PermissionOwner, nil
	}
	if item.IsTrashed {
		return models.PermissionNone, nil
	}

	shares, err := a.shares.ListActiveShares(ctx, item.ID, actor.ID)
	if err != nil {
		return models.PermissionNone, fmt.Errorf("error listing grants: %w", err)
	}

	best := models.PermissionNone
	for _, s := range shares {
		if s.IsActive() && s.Permission > best {
			best = s.Permission
		}
	}
	return best, nil
}

// require loads itemID and checks that actor holds at least required on it.
func (a accessResolver) require(ctx context.Context, actor models.Principal, itemID string, required models.Permission) (models.VaultItem, models.Permission, error) {
	log := logger.FromContext(ctx)

	item, err := a.items.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return models.VaultItem{}, models.PermissionNone, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accessResolver.require").Str("item_id", itemID).Msg("failed to load item")
		return models.VaultItem{}, models.PermissionNone, fmt.Errorf("error loading item: %w", err)
	}

	level, err := a.level(ctx, actor, item)
	if err != nil {
		log.Err(err).Str("func", "accessResolver.require").Str("item_id", itemID).Msg("failed to resolve permission")
		return models.VaultItem{}, models.PermissionNone, err
	}

	if !level.Allows(required) {
		log.Info().
			Str("func", "accessResolver.require").
			Str("item_id", itemID).
			Str("principal_id", actor.ID).
			Stringer("required", required).
			Stringer("effective", level).
			Msg("permission denied")
		return models.VaultItem{}, level, ErrPermissionDenied
	}
	return item, level, nil
}
