// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type shareService struct {
	shares    store.ShareRepository
	access    accessResolver
	validator validators.Validator
	deps      Deps
}

func NewShareService(deps Deps) ShareService {
	return &shareService{
		shares:    deps.Storages.Shares,
		access:    newAccessResolver(deps.Storages),
		validator: deps.Validator,
		deps:      deps,
	}
}

func (s *shareService) Grant(ctx context.Context, actor models.Principal, itemID, sharedWithID string, permission models.Permission) (models.SharedItem, error) {
	log := logger.FromContext(ctx)

	share := models.SharedItem{
		ItemID:       itemID,
		OwnerID:      actor.ID,
		SharedWithID: sharedWithID,
		Permission:   permission,
	}
	if err := s.validator.Validate(ctx, share); err != nil {
		return models.SharedItem{}, err
	}

	item, _, err := s.access.require(ctx, actor, itemID, models.PermissionOwner)
	if err != nil {
		return models.SharedItem{}, err
	}
	if item.IsTrashed {
		return models.SharedItem{}, ErrItemTrashed
	}
	if sharedWithID == item.UserID || sharedWithID == actor.ID {
		return models.SharedItem{}, ErrInvalidShareTarget
	}

	share.ID = s.deps.IDs.Generate()
	share.CreatedAt = s.deps.now()

	created, err := s.shares.CreateShare(ctx, share)
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.SharedItem{}, ErrShareExists
	}
	if err != nil {
		log.Err(err).Str("func", "shareService.Grant").Str("item_id", itemID).Msg("failed to store share")
		return models.SharedItem{}, fmt.Errorf("error storing share: %w", err)
	}

	log.Info().
		Str("func", "shareService.Grant").
		Str("share_id", created.ID).
		Str("item_id", itemID).
		Str("shared_with_id", sharedWithID).
		Stringer("permission", permission).
		Msg("share granted")
	return created, nil
}

func (s *shareService) Revoke(ctx context.Context, actor models.Principal, shareID string) error {
	log := logger.FromContext(ctx)

	share, err := s.shares.GetShare(ctx, shareID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrShareNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "shareService.Revoke").Str("share_id", shareID).Msg("failed to load share")
		return fmt.Errorf("error loading share: %w", err)
	}

	if _, _, err = s.access.require(ctx, actor, share.ItemID, models.PermissionOwner); err != nil {
		return err
	}
	if !share.IsActive() {
		return ErrShareRevoked
	}

	err = s.shares.RevokeShare(ctx, shareID, s.deps.now())
	if errors.Is(err, store.ErrAlreadyRevoked) {
		return ErrShareRevoked
	}
	if err != nil {
		log.Err(err).Str("func", "shareService.Revoke").Str("share_id", shareID).Msg("failed to revoke share")
		return fmt.Errorf("error revoking share: %w", err)
	}

	log.Info().Str("func", "shareService.Revoke").Str("share_id", shareID).Msg("share revoked")
	return nil
}

func (s *shareService) ListForItem(ctx context.Context, actor models.Principal, itemID string) ([]models.SharedItem, error) {
	if _, _, err := s.access.require(ctx, actor, itemID, models.PermissionOwner); err != nil {
		return nil, err
	}

	shares, err := s.shares.ListSharesForItem(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "shareService.ListForItem").Str("item_id", itemID).Msg("failed to list shares")
		return nil, fmt.Errorf("error listing shares: %w", err)
	}
	return shares, nil
}

func (s *shareService) Authorize(ctx context.Context, actor models.Principal, itemID string, required models.Permission) (models.Permission, error) {
	_, level, err := s.access.require(ctx, actor, itemID, required)
	if err != nil {
		return models.PermissionNone, err
	}
	return level, nil
}
