// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultItemValidationService validates input before it reaches the wrapped
// service, so an invalid payload is never encrypted or stored.
type VaultItemValidationService struct {
	inner     VaultItemService
	validator validators.Validator
}

func NewVaultItemValidationService(validator validators.Validator) VaultItemServiceWrapper {
	return &VaultItemValidationService{validator: validator}
}

func (v *VaultItemValidationService) Create(ctx context.Context, actor models.Principal, item models.NewItem) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "VaultItemValidationService.Create").Msg("invalid item")
		return models.VaultItem{}, fmt.Errorf("error during item validation before saving: %w", err)
	}
	return v.inner.Create(ctx, actor, item)
}

func (v *VaultItemValidationService) Get(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	return v.inner.Get(ctx, actor, itemID)
}

func (v *VaultItemValidationService) List(ctx context.Context, actor models.Principal, filter models.ItemFilter) ([]models.VaultItem, error) {
	if filter.ItemType != "" && !filter.ItemType.IsValid() {
		return nil, validators.NewFieldError(validators.FieldItemType, "is not a supported item type")
	}
	return v.inner.List(ctx, actor, filter)
}

func (v *VaultItemValidationService) ListShared(ctx context.Context, actor models.Principal) ([]models.VaultItem, error) {
	return v.inner.ListShared(ctx, actor)
}

func (v *VaultItemValidationService) Reveal(ctx context.Context, actor models.Principal, itemID string) (models.RevealedItem, error) {
	return v.inner.Reveal(ctx, actor, itemID)
}

func (v *VaultItemValidationService) Update(ctx context.Context, actor models.Principal, itemID string, update models.ItemUpdate) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "VaultItemValidationService.Update").Msg("invalid update")
		return models.VaultItem{}, fmt.Errorf("error during item validation before updating: %w", err)
	}
	return v.inner.Update(ctx, actor, itemID, update)
}

func (v *VaultItemValidationService) Trash(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	return v.inner.Trash(ctx, actor, itemID)
}

func (v *VaultItemValidationService) Restore(ctx context.Context, actor models.Principal, itemID string) (models.VaultItem, error) {
	return v.inner.Restore(ctx, actor, itemID)
}

func (v *VaultItemValidationService) Purge(ctx context.Context, actor models.Principal, itemID string) error {
	return v.inner.Purge(ctx, actor, itemID)
}

func (v *VaultItemValidationService) Wrap(wrapped VaultItemService) VaultItemService {
	v.inner = wrapped
	return v
}
