// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldID            = "id"
	FieldUserID        = "userId"
	FieldTitle         = "title"
	FieldItemType      = "itemType"
	FieldPayload       = "payload"
	FieldTags          = "tags"
	FieldFolderID      = "folderId"
	FieldName          = "name"
	FieldParentID      = "parentId"
	FieldLinkType      = "linkType"
	FieldAllowedFields = "allowedFields"
	FieldMaxUses       = "maxUses"
	FieldItemID        = "itemId"
	FieldSharedWithID  = "sharedWithId"
	FieldPermission    = "permission"
	FieldHints         = "hints"
)

const (
	MaxTitleLength      = 256
	MaxFolderNameLength = 128
	MaxTags             = 32
	MaxTagLength        = 64
	MaxHintLength       = 512
)

// VaultValidator validates the inputs of vault items, folders, shares and
// collection links. Payloads are checked against their item type schema.
type VaultValidator struct {
	payloads *PayloadValidator
}

// NewVaultValidator returns a VaultValidator backed by payloads.
func NewVaultValidator(payloads *PayloadValidator) *VaultValidator {
	return &VaultValidator{payloads: payloads}
}

// Payloads returns the schema validator used for item payloads.
func (v *VaultValidator) Payloads() *PayloadValidator {
	return v.payloads
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewItem:
		return v.validateNewItem(ctx, value, fields...)
	case *models.NewItem:
		return v.validateNewItem(ctx, *value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(ctx, value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(ctx, *value, fields...)

	case models.Folder:
		return v.validateFolder(ctx, value, fields...)
	case *models.Folder:
		return v.validateFolder(ctx, *value, fields...)

	case models.NewCollectionLink:
		return v.validateNewLink(ctx, value, fields...)
	case *models.NewCollectionLink:
		return v.validateNewLink(ctx, *value, fields...)

	case models.SharedItem:
		return v.validateShare(ctx, value, fields...)
	case *models.SharedItem:
		return v.validateShare(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateNewItem(ctx context.Context, item models.NewItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPayload, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(item.Title); err != nil {
				return err
			}
		case FieldPayload:
			if item.Payload == nil {
				return NewFieldError(FieldPayload, "is required")
			}
			p := models.Deref(item.Payload)
			if err := v.payloads.ValidatePayload(ctx, p.ItemType(), p); err != nil {
				return err
			}
		case FieldTags:
			if err := validateTags(item.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateItemUpdate(ctx context.Context, update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPayload, FieldTags, FieldFolderID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title == nil {
				continue
			}
			if err := validateTitle(*update.Title); err != nil {
				return err
			}
		case FieldPayload:
			if update.Payload == nil {
				continue
			}
			p := models.Deref(update.Payload)
			if err := v.payloads.ValidatePayload(ctx, p.ItemType(), p); err != nil {
				return err
			}
		case FieldTags:
			if update.Tags == nil {
				continue
			}
			if err := validateTags(*update.Tags); err != nil {
				return err
			}
		case FieldFolderID:
			if update.ClearFolder && update.FolderID != nil {
				return NewFieldError(FieldFolderID, "cannot be set and cleared at once")
			}
			if update.FolderID != nil && strings.TrimSpace(*update.FolderID) == "" {
				return NewFieldError(FieldFolderID, "must not be blank")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateFolder(_ context.Context, folder models.Folder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if folder.UserID == "" {
				return NewFieldError(FieldUserID, "is required")
			}
		case FieldName:
			name := strings.TrimSpace(folder.Name)
			if name == "" {
				return NewFieldError(FieldName, "must not be blank")
			}
			if utf8.RuneCountInString(name) > MaxFolderNameLength {
				return NewFieldError(FieldName, fmt.Sprintf("must be at most %d characters", MaxFolderNameLength))
			}
		case FieldParentID:
			if folder.ParentID == nil {
				continue
			}
			if strings.TrimSpace(*folder.ParentID) == "" {
				return NewFieldError(FieldParentID, "must not be blank")
			}
			if folder.ID != "" && *folder.ParentID == folder.ID {
				return NewFieldError(FieldParentID, "must not reference the folder itself")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateNewLink(_ context.Context, link models.NewCollectionLink, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLinkType, FieldItemType, FieldAllowedFields, FieldMaxUses, FieldItemID, FieldHints}
	}

	for _, f := range fields {
		switch f {
		case FieldLinkType:
			if !link.LinkType.IsValid() {
				return NewFieldError(FieldLinkType, "must be one-time or multi-use")
			}
		case FieldItemType:
			if !link.ItemType.IsValid() {
				return NewFieldError(FieldItemType, "is not a supported item type")
			}
		case FieldAllowedFields:
			// disclosure links may expose a subset; submissions must be able
			// to produce a valid payload
			if err := validateAllowedFields(link.ItemType, link.AllowedFields, link.ItemID == nil); err != nil {
				return err
			}
		case FieldMaxUses:
			if link.MaxUses == nil {
				continue
			}
			if link.LinkType == models.LinkTypeOneTime && *link.MaxUses != 1 {
				return NewFieldError(FieldMaxUses, "must be 1 for a one-time link")
			}
			if *link.MaxUses < 1 {
				return NewFieldError(FieldMaxUses, "must be at least 1")
			}
		case FieldItemID:
			if link.ItemID != nil && strings.TrimSpace(*link.ItemID) == "" {
				return NewFieldError(FieldItemID, "must not be blank")
			}
		case FieldHints:
			hints := []struct{ name, value string }{
				{"websiteUrl", link.WebsiteURL},
				{"siteName", link.SiteName},
				{"siteTagline", link.SiteTagline},
				{"customFaviconUrl", link.CustomFaviconURL},
			}
			for _, hint := range hints {
				if utf8.RuneCountInString(hint.value) > MaxHintLength {
					return NewFieldError(hint.name, fmt.Sprintf("must be at most %d characters", MaxHintLength))
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateShare(_ context.Context, share models.SharedItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldSharedWithID, FieldPermission}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if strings.TrimSpace(share.ItemID) == "" {
				return NewFieldError(FieldItemID, "is required")
			}
		case FieldSharedWithID:
			if strings.TrimSpace(share.SharedWithID) == "" {
				return NewFieldError(FieldSharedWithID, "is required")
			}
		case FieldPermission:
			if !share.Permission.IsValid() {
				return NewFieldError(FieldPermission, "must be view, reveal, edit or owner")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewFieldError(FieldTitle, "must not be blank")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewFieldError(FieldTitle, fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return NewFieldError(FieldTags, fmt.Sprintf("must contain at most %d tags", MaxTags))
	}
	for i, tag := range tags {
		if utf8.RuneCountInString(strings.TrimSpace(tag)) > MaxTagLength {
			return NewFieldError(fmt.Sprintf("%s.%d", FieldTags, i), fmt.Sprintf("must be at most %d characters", MaxTagLength))
		}
	}
	return nil
}

func validateAllowedFields(itemType models.ItemType, allowed []string, requireAll bool) error {
	if len(allowed) == 0 {
		return NewFieldError(FieldAllowedFields, "must not be empty")
	}

	seen := make(map[string]struct{}, len(allowed))
	for i, name := range allowed {
		if !models.IsPayloadField(itemType, name) {
			return NewFieldError(fmt.Sprintf("%s.%d", FieldAllowedFields, i), fmt.Sprintf("%q is not a %s field", name, itemType))
		}
		seen[name] = struct{}{}
	}
	if !requireAll {
		return nil
	}

	for _, required := range models.RequiredFields(itemType) {
		if _, ok := seen[required]; !ok {
			return NewFieldError(FieldAllowedFields, fmt.Sprintf("must include required field %q", required))
		}
	}
	return nil
}
