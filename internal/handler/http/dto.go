// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

type createItemRequest struct {
	ItemType models.ItemType `json:"item_type"`
	Title    string          `json:"title"`
	Payload  json.RawMessage `json:"payload"`
	FolderID *string         `json:"folder_id"`
	Tags     []string        `json:"tags"`
}

func (req createItemRequest) toNewItem() (models.NewItem, error) {
	payload, err := decodePayload(req.ItemType, req.Payload)
	if err != nil {
		return models.NewItem{}, err
	}
	return models.NewItem{
		Title:    req.Title,
		Payload:  payload,
		FolderID: req.FolderID,
		Tags:     req.Tags,
	}, nil
}

// updateItemRequest is a partial update. A "folder_id" of null detaches the
// item from its folder, an absent one leaves it untouched.
type updateItemRequest struct {
	Title    *string         `json:"title"`
	Payload  json.RawMessage `json:"payload"`
	FolderID json.RawMessage `json:"folder_id"`
	Tags     *[]string       `json:"tags"`
}

func (req updateItemRequest) toItemUpdate(itemType models.ItemType) (models.ItemUpdate, error) {
	update := models.ItemUpdate{Title: req.Title, Tags: req.Tags}

	if len(req.Payload) > 0 {
		payload, err := decodePayload(itemType, req.Payload)
		if err != nil {
			return models.ItemUpdate{}, err
		}
		update.Payload = payload
	}

	folderID, present, err := optionalID(req.FolderID)
	if err != nil {
		return models.ItemUpdate{}, err
	}
	if present {
		update.FolderID = folderID
		update.ClearFolder = folderID == nil
	}
	return update, nil
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// updateFolderRequest renames and/or moves a folder. A "parent_id" of null
// moves the folder to the root.
type updateFolderRequest struct {
	Name     *string         `json:"name"`
	ParentID json.RawMessage `json:"parent_id"`
}

type grantRequest struct {
	SharedWithID string `json:"shared_with_id"`
	Permission   string `json:"permission"`
}

type createLinkRequest struct {
	ItemID           *string         `json:"item_id"`
	LinkType         models.LinkType `json:"link_type"`
	ItemType         models.ItemType `json:"item_type"`
	AllowedFields    []string        `json:"allowed_fields"`
	ExpiresAt        *time.Time      `json:"expires_at"`
	MaxUses          *int            `json:"max_uses"`
	Passphrase       string          `json:"passphrase"`
	RequiresAuth     bool            `json:"requires_auth"`
	WebsiteURL       string          `json:"website_url"`
	SiteName         string          `json:"site_name"`
	SiteTagline      string          `json:"site_tagline"`
	CustomFaviconURL string          `json:"custom_favicon_url"`
}

func (req createLinkRequest) toNewLink() models.NewCollectionLink {
	link := models.NewCollectionLink{
		ItemID:           req.ItemID,
		LinkType:         req.LinkType,
		ItemType:         req.ItemType,
		AllowedFields:    req.AllowedFields,
		MaxUses:          req.MaxUses,
		Passphrase:       req.Passphrase,
		RequiresAuth:     req.RequiresAuth,
		WebsiteURL:       req.WebsiteURL,
		SiteName:         req.SiteName,
		SiteTagline:      req.SiteTagline,
		CustomFaviconURL: req.CustomFaviconURL,
	}
	if req.ExpiresAt != nil {
		link.ExpiresAt = *req.ExpiresAt
	}
	return link
}

type submitRequest struct {
	Title      string         `json:"title"`
	Fields     map[string]any `json:"fields"`
	Passphrase string         `json:"passphrase"`
}

type openRequest struct {
	Passphrase string `json:"passphrase"`
}

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func decodePayload(itemType models.ItemType, raw json.RawMessage) (models.Payload, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		// a missing payload is reported by the validator as a field error
		if !itemType.IsValid() {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownItemType, itemType)
		}
		return nil, nil
	}
	payload, err := models.DecodePayload(itemType, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return payload, nil
}

// optionalID distinguishes an absent JSON member from an explicit null.
func optionalID(raw json.RawMessage) (id *string, present bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil, true, nil
	}
	var v string
	if err = json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return &v, true, nil
}
