// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// BuildInfo is the body of GET /api/version.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// CreateLinkRequest is the body of POST /api/links. A nil ItemID creates a
// collection link, a set one a disclosure link.
type CreateLinkRequest struct {
	ItemID           *string         `json:"item_id,omitempty"`
	LinkType         models.LinkType `json:"link_type"`
	ItemType         models.ItemType `json:"item_type,omitempty"`
	AllowedFields    []string        `json:"allowed_fields,omitempty"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
	MaxUses          *int            `json:"max_uses,omitempty"`
	Passphrase       string          `json:"passphrase,omitempty"`
	RequiresAuth     bool            `json:"requires_auth,omitempty"`
	WebsiteURL       string          `json:"website_url,omitempty"`
	SiteName         string          `json:"site_name,omitempty"`
	SiteTagline      string          `json:"site_tagline,omitempty"`
	CustomFaviconURL string          `json:"custom_favicon_url,omitempty"`
}

// SubmitRequest is the body of POST /api/public/links/{id}/submit.
type SubmitRequest struct {
	Title      string         `json:"title,omitempty"`
	Fields     map[string]any `json:"fields"`
	Passphrase string         `json:"passphrase,omitempty"`
}

type openRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// errorResponse mirrors the server's error body.
type errorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}
