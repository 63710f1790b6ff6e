// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client for the vault REST API.
//
// [VaultClient] hides the transport from callers such as the vault CLI.
// Non-2xx answers are mapped by mapHTTPError onto the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrLinkUnavailable] for 410). Link failures additionally carry the public
// reason reported by the server, see [LinkError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultClient talks to a running vault server.
type VaultClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token makes requests anonymous.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// Version returns the server's build information.
	Version(ctx context.Context) (BuildInfo, error)

	// CreateLink creates a collection or disclosure link owned by the
	// token's principal.
	CreateLink(ctx context.Context, req CreateLinkRequest) (models.CollectionLink, error)

	// ListLinks returns the links owned by the token's principal.
	ListLinks(ctx context.Context) ([]models.CollectionLink, error)

	// RevokeLink revokes a link owned by the token's principal.
	RevokeLink(ctx context.Context, id string) error

	// LinkStatus fetches the public, secret-free view of a link.
	LinkStatus(ctx context.Context, id string) (models.LinkStatus, error)

	// Submit contributes a new item through a collection link and returns
	// the id of the stored item.
	Submit(ctx context.Context, linkID string, req SubmitRequest) (string, error)

	// Open reads the allow-listed fields of an item through a disclosure
	// link.
	Open(ctx context.Context, linkID, passphrase string) (models.DisclosedItem, error)
}
