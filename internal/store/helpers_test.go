// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newMockDB returns a PostgreSQL-flavoured *DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

func ptr[T any](v T) *T { return &v }

func sampleItem() models.VaultItem {
	return models.VaultItem{
		ID:            "item-1",
		UserID:        "owner-1",
		ItemType:      models.ItemTypeCredential,
		Title:         "GitHub",
		EncryptedData: "ciphertext",
		Tags:          []string{"dev", "work"},
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
}

func itemRowValues(item models.VaultItem) []driver.Value {
	tags, _ := encodeStrings(item.Tags)
	nullable := func(p *string) driver.Value {
		if p == nil {
			return nil
		}
		return *p
	}
	nullableTime := func(p *time.Time) driver.Value {
		if p == nil {
			return nil
		}
		return *p
	}

	return []driver.Value{
		item.ID, item.UserID, string(item.ItemType), item.Title, string(item.EncryptedData),
		nullable(item.FolderID), tags, item.IsTrashed, nullableTime(item.TrashedAt),
		nullable(item.SourceLinkID), nullable(item.SubmitterID),
		item.CreatedAt, item.UpdatedAt, nullableTime(item.LastAccessedAt),
	}
}

func itemRows(items ...models.VaultItem) *sqlmock.Rows {
	rows := sqlmock.NewRows(itemColumns)
	for _, item := range items {
		rows.AddRow(itemRowValues(item)...)
	}
	return rows
}

func sampleLink() models.CollectionLink {
	return models.CollectionLink{
		ID:            "link-1",
		OwnerID:       "owner-1",
		LinkType:      models.LinkTypeOneTime,
		ItemType:      models.ItemTypeCredential,
		AllowedFields: []string{"username", "password"},
		ExpiresAt:     testNow.Add(time.Hour),
		MaxUses:       ptr(1),
		CreatedAt:     testNow,
	}
}

func linkRows(links ...models.CollectionLink) *sqlmock.Rows {
	rows := sqlmock.NewRows(linkColumns)
	for _, l := range links {
		allowed, _ := encodeStrings(l.AllowedFields)
		var itemID, maxUses, hash, revokedAt driver.Value
		if l.ItemID != nil {
			itemID = *l.ItemID
		}
		if l.MaxUses != nil {
			maxUses = int64(*l.MaxUses)
		}
		if l.PassphraseHash != nil {
			hash = *l.PassphraseHash
		}
		if l.RevokedAt != nil {
			revokedAt = *l.RevokedAt
		}
		rows.AddRow(
			l.ID, l.OwnerID, itemID, string(l.LinkType), string(l.ItemType), allowed,
			l.ExpiresAt, maxUses, int64(l.CurrentUses), hash, l.RequiresAuth,
			l.WebsiteURL, l.SiteName, l.SiteTagline, l.CustomFaviconURL,
			l.CreatedAt, revokedAt,
		)
	}
	return rows
}
