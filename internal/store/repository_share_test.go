// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func sampleShare() models.SharedItem {
	return models.SharedItem{
		ID:           "share-1",
		ItemID:       "item-1",
		OwnerID:      "owner-1",
		SharedWithID: "friend-1",
		Permission:   models.PermissionReveal,
		CreatedAt:    testNow,
	}
}

func shareRows(shares ...models.SharedItem) *sqlmock.Rows {
	rows := sqlmock.NewRows(shareColumns)
	for _, s := range shares {
		var revokedAt any
		if s.RevokedAt != nil {
			revokedAt = *s.RevokedAt
		}
		rows.AddRow(s.ID, s.ItemID, s.OwnerID, s.SharedWithID, int64(s.Permission), s.CreatedAt, revokedAt)
	}
	return rows
}

func TestShareRepository_CreateShare(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewShareRepository(db)
		share := sampleShare()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shared_items")).
			WithArgs(share.ID, share.ItemID, share.OwnerID, share.SharedWithID, int64(share.Permission), share.CreatedAt, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.CreateShare(testContext(), share)
		require.NoError(t, err)
		assert.Equal(t, share, got)
	})

	t.Run("duplicate active grant", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewShareRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shared_items")).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateShare(testContext(), sampleShare())
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestShareRepository_ListActiveShares(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shared_items WHERE item_id = $1 AND revoked_at IS NULL AND shared_with_id = $2")).
		WithArgs("item-1", "friend-1").
		WillReturnRows(shareRows(sampleShare()))

	shares, err := repo.ListActiveShares(testContext(), "item-1", "friend-1")
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, models.PermissionReveal, shares[0].Permission)
}

func TestShareRepository_ListSharesForItem_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewShareRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shared_items WHERE item_id = $1")).
		WillReturnError(assert.AnError)

	_, err := repo.ListSharesForItem(testContext(), "item-1")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestShareRepository_RevokeShare(t *testing.T) {
	const revokeSQL = "UPDATE shared_items SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL"

	t.Run("revoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewShareRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).
			WithArgs(testNow, "share-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.RevokeShare(testContext(), "share-1", testNow))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already revoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewShareRepository(db)

		revoked := sampleShare()
		revoked.RevokedAt = ptr(testNow)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM shared_items WHERE id = $1")).
			WithArgs("share-1").
			WillReturnRows(shareRows(revoked))

		require.ErrorIs(t, repo.RevokeShare(testContext(), "share-1", testNow), ErrAlreadyRevoked)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewShareRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM shared_items WHERE id = $1")).WillReturnRows(shareRows())

		require.ErrorIs(t, repo.RevokeShare(testContext(), "share-1", testNow), ErrNotFound)
	})
}
