// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

const consumeLinkSQL = "UPDATE collection_links SET current_uses = current_uses + 1 " +
	"WHERE id = $1 AND revoked_at IS NULL AND expires_at >= $2 AND (max_uses IS NULL OR current_uses < max_uses)"

func TestCollectionLinkRepository_ConsumeLink(t *testing.T) {
	t.Run("increments and inserts the submitted item", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		item := sampleItem()
		item.SourceLinkID = ptr("link-1")
		consumed := sampleLink()
		consumed.CurrentUses = 1

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(consumeLinkSQL)).
			WithArgs("link-1", testNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).
			WithArgs(itemRowValues(item)...).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM collection_links WHERE id = $1")).
			WithArgs("link-1").
			WillReturnRows(linkRows(consumed))
		mock.ExpectCommit()

		link, err := repo.ConsumeLink(testContext(), "link-1", testNow, &item)
		require.NoError(t, err)
		assert.Equal(t, 1, link.CurrentUses)
		assert.Equal(t, []string{"username", "password"}, link.AllowedFields)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("disclosure consumption inserts nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(consumeLinkSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM collection_links")).WillReturnRows(linkRows(sampleLink()))
		mock.ExpectCommit()

		_, err := repo.ConsumeLink(testContext(), "link-1", testNow, nil)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost race has no effect", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		item := sampleItem()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(consumeLinkSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.ConsumeLink(testContext(), "link-1", testNow, &item)
		require.ErrorIs(t, err, ErrLinkNotConsumable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert rolls back the increment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		item := sampleItem()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(consumeLinkSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items")).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.ConsumeLink(testContext(), "link-1", testNow, &item)
		require.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCollectionLinkRepository_RevokeLink(t *testing.T) {
	const revokeSQL = "UPDATE collection_links SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL"

	t.Run("revoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).
			WithArgs(testNow, "link-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.RevokeLink(testContext(), "link-1", testNow))
	})

	t.Run("already revoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		revoked := sampleLink()
		revoked.RevokedAt = ptr(testNow)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM collection_links WHERE id = $1")).WillReturnRows(linkRows(revoked))

		require.ErrorIs(t, repo.RevokeLink(testContext(), "link-1", testNow), ErrAlreadyRevoked)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCollectionLinkRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(revokeSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM collection_links WHERE id = $1")).WillReturnRows(linkRows())

		require.ErrorIs(t, repo.RevokeLink(testContext(), "link-1", testNow), ErrNotFound)
	})
}

func TestCollectionLinkRepository_CreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionLinkRepository(db)

	link := sampleLink()
	link.PassphraseHash = ptr("$argon2id$...")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collection_links")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM collection_links WHERE owner_id = $1 ORDER BY created_at DESC, id")).
		WithArgs("owner-1").
		WillReturnRows(linkRows(link))

	_, err := repo.CreateLink(testContext(), link)
	require.NoError(t, err)

	links, err := repo.ListLinks(testContext(), "owner-1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, link, links[0])
	assert.Equal(t, models.LinkStateActive, links[0].State(testNow))
}
