// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// collectionLinkRepository is the SQL implementation of
// [CollectionLinkRepository].
type collectionLinkRepository struct {
	*DB
}

// NewCollectionLinkRepository constructs a [CollectionLinkRepository] over db.
func NewCollectionLinkRepository(db *DB) CollectionLinkRepository {
	return &collectionLinkRepository{DB: db}
}

func (r *collectionLinkRepository) CreateLink(ctx context.Context, link models.CollectionLink) (models.CollectionLink, error) {
	log := logger.FromContext(ctx)

	stmt, err := buildInsertLinkQuery(r.builder, link)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkRepository.CreateLink").Msg("failed to build insert query")
		return models.CollectionLink{}, err
	}

	if _, err = execStatement(ctx, r.DB, stmt); err != nil {
		log.Err(err).
			Str("func", "collectionLinkRepository.CreateLink").
			Str("link_id", link.ID).
			Msg("failed to insert collection link")
		return models.CollectionLink{}, err
	}
	return link, nil
}

func (r *collectionLinkRepository) GetLink(ctx context.Context, id string) (models.CollectionLink, error) {
	return r.getLink(ctx, r.DB, id)
}

func (r *collectionLinkRepository) getLink(ctx context.Context, ex execer, id string) (models.CollectionLink, error) {
	stmt := r.builder.Select(linkColumns...).From(linksTable).Where(sq.Eq{"id": id})
	return queryRow(ctx, ex, stmt, scanLink)
}

func (r *collectionLinkRepository) ListLinks(ctx context.Context, ownerID string) ([]models.CollectionLink, error) {
	stmt := r.builder.Select(linkColumns...).
		From(linksTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	links, err := queryRows(ctx, r.DB, stmt, scanLink)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "collectionLinkRepository.ListLinks").
			Str("owner_id", ownerID).
			Msg("failed to list collection links")
		return nil, err
	}
	return links, nil
}

func (r *collectionLinkRepository) RevokeLink(ctx context.Context, id string, at time.Time) error {
	affected, err := execStatement(ctx, r.DB, buildRevokeQuery(r.builder, linksTable, sq.Eq{"id": id}, at))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "collectionLinkRepository.RevokeLink").
			Str("link_id", id).
			Msg("failed to revoke collection link")
		return err
	}
	if affected > 0 {
		return nil
	}

	if _, err = r.GetLink(ctx, id); err != nil {
		return err
	}
	return ErrAlreadyRevoked
}

// ConsumeLink runs the conditional increment and the item insert in one
// transaction. The row lock taken by the UPDATE serializes concurrent
// consumers of the same link; the loser sees zero affected rows.
func (r *collectionLinkRepository) ConsumeLink(ctx context.Context, id string, now time.Time, item *models.VaultItem) (models.CollectionLink, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkRepository.ConsumeLink").Msg("failed to begin transaction")
		return models.CollectionLink{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	affected, err := execStatement(ctx, tx, buildConsumeLinkQuery(r.builder, id, now))
	if err != nil {
		log.Err(err).
			Str("func", "collectionLinkRepository.ConsumeLink").
			Str("link_id", id).
			Bool("retryable", r.retryable(err)).
			Msg("failed to increment link uses")
		return models.CollectionLink{}, err
	}
	if affected == 0 {
		log.Info().
			Str("func", "collectionLinkRepository.ConsumeLink").
			Str("link_id", id).
			Msg("link not consumable")
		return models.CollectionLink{}, ErrLinkNotConsumable
	}

	if item != nil {
		stmt, buildErr := buildInsertItemQuery(r.builder, *item)
		if buildErr != nil {
			return models.CollectionLink{}, buildErr
		}
		if _, err = execStatement(ctx, tx, stmt); err != nil {
			log.Err(err).
				Str("func", "collectionLinkRepository.ConsumeLink").
				Str("link_id", id).
				Msg("failed to insert submitted item")
			return models.CollectionLink{}, err
		}
	}

	link, err := r.getLink(ctx, tx, id)
	if err != nil {
		log.Err(err).Str("func", "collectionLinkRepository.ConsumeLink").Str("link_id", id).Msg("failed to reload link")
		return models.CollectionLink{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "collectionLinkRepository.ConsumeLink").Msg("failed to commit transaction")
		return models.CollectionLink{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "collectionLinkRepository.ConsumeLink").
		Str("link_id", id).
		Int("current_uses", link.CurrentUses).
		Bool("item_created", item != nil).
		Msg("collection link consumed")
	return link, nil
}
