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

// vaultItemRepository is the SQL implementation of [VaultItemRepository].
// Every method obtains a context-scoped logger via [logger.FromContext].
type vaultItemRepository struct {
	*DB
}

// NewVaultItemRepository constructs a [VaultItemRepository] over db.
func NewVaultItemRepository(db *DB) VaultItemRepository {
	return &vaultItemRepository{DB: db}
}

func (r *vaultItemRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	stmt, err := buildInsertItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.CreateItem").Msg("failed to build insert query")
		return models.VaultItem{}, err
	}

	if _, err = execStatement(ctx, r.DB, stmt); err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.CreateItem").
			Str("item_id", item.ID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert vault item")
		return models.VaultItem{}, err
	}

	log.Debug().Str("func", "vaultItemRepository.CreateItem").Str("item_id", item.ID).Msg("vault item inserted")
	return item, nil
}

func (r *vaultItemRepository) GetItem(ctx context.Context, id string) (models.VaultItem, error) {
	item, err := queryRow(ctx, r.DB, buildSelectItemQuery(r.builder, id), scanItem)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "vaultItemRepository.GetItem").
			Str("item_id", id).
			Msg("failed to get vault item")
		return models.VaultItem{}, err
	}
	return item, nil
}

func (r *vaultItemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.VaultItem, error) {
	items, err := queryRows(ctx, r.DB, buildListItemsQuery(r.builder, filter), scanItem)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultItemRepository.ListItems").
			Str("user_id", filter.UserID).
			Msg("failed to list vault items")
		return nil, err
	}

	if filter.Tag == "" {
		return items, nil
	}
	return filterByTag(items, filter.Tag), nil
}

func (r *vaultItemRepository) ListItemsByIDs(ctx context.Context, ids []string) ([]models.VaultItem, error) {
	if len(ids) == 0 {
		return []models.VaultItem{}, nil
	}

	items, err := queryRows(ctx, r.DB, buildListItemsByIDsQuery(r.builder, ids), scanItem)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultItemRepository.ListItemsByIDs").
			Int("ids_count", len(ids)).
			Msg("failed to list vault items by ids")
		return nil, err
	}
	return items, nil
}

func (r *vaultItemRepository) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	stmt, err := buildUpdateItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.UpdateItem").Msg("failed to build update query")
		return models.VaultItem{}, err
	}

	affected, err := execStatement(ctx, r.DB, stmt)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.UpdateItem").
			Str("item_id", item.ID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to update vault item")
		return models.VaultItem{}, err
	}
	if affected == 0 {
		return models.VaultItem{}, ErrNotFound
	}

	return item, nil
}

func (r *vaultItemRepository) TouchItem(ctx context.Context, id string, at time.Time) error {
	stmt := r.builder.Update(itemsTable).Set("last_accessed_at", at).Where(sq.Eq{"id": id})

	affected, err := execStatement(ctx, r.DB, stmt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultItemRepository.TouchItem").
			Str("item_id", id).
			Msg("failed to stamp last access")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeItem deletes the item and revokes its grants and links inside one
// transaction, so no active grant outlives the item.
func (r *vaultItemRepository) PurgeItem(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.PurgeItem").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	affected, err := execStatement(ctx, tx, r.builder.Delete(itemsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.PurgeItem").Str("item_id", id).Msg("failed to delete vault item")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	revokedShares, err := execStatement(ctx, tx, buildRevokeQuery(r.builder, sharesTable, sq.Eq{"item_id": id}, at))
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.PurgeItem").Str("item_id", id).Msg("failed to revoke shares")
		return err
	}

	revokedLinks, err := execStatement(ctx, tx, buildRevokeQuery(r.builder, linksTable, sq.Eq{"item_id": id}, at))
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.PurgeItem").Str("item_id", id).Msg("failed to revoke links")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "vaultItemRepository.PurgeItem").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "vaultItemRepository.PurgeItem").
		Str("item_id", id).
		Int64("revoked_shares", revokedShares).
		Int64("revoked_links", revokedLinks).
		Msg("vault item purged")
	return nil
}

func filterByTag(items []models.VaultItem, tag string) []models.VaultItem {
	filtered := make([]models.VaultItem, 0, len(items))
	for _, item := range items {
		for _, t := range item.Tags {
			if t == tag {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
