// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// shareRepository is the SQL implementation of [ShareRepository].
type shareRepository struct {
	*DB
}

// NewShareRepository constructs a [ShareRepository] over db.
func NewShareRepository(db *DB) ShareRepository {
	return &shareRepository{DB: db}
}

func (r *shareRepository) CreateShare(ctx context.Context, share models.SharedItem) (models.SharedItem, error) {
	if _, err := execStatement(ctx, r.DB, buildInsertShareQuery(r.builder, share)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.CreateShare").
			Str("item_id", share.ItemID).
			Str("shared_with_id", share.SharedWithID).
			Msg("failed to insert share")
		return models.SharedItem{}, err
	}
	return share, nil
}

func (r *shareRepository) GetShare(ctx context.Context, id string) (models.SharedItem, error) {
	stmt := r.builder.Select(shareColumns...).From(sharesTable).Where(sq.Eq{"id": id})
	return queryRow(ctx, r.DB, stmt, scanShare)
}

func (r *shareRepository) ListSharesForItem(ctx context.Context, itemID string) ([]models.SharedItem, error) {
	stmt := r.builder.Select(shareColumns...).
		From(sharesTable).
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("created_at", "id")
	return r.list(ctx, "shareRepository.ListSharesForItem", stmt)
}

func (r *shareRepository) ListActiveShares(ctx context.Context, itemID, principalID string) ([]models.SharedItem, error) {
	stmt := r.builder.Select(shareColumns...).
		From(sharesTable).
		Where(sq.Eq{"item_id": itemID, "shared_with_id": principalID, "revoked_at": nil})
	return r.list(ctx, "shareRepository.ListActiveShares", stmt)
}

func (r *shareRepository) ListSharedWith(ctx context.Context, principalID string) ([]models.SharedItem, error) {
	stmt := r.builder.Select(shareColumns...).
		From(sharesTable).
		Where(sq.Eq{"shared_with_id": principalID, "revoked_at": nil}).
		OrderBy("created_at", "id")
	return r.list(ctx, "shareRepository.ListSharedWith", stmt)
}

func (r *shareRepository) RevokeShare(ctx context.Context, id string, at time.Time) error {
	affected, err := execStatement(ctx, r.DB, buildRevokeQuery(r.builder, sharesTable, sq.Eq{"id": id}, at))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.RevokeShare").
			Str("share_id", id).
			Msg("failed to revoke share")
		return err
	}
	if affected > 0 {
		return nil
	}

	// nothing matched: tell a missing grant from a revoked one
	if _, err = r.GetShare(ctx, id); err != nil {
		return err
	}
	return ErrAlreadyRevoked
}

func (r *shareRepository) list(ctx context.Context, fn string, stmt sq.SelectBuilder) ([]models.SharedItem, error) {
	shares, err := queryRows(ctx, r.DB, stmt, scanShare)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to list shares")
		return nil, err
	}
	return shares, nil
}
