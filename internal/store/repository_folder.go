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

// folderRepository is the SQL implementation of [FolderRepository].
type folderRepository struct {
	*DB
}

// NewFolderRepository constructs a [FolderRepository] over db.
func NewFolderRepository(db *DB) FolderRepository {
	return &folderRepository{DB: db}
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if _, err := execStatement(ctx, r.DB, buildInsertFolderQuery(r.builder, folder)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.CreateFolder").
			Str("folder_id", folder.ID).
			Msg("failed to insert folder")
		return models.Folder{}, err
	}
	return folder, nil
}

func (r *folderRepository) GetFolder(ctx context.Context, id string) (models.Folder, error) {
	stmt := r.builder.Select(folderColumns...).From(foldersTable).Where(sq.Eq{"id": id})
	return queryRow(ctx, r.DB, stmt, scanFolder)
}

func (r *folderRepository) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	stmt := r.builder.Select(folderColumns...).
		From(foldersTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id")

	folders, err := queryRows(ctx, r.DB, stmt, scanFolder)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.ListFolders").
			Str("user_id", userID).
			Msg("failed to list folders")
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	stmt := r.builder.Update(foldersTable).
		Set("name", folder.Name).
		Set("parent_id", folder.ParentID).
		Set("updated_at", folder.UpdatedAt).
		Where(sq.Eq{"id": folder.ID})

	affected, err := execStatement(ctx, r.DB, stmt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.UpdateFolder").
			Str("folder_id", folder.ID).
			Msg("failed to update folder")
		return models.Folder{}, err
	}
	if affected == 0 {
		return models.Folder{}, ErrNotFound
	}
	return folder, nil
}

// DeleteFolder detaches child folders and items before removing the folder,
// all in one transaction.
func (r *folderRepository) DeleteFolder(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	detachFolders := r.builder.Update(foldersTable).
		Set("parent_id", nil).
		Set("updated_at", at).
		Where(sq.Eq{"parent_id": id})
	if _, err = execStatement(ctx, tx, detachFolders); err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Str("folder_id", id).Msg("failed to detach child folders")
		return err
	}

	detachItems := r.builder.Update(itemsTable).
		Set("folder_id", nil).
		Set("updated_at", at).
		Where(sq.Eq{"folder_id": id})
	if _, err = execStatement(ctx, tx, detachItems); err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Str("folder_id", id).Msg("failed to detach items")
		return err
	}

	affected, err := execStatement(ctx, tx, r.builder.Delete(foldersTable).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).Str("func", "folderRepository.DeleteFolder").Str("folder_id", id).Msg("failed to delete folder")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "folderRepository.DeleteFolder").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}
	return nil
}
