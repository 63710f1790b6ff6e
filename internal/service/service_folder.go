// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// maxFolderDepth bounds the ancestor walk of the cycle check.
const maxFolderDepth = 64

type folderService struct {
	folders   store.FolderRepository
	validator validators.Validator
	deps      Deps

	// moves serializes Move so that the ancestor walk and the parent update
	// of one move are not interleaved with another's.
	moves sync.Mutex
}

func NewFolderService(deps Deps) FolderService {
	return &folderService{
		folders:   deps.Storages.Folders,
		validator: deps.Validator,
		deps:      deps,
	}
}

func (s *folderService) Create(ctx context.Context, actor models.Principal, name string, parentID *string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAuthenticated() {
		return models.Folder{}, ErrPermissionDenied
	}

	now := s.deps.now()
	folder := models.Folder{
		ID:        s.deps.IDs.Generate(),
		UserID:    actor.ID,
		Name:      strings.TrimSpace(name),
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.validator.Validate(ctx, folder); err != nil {
		return models.Folder{}, err
	}
	if err := s.checkParent(ctx, folder); err != nil {
		return models.Folder{}, err
	}

	created, err := s.folders.CreateFolder(ctx, folder)
	if err != nil {
		log.Err(err).Str("func", "folderService.Create").Msg("failed to store folder")
		return models.Folder{}, fmt.Errorf("error storing folder: %w", err)
	}

	log.Info().Str("func", "folderService.Create").Str("folder_id", created.ID).Msg("folder created")
	return created, nil
}

func (s *folderService) Rename(ctx context.Context, actor models.Principal, folderID, name string) (models.Folder, error) {
	folder, err := s.owned(ctx, actor, folderID)
	if err != nil {
		return models.Folder{}, err
	}

	folder.Name = strings.TrimSpace(name)
	if err = s.validator.Validate(ctx, folder, validators.FieldName); err != nil {
		return models.Folder{}, err
	}
	folder.UpdatedAt = s.deps.now()

	return s.save(ctx, "folderService.Rename", folder)
}

func (s *folderService) Move(ctx context.Context, actor models.Principal, folderID string, parentID *string) (models.Folder, error) {
	s.moves.Lock()
	defer s.moves.Unlock()

	folder, err := s.owned(ctx, actor, folderID)
	if err != nil {
		return models.Folder{}, err
	}

	folder.ParentID = parentID
	if err = s.validator.Validate(ctx, folder, validators.FieldParentID); err != nil {
		return models.Folder{}, err
	}
	if err = s.checkParent(ctx, folder); err != nil {
		return models.Folder{}, err
	}
	folder.UpdatedAt = s.deps.now()

	return s.save(ctx, "folderService.Move", folder)
}

func (s *folderService) List(ctx context.Context, actor models.Principal) ([]models.Folder, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrPermissionDenied
	}

	folders, err := s.folders.ListFolders(ctx, actor.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "folderService.List").Msg("failed to list folders")
		return nil, fmt.Errorf("error listing folders: %w", err)
	}
	return folders, nil
}

func (s *folderService) Delete(ctx context.Context, actor models.Principal, folderID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.owned(ctx, actor, folderID); err != nil {
		return err
	}

	err := s.folders.DeleteFolder(ctx, folderID, s.deps.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "folderService.Delete").Str("folder_id", folderID).Msg("failed to delete folder")
		return fmt.Errorf("error deleting folder: %w", err)
	}

	log.Info().Str("func", "folderService.Delete").Str("folder_id", folderID).Msg("folder deleted")
	return nil
}

// owned loads folderID and hides folders of other principals behind
// [ErrFolderNotFound].
func (s *folderService) owned(ctx context.Context, actor models.Principal, folderID string) (models.Folder, error) {
	if !actor.IsAuthenticated() {
		return models.Folder{}, ErrPermissionDenied
	}

	folder, err := s.folders.GetFolder(ctx, folderID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && folder.UserID != actor.ID) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		return models.Folder{}, fmt.Errorf("error loading folder: %w", err)
	}
	return folder, nil
}

// checkParent walks the ancestors of folder's new parent. The parent must
// belong to the same owner and folder must not appear among them.
func (s *folderService) checkParent(ctx context.Context, folder models.Folder) error {
	next := folder.ParentID
	for depth := 0; next != nil; depth++ {
		if depth >= maxFolderDepth || *next == folder.ID {
			logger.FromContext(ctx).Info().
				Str("func", "folderService.checkParent").
				Str("folder_id", folder.ID).
				Msg("folder cycle rejected")
			return ErrFolderCycle
		}

		ancestor, err := s.folders.GetFolder(ctx, *next)
		if errors.Is(err, store.ErrNotFound) || (err == nil && ancestor.UserID != folder.UserID) {
			if depth == 0 {
				return ErrFolderNotFound
			}
			// a dangling weak reference further up ends the chain
			return nil
		}
		if err != nil {
			return fmt.Errorf("error loading folder: %w", err)
		}
		next = ancestor.ParentID
	}
	return nil
}

func (s *folderService) save(ctx context.Context, fn string, folder models.Folder) (models.Folder, error) {
	updated, err := s.folders.UpdateFolder(ctx, folder)
	if errors.Is(err, store.ErrNotFound) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("folder_id", folder.ID).Msg("failed to update folder")
		return models.Folder{}, fmt.Errorf("error updating folder: %w", err)
	}
	return updated, nil
}
