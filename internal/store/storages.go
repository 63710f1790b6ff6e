// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	Items   VaultItemRepository
	Folders FolderRepository
	Shares  ShareRepository
	Links   CollectionLinkRepository

	closer io.Closer
}

// NewStorages opens the backend selected by cfg.Driver. SQL backends are
// migrated before use when migrate is true.
func NewStorages(ctx context.Context, cfg config.Storage, migrate bool, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Str("driver", string(cfg.Driver)).Msg("creating storages")

	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemoryStorages(NewMemoryStore()), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if migrate {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return NewSQLStorages(db), nil
}

// NewSQLStorages wires the SQL repositories over db.
func NewSQLStorages(db *DB) *Storages {
	return &Storages{
		Items:   NewVaultItemRepository(db),
		Folders: NewFolderRepository(db),
		Shares:  NewShareRepository(db),
		Links:   NewCollectionLinkRepository(db),
		closer:  db,
	}
}

// NewMemoryStorages exposes m through every repository interface.
func NewMemoryStorages(m *MemoryStore) *Storages {
	return &Storages{
		Items:   m,
		Folders: m,
		Shares:  m,
		Links:   m,
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
