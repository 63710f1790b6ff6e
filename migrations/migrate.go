// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the vault schema for every supported SQL dialect
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names a migration set. The values match the storage driver names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var (
	ErrNilDB          = errors.New("migration error: db is nil")
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
)

// gooseDialects maps a dialect to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[Dialect]struct {
	goose string
	dir   string
}{
	DialectPostgres: {goose: "pgx", dir: "postgres"},
	DialectSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	target, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Files lists the embedded migration files of dialect.
func Files(dialect Dialect) ([]string, error) {
	target, ok := gooseDialects[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	entries, err := embedMigrations.ReadDir(target.dir)
	if err != nil {
		return nil, fmt.Errorf("read %s migrations: %w", dialect, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.Name())
	}
	return files, nil
}
