// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	itemColumns = []string{
		"id", "user_id", "item_type", "title", "encrypted_data", "folder_id", "tags",
		"is_trashed", "trashed_at", "source_link_id", "submitter_id",
		"created_at", "updated_at", "last_accessed_at",
	}

	folderColumns = []string{"id", "user_id", "name", "parent_id", "created_at", "updated_at"}

	shareColumns = []string{"id", "item_id", "owner_id", "shared_with_id", "permission", "created_at", "revoked_at"}

	linkColumns = []string{
		"id", "owner_id", "item_id", "link_type", "item_type", "allowed_fields",
		"expires_at", "max_uses", "current_uses", "passphrase_hash", "requires_auth",
		"website_url", "site_name", "site_tagline", "custom_favicon_url",
		"created_at", "revoked_at",
	}
)

var (
	itemsTable   = models.VaultItem{}.TableName()
	foldersTable = models.Folder{}.TableName()
	sharesTable  = models.SharedItem{}.TableName()
	linksTable   = models.CollectionLink{}.TableName()
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// execStatement builds and executes stmt and returns the number of affected
// rows. Integrity violations are mapped by [constraintError].
func execStatement(ctx context.Context, ex execer, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, constraintError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

// queryRow builds stmt and scans its single row with scan. No row is
// [ErrNotFound].
func queryRow[T any](ctx context.Context, ex execer, stmt sq.Sqlizer, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	query, args, err := stmt.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	v, err := scan(ex.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return v, nil
}

// queryRows builds stmt and scans every row with scan.
func queryRows[T any](ctx context.Context, ex execer, stmt sq.Sqlizer, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)
	for rows.Next() {
		v, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return results, nil
}

// ---------------------------------------------------------------------------
// vault_items
// ---------------------------------------------------------------------------

func buildInsertItemQuery(b sq.StatementBuilderType, item models.VaultItem) (sq.Sqlizer, error) {
	tags, err := encodeStrings(item.Tags)
	if err != nil {
		return nil, err
	}

	return b.Insert(itemsTable).
		Columns(itemColumns...).
		Values(
			item.ID, item.UserID, string(item.ItemType), item.Title, string(item.EncryptedData),
			item.FolderID, tags, item.IsTrashed, item.TrashedAt, item.SourceLinkID, item.SubmitterID,
			item.CreatedAt, item.UpdatedAt, item.LastAccessedAt,
		), nil
}

func buildSelectItemQuery(b sq.StatementBuilderType, id string) sq.SelectBuilder {
	return b.Select(itemColumns...).From(itemsTable).Where(sq.Eq{"id": id})
}

// buildListItemsQuery translates filter into a SELECT. The tag filter is
// applied after scanning because tags are stored as a JSON array.
func buildListItemsQuery(b sq.StatementBuilderType, filter models.ItemFilter) sq.SelectBuilder {
	q := b.Select(itemColumns...).From(itemsTable).Where(sq.Eq{"user_id": filter.UserID})

	if filter.FolderID != nil {
		q = q.Where(sq.Eq{"folder_id": *filter.FolderID})
	}
	if filter.ItemType != "" {
		q = q.Where(sq.Eq{"item_type": string(filter.ItemType)})
	}
	if filter.SourceLinkID != nil {
		q = q.Where(sq.Eq{"source_link_id": *filter.SourceLinkID})
	}

	switch {
	case filter.OnlyTrashed:
		q = q.Where(sq.Eq{"is_trashed": true})
	case !filter.IncludeTrashed:
		q = q.Where(sq.Eq{"is_trashed": false})
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		q = q.Where(sq.Expr("LOWER(title) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(query))+"%"))
	}

	return q.OrderBy("title", "id")
}

func buildListItemsByIDsQuery(b sq.StatementBuilderType, ids []string) sq.SelectBuilder {
	return b.Select(itemColumns...).From(itemsTable).Where(sq.Eq{"id": ids}).OrderBy("title", "id")
}

func buildUpdateItemQuery(b sq.StatementBuilderType, item models.VaultItem) (sq.Sqlizer, error) {
	tags, err := encodeStrings(item.Tags)
	if err != nil {
		return nil, err
	}

	return b.Update(itemsTable).
		Set("title", item.Title).
		Set("encrypted_data", string(item.EncryptedData)).
		Set("folder_id", item.FolderID).
		Set("tags", tags).
		Set("is_trashed", item.IsTrashed).
		Set("trashed_at", item.TrashedAt).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID}), nil
}

func scanItem(row rowScanner) (models.VaultItem, error) {
	var (
		item models.VaultItem
		tags string
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ItemType,
		&item.Title,
		&item.EncryptedData,
		&item.FolderID,
		&tags,
		&item.IsTrashed,
		&item.TrashedAt,
		&item.SourceLinkID,
		&item.SubmitterID,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.LastAccessedAt,
	)
	if err != nil {
		return models.VaultItem{}, err
	}

	if item.Tags, err = decodeStrings(tags); err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

// ---------------------------------------------------------------------------
// folders
// ---------------------------------------------------------------------------

func buildInsertFolderQuery(b sq.StatementBuilderType, f models.Folder) sq.InsertBuilder {
	return b.Insert(foldersTable).
		Columns(folderColumns...).
		Values(f.ID, f.UserID, f.Name, f.ParentID, f.CreatedAt, f.UpdatedAt)
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var f models.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.ParentID, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// ---------------------------------------------------------------------------
// shared_items
// ---------------------------------------------------------------------------

func buildInsertShareQuery(b sq.StatementBuilderType, s models.SharedItem) sq.InsertBuilder {
	return b.Insert(sharesTable).
		Columns(shareColumns...).
		Values(s.ID, s.ItemID, s.OwnerID, s.SharedWithID, int(s.Permission), s.CreatedAt, s.RevokedAt)
}

// buildRevokeQuery stamps revoked_at on the active rows of table matching
// where.
func buildRevokeQuery(b sq.StatementBuilderType, table string, where sq.Eq, at time.Time) sq.UpdateBuilder {
	return b.Update(table).
		Set("revoked_at", at).
		Where(where).
		Where(sq.Eq{"revoked_at": nil})
}

func scanShare(row rowScanner) (models.SharedItem, error) {
	var s models.SharedItem
	err := row.Scan(&s.ID, &s.ItemID, &s.OwnerID, &s.SharedWithID, &s.Permission, &s.CreatedAt, &s.RevokedAt)
	return s, err
}

// ---------------------------------------------------------------------------
// collection_links
// ---------------------------------------------------------------------------

func buildInsertLinkQuery(b sq.StatementBuilderType, l models.CollectionLink) (sq.Sqlizer, error) {
	allowed, err := encodeStrings(l.AllowedFields)
	if err != nil {
		return nil, err
	}

	return b.Insert(linksTable).
		Columns(linkColumns...).
		Values(
			l.ID, l.OwnerID, l.ItemID, string(l.LinkType), string(l.ItemType), allowed,
			l.ExpiresAt, l.MaxUses, l.CurrentUses, l.PassphraseHash, l.RequiresAuth,
			l.WebsiteURL, l.SiteName, l.SiteTagline, l.CustomFaviconURL,
			l.CreatedAt, l.RevokedAt,
		), nil
}

// buildConsumeLinkQuery is the conditional increment behind ConsumeLink. It
// matches a row only while the link is unrevoked, not past its expiry at now
// and below its use limit, so concurrent consumers cannot overshoot max_uses.
func buildConsumeLinkQuery(b sq.StatementBuilderType, id string, now time.Time) sq.UpdateBuilder {
	return b.Update(linksTable).
		Set("current_uses", sq.Expr("current_uses + 1")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"revoked_at": nil}).
		Where(sq.GtOrEq{"expires_at": now}).
		Where(sq.Or{
			sq.Eq{"max_uses": nil},
			sq.Expr("current_uses < max_uses"),
		})
}

func scanLink(row rowScanner) (models.CollectionLink, error) {
	var (
		l       models.CollectionLink
		allowed string
	)

	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.ItemID,
		&l.LinkType,
		&l.ItemType,
		&allowed,
		&l.ExpiresAt,
		&l.MaxUses,
		&l.CurrentUses,
		&l.PassphraseHash,
		&l.RequiresAuth,
		&l.WebsiteURL,
		&l.SiteName,
		&l.SiteTagline,
		&l.CustomFaviconURL,
		&l.CreatedAt,
		&l.RevokedAt,
	)
	if err != nil {
		return models.CollectionLink{}, err
	}

	if l.AllowedFields, err = decodeStrings(allowed); err != nil {
		return models.CollectionLink{}, err
	}
	return l, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// encodeStrings stores a string set as a JSON array. nil becomes "[]".
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
