// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a queried record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert violates a uniqueness
	// constraint, e.g. a second active grant for the same principal and item.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrLinkNotConsumable is returned by ConsumeLink when the conditional
	// increment matched no row: the link is revoked, expired, exhausted, or
	// does not exist. Callers reload the link to tell these apart.
	ErrLinkNotConsumable = errors.New("collection link is not consumable")

	// ErrAlreadyRevoked is returned when revoking a grant or link that was
	// revoked before. Revocation is terminal.
	ErrAlreadyRevoked = errors.New("record already revoked")

	// ErrUnsupportedDriver is returned when the configured storage driver is
	// unknown.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON-encoded column (tags,
	// allowed fields) cannot be encoded or decoded.
	ErrEncodingColumn = errors.New("failed to encode column")
)
