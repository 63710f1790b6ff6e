// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it is encrypted or stored.
//
// [VaultValidator] accepts the write models ([models.NewItem],
// [models.ItemUpdate], [models.Folder], [models.SharedItem],
// [models.NewCollectionLink]); payloads are checked against a per-type JSON
// Schema by [PayloadValidator]. Every failure is a *[FieldError] that wraps
// [ErrValidation], so transports can report the offending field.
package validators

import "context"

// Validator validates one write model. When fields are given only those
// fields are checked (e.g. [FieldName] for a folder rename); otherwise the
// whole value is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
