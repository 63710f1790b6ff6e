// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the taxonomy sentinel of every validation failure.
	// Callers match it with [errors.Is]; [FieldError] carries the details.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError reports the first field that failed validation. It unwraps to
// [ErrValidation].
type FieldError struct {
	// Field is the JSON name of the offending field, or a dotted path for
	// nested values such as "customFields.0.name".
	Field string

	// Reason is a short human-readable description, e.g. "is required".
	Reason string
}

// NewFieldError returns a *FieldError for field.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}
