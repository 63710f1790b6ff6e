// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLinkUnavailable     = errors.New("link unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// LinkError is returned when the server refuses to consume a link. Reason is
// the public reason ("unavailable", "exhausted" or "auth_required").
type LinkError struct {
	Status int
	Reason string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link unusable: %s", e.Reason)
}

// Unwrap lets callers match on [ErrLinkUnavailable] or, for
// "auth_required", on [ErrUnauthorized].
func (e *LinkError) Unwrap() error {
	if e.Reason == "auth_required" {
		return ErrUnauthorized
	}
	return ErrLinkUnavailable
}

// FieldError is a validation failure the server attributed to one field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrBadRequest, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrBadRequest
}
