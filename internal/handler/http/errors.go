// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself, before a request reaches
// the service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidRequest is returned when the body or a query parameter cannot
	// be decoded.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAuthenticationRequired is returned by private routes when the
	// request carries no bearer token.
	ErrAuthenticationRequired = errors.New("authentication required")

	errRouteNotFound   = errors.New("route not found")
	errTooManyRequests = errors.New("too many requests")
)

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`

	// Field names the offending request field of a validation failure.
	Field string `json:"field,omitempty"`

	// Reason is the public reason of a link consumption failure, or the
	// detail of a validation failure.
	Reason string `json:"reason,omitempty"`
}
