// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// errorStatuses is matched in order; the first entry err wraps wins, so
// domain sentinels come before the generic store ones.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidRequest, http.StatusBadRequest},
	{ErrAuthenticationRequired, http.StatusUnauthorized},
	{errRouteNotFound, http.StatusNotFound},
	{errTooManyRequests, http.StatusTooManyRequests},

	{validators.ErrValidation, http.StatusBadRequest},
	{models.ErrUnknownItemType, http.StatusBadRequest},

	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrPermissionDenied, http.StatusForbidden},
	{service.ErrInvalidShareTarget, http.StatusBadRequest},
	{service.ErrWrongLinkKind, http.StatusBadRequest},

	{service.ErrItemNotFound, http.StatusNotFound},
	{service.ErrFolderNotFound, http.StatusNotFound},
	{service.ErrShareNotFound, http.StatusNotFound},
	{service.ErrLinkNotFound, http.StatusNotFound},

	{service.ErrItemTrashed, http.StatusConflict},
	{service.ErrItemNotTrashed, http.StatusConflict},
	{service.ErrShareRevoked, http.StatusConflict},
	{service.ErrShareExists, http.StatusConflict},
	{service.ErrLinkRevoked, http.StatusConflict},
	{service.ErrFolderCycle, http.StatusConflict},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrAlreadyExists, http.StatusConflict},
	{store.ErrAlreadyRevoked, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// responseFromError builds the status and body reported for err. Link
// consumption failures carry only their public reason, and server-side
// failures never echo the underlying error.
func responseFromError(err error) (int, errorResponse) {
	var lue *service.LinkUnusableError
	if errors.As(err, &lue) {
		reason := lue.PublicReason()
		status := http.StatusGone
		if reason == service.ReasonAuthRequired {
			status = http.StatusUnauthorized
		}
		return status, errorResponse{Error: service.ErrLinkUnusable.Error(), Reason: string(reason)}
	}

	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return http.StatusBadRequest, errorResponse{Error: validators.ErrValidation.Error(), Field: fe.Field, Reason: fe.Reason}
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return status, errorResponse{Error: http.StatusText(status)}
	}
	return status, errorResponse{Error: err.Error()}
}

// writeError logs err on the request logger and answers with the mapped
// status.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, body := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, body, status)
}
