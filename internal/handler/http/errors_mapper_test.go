// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   errorResponse
	}{
		{
			name:       "field error names the field",
			err:        fmt.Errorf("wrapped: %w", validators.NewFieldError("title", "is required")),
			wantStatus: http.StatusBadRequest,
			wantBody:   errorResponse{Error: "validation failed", Field: "title", Reason: "is required"},
		},
		{
			name:       "passphrase mismatch is collapsed",
			err:        &service.LinkUnusableError{Reason: service.ReasonPassphraseMismatch},
			wantStatus: http.StatusGone,
			wantBody:   errorResponse{Error: "collection link is unusable", Reason: "unavailable"},
		},
		{
			name:       "expired is collapsed",
			err:        &service.LinkUnusableError{Reason: service.ReasonExpired},
			wantStatus: http.StatusGone,
			wantBody:   errorResponse{Error: "collection link is unusable", Reason: "unavailable"},
		},
		{
			name:       "exhausted is reported",
			err:        &service.LinkUnusableError{Reason: service.ReasonExhausted},
			wantStatus: http.StatusGone,
			wantBody:   errorResponse{Error: "collection link is unusable", Reason: "exhausted"},
		},
		{
			name:       "auth required asks for credentials",
			err:        &service.LinkUnusableError{Reason: service.ReasonAuthRequired},
			wantStatus: http.StatusUnauthorized,
			wantBody:   errorResponse{Error: "collection link is unusable", Reason: "auth_required"},
		},
		{
			name:       "permission denied",
			err:        service.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantBody:   errorResponse{Error: "permission denied"},
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading: %w", service.ErrItemNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   errorResponse{Error: "loading: vault item not found"},
		},
		{
			name:       "store conflict",
			err:        store.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   errorResponse{Error: "record already exists"},
		},
		{
			name:       "invalid token",
			err:        service.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   errorResponse{Error: "invalid token"},
		},
		{
			name:       "internal failure is not echoed",
			err:        fmt.Errorf("%w: connection reset", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorResponse{Error: "Internal Server Error"},
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorResponse{Error: "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestStatusFromError_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "permission before generic not found",
			err:  errors.Join(store.ErrNotFound, service.ErrPermissionDenied),
			want: http.StatusForbidden,
		},
		{
			name: "domain conflict before generic not found",
			err:  errors.Join(store.ErrNotFound, service.ErrFolderCycle),
			want: http.StatusConflict,
		},
		{
			name: "validation before permission",
			err:  errors.Join(service.ErrPermissionDenied, validators.ErrValidation),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
