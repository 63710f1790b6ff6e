// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// withPrincipal resolves the Authorization header into a principal and
// stores it in the request context. A missing header yields the anonymous
// principal; a header that does not verify is rejected with 401.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := h.services.Auth.ResolvePrincipal(ctx, r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, "Handler.withPrincipal", err)
			return
		}

		l := logger.FromRequest(r).With().
			Str("principal_id", principal.ID).
			Bool("anonymous", !principal.IsAuthenticated()).
			Logger()
		ctx = l.WithContext(utils.WithPrincipal(ctx, principal))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthenticated rejects anonymous callers with 401.
func requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, _ := utils.GetPrincipalFromContext(r.Context()); !principal.IsAuthenticated() {
			writeError(w, r, "requireAuthenticated", ErrAuthenticationRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
