// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) grantShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req grantRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.grantShare", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	permission, err := models.ParsePermission(req.Permission)
	if err != nil {
		writeError(w, r, "Handler.grantShare", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	share, err := h.services.Shares.Grant(ctx, actor, chi.URLParam(r, "id"), req.SharedWithID, permission)
	if err != nil {
		writeError(w, r, "Handler.grantShare", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "Handler.grantShare").
		Str("share_id", share.ID).
		Str("permission", share.Permission.String()).
		Msg("share granted")
	utils.WriteJSON(w, share, http.StatusCreated)
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	shares, err := h.services.Shares.ListForItem(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.listShares", err)
		return
	}
	utils.WriteJSON(w, nonNil(shares), http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	if err := h.services.Shares.Revoke(ctx, actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "Handler.revokeShare", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
