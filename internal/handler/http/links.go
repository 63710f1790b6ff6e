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

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req createLinkRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createLink", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	link, err := h.services.Links.Create(ctx, actor, req.toNewLink())
	if err != nil {
		writeError(w, r, "Handler.createLink", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "Handler.createLink").
		Str("link_id", link.ID).
		Bool("disclosure", link.IsDisclosure()).
		Msg("collection link created")
	utils.WriteJSON(w, link, http.StatusCreated)
}

func (h *Handler) listLinks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	links, err := h.services.Links.List(ctx, actor)
	if err != nil {
		writeError(w, r, "Handler.listLinks", err)
		return
	}
	utils.WriteJSON(w, nonNil(links), http.StatusOK)
}

func (h *Handler) revokeLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	if err := h.services.Links.Revoke(ctx, actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "Handler.revokeLink", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) linkStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.Links.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.linkStatus", err)
		return
	}
	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) submitLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req submitRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.submitLink", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	item, err := h.services.Links.Submit(ctx, actor, chi.URLParam(r, "id"), models.LinkSubmission{
		Title:      req.Title,
		Fields:     req.Fields,
		Passphrase: req.Passphrase,
	})
	if err != nil {
		writeError(w, r, "Handler.submitLink", err)
		return
	}

	// the submitter learns only that the item was stored
	utils.WriteJSON(w, map[string]string{"id": item.ID}, http.StatusCreated)
}

func (h *Handler) openLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req openRequest
	if r.ContentLength != 0 {
		if err := utils.ReadJSON(r, &req); err != nil {
			writeError(w, r, "Handler.openLink", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
			return
		}
	}

	disclosed, err := h.services.Links.Open(ctx, actor, chi.URLParam(r, "id"), req.Passphrase)
	if err != nil {
		writeError(w, r, "Handler.openLink", err)
		return
	}
	utils.WriteJSON(w, disclosed, http.StatusOK)
}
