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

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req createItemRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createItem", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	newItem, err := req.toNewItem()
	if err != nil {
		writeError(w, r, "Handler.createItem", err)
		return
	}

	item, err := h.services.Items.Create(ctx, actor, newItem)
	if err != nil {
		writeError(w, r, "Handler.createItem", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "Handler.createItem").Str("item_id", item.ID).Msg("item created")
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	filter, err := itemFilterFromQuery(r)
	if err != nil {
		writeError(w, r, "Handler.listItems", err)
		return
	}

	items, err := h.services.Items.List(ctx, actor, filter)
	if err != nil {
		writeError(w, r, "Handler.listItems", err)
		return
	}
	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) listSharedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	items, err := h.services.Items.ListShared(ctx, actor)
	if err != nil {
		writeError(w, r, "Handler.listSharedItems", err)
		return
	}
	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	item, err := h.services.Items.Get(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.getItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) revealItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	revealed, err := h.services.Items.Reveal(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.revealItem", err)
		return
	}
	utils.WriteJSON(w, revealed, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)
	itemID := chi.URLParam(r, "id")

	var req updateItemRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateItem", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	// the payload variant is fixed by the stored item
	var itemType models.ItemType
	if len(req.Payload) > 0 {
		current, err := h.services.Items.Get(ctx, actor, itemID)
		if err != nil {
			writeError(w, r, "Handler.updateItem", err)
			return
		}
		itemType = current.ItemType
	}

	update, err := req.toItemUpdate(itemType)
	if err != nil {
		writeError(w, r, "Handler.updateItem", err)
		return
	}

	item, err := h.services.Items.Update(ctx, actor, itemID, update)
	if err != nil {
		writeError(w, r, "Handler.updateItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) trashItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	item, err := h.services.Items.Trash(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.trashItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) restoreItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	item, err := h.services.Items.Restore(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.restoreItem", err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) purgeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	if err := h.services.Items.Purge(ctx, actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "Handler.purgeItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// itemFilterFromQuery reads the listing filter from the query string:
// folder, type, tag, q, source_link and trashed ("include" or "only").
func itemFilterFromQuery(r *http.Request) (models.ItemFilter, error) {
	q := r.URL.Query()

	filter := models.ItemFilter{
		ItemType: models.ItemType(q.Get("type")),
		Tag:      q.Get("tag"),
		Query:    q.Get("q"),
	}
	if folder := q.Get("folder"); folder != "" {
		filter.FolderID = &folder
	}
	if link := q.Get("source_link"); link != "" {
		filter.SourceLinkID = &link
	}
	if filter.ItemType != "" && !filter.ItemType.IsValid() {
		return models.ItemFilter{}, fmt.Errorf("%w: %q", models.ErrUnknownItemType, filter.ItemType)
	}

	switch q.Get("trashed") {
	case "":
	case "include":
		filter.IncludeTrashed = true
	case "only":
		filter.OnlyTrashed = true
	default:
		return models.ItemFilter{}, fmt.Errorf("%w: trashed must be include or only", ErrInvalidRequest)
	}
	return filter, nil
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
