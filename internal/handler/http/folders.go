// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	var req createFolderRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createFolder", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	folder, err := h.services.Folders.Create(ctx, actor, req.Name, req.ParentID)
	if err != nil {
		writeError(w, r, "Handler.createFolder", err)
		return
	}
	utils.WriteJSON(w, folder, http.StatusCreated)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	folders, err := h.services.Folders.List(ctx, actor)
	if err != nil {
		writeError(w, r, "Handler.listFolders", err)
		return
	}
	utils.WriteJSON(w, nonNil(folders), http.StatusOK)
}

// updateFolder applies a rename and then a move, whichever the body names.
func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)
	folderID := chi.URLParam(r, "id")

	var req updateFolderRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateFolder", fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	parentID, move, err := optionalID(req.ParentID)
	if err != nil {
		writeError(w, r, "Handler.updateFolder", err)
		return
	}
	if req.Name == nil && !move {
		writeError(w, r, "Handler.updateFolder", fmt.Errorf("%w: nothing to update", ErrInvalidRequest))
		return
	}

	var folder models.Folder
	if req.Name != nil {
		if folder, err = h.services.Folders.Rename(ctx, actor, folderID, *req.Name); err != nil {
			writeError(w, r, "Handler.updateFolder", err)
			return
		}
	}
	if move {
		if folder, err = h.services.Folders.Move(ctx, actor, folderID, parentID); err != nil {
			writeError(w, r, "Handler.updateFolder", err)
			return
		}
	}
	utils.WriteJSON(w, folder, http.StatusOK)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := utils.GetPrincipalFromContext(ctx)

	if err := h.services.Folders.Delete(ctx, actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "Handler.deleteFolder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
