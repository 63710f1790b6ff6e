// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds every request's context;
// zero disables the bound.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}
	router.Use(h.withPrincipal)

	router.Get("/api/version", h.getServerVersion)

	// link consumption is open to anonymous callers
	router.Route("/api/public/links/{id}", func(r chi.Router) {
		r.Get("/", h.linkStatus)
		r.With(withLinkRateLimit(h.linkLimiter)).Post("/submit", h.submitLink)
		r.With(withLinkRateLimit(h.linkLimiter)).Post("/open", h.openLink)
	})

	router.Group(func(r chi.Router) {
		r.Use(requireAuthenticated)

		r.Route("/api/items", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.createItem)
			r.Get("/shared", h.listSharedItems)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getItem)
				r.Patch("/", h.updateItem)
				r.Delete("/", h.purgeItem)
				r.Post("/reveal", h.revealItem)
				r.Post("/trash", h.trashItem)
				r.Post("/restore", h.restoreItem)
				r.Get("/shares", h.listShares)
				r.Post("/shares", h.grantShare)
			})
		})

		r.Delete("/api/shares/{id}", h.revokeShare)

		r.Route("/api/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.createFolder)
			r.Patch("/{id}", h.updateFolder)
			r.Delete("/{id}", h.deleteFolder)
		})

		r.Route("/api/links", func(r chi.Router) {
			r.Get("/", h.listLinks)
			r.Post("/", h.createLink)
			r.Delete("/{id}", h.revokeLink)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, "NotFound", errRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
