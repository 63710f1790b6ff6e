// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// stubAuth resolves every header through resolve.
type stubAuth struct {
	resolve func(header string) (models.Principal, error)
}

func (s stubAuth) IssueToken(context.Context, string) (models.Token, error) {
	return models.Token{}, errors.New("not implemented")
}

func (s stubAuth) ResolvePrincipal(_ context.Context, header string) (models.Principal, error) {
	return s.resolve(header)
}

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "reuses caller trace id", incoming: "my-trace", wantSame: true},
		{name: "generates a uuid", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, got, line["trace_id"])
		})
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Get("/api/public/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/links/secret-link-id", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	line := buf.String()
	assert.Contains(t, line, `"route":"/api/public/links/{id}"`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":5`)
	assert.NotContains(t, line, "secret-link-id")
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		n, err := w.Write([]byte("hello"))

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("a"))
		w.Write([]byte("bc"))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, 3, w.size)
		assert.Same(t, rec, w.Unwrap())
	})
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		w.Write(append([]byte("echo: "), body...))
	})

	compress := func(t *testing.T, s string) *bytes.Buffer {
		t.Helper()
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(s))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		return &buf
	}

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
		req.Header.Set("Accept-Encoding", "deflate, gzip;q=1.0")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "echo: plain", string(got))
	})

	t.Run("inflates gzip request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", compress(t, "packed"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "echo: packed", rec.Body.String())
	})

	t.Run("rejects corrupt gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{method: http.MethodGet, want: http.StatusOK},
		{method: http.MethodPost, want: http.StatusNotFound},
		{method: http.MethodDelete, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/things/42", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWithPrincipal(t *testing.T) {
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{Auth: stubAuth{resolve: func(header string) (models.Principal, error) {
			switch header {
			case "":
				return models.Anonymous(), nil
			case "Bearer good":
				return models.User("alice"), nil
			default:
				return models.Principal{}, service.ErrInvalidToken
			}
		}}},
	}

	var seen models.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		private    bool
		wantStatus int
		want       models.Principal
	}{
		{name: "anonymous on public route", wantStatus: http.StatusOK, want: models.Anonymous()},
		{name: "user on public route", header: "Bearer good", wantStatus: http.StatusOK, want: models.User("alice")},
		{name: "bad token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "anonymous on private route", private: true, wantStatus: http.StatusUnauthorized},
		{name: "user on private route", header: "Bearer good", private: true, wantStatus: http.StatusOK, want: models.User("alice")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = models.Principal{}

			var chain http.Handler = next
			if tt.private {
				chain = requireAuthenticated(chain)
			}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.withPrincipal(chain).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.want, seen)
			}
		})
	}
}
