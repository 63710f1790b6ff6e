// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

var testBuildInfo = models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc1234")

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv is a router over memory-backed services.
type testEnv struct {
	t        *testing.T
	clock    *testClock
	services *service.Services
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	deps := service.Deps{
		Storages:  store.NewMemoryStorages(store.NewMemoryStore()),
		Cipher:    crypto.NewCipherService(crypto.Key("http-test-key")),
		Hasher:    crypto.NewPassphraseHasherWithParams(crypto.Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 16, SaltLen: 8}),
		Validator: validators.NewVaultValidator(validators.MustNewPayloadValidator()),
		Clock:     clock.Now,
		IDs:       utils.NewUUIDGenerator(),
		Logger:    logger.Nop(),
	}
	cfg := config.StructuredConfig{
		App:   config.App{TokenSignKey: "http-test-sign-key", TokenIssuer: "go-pass-vault", TokenDuration: time.Hour},
		Links: config.Links{DefaultTTL: 24 * time.Hour, MaxTTL: 7 * 24 * time.Hour},
	}

	services := service.NewServicesWithDeps(deps, cfg)
	h := NewHandler(services, testBuildInfo, logger.Nop())

	return &testEnv{t: t, clock: clock, services: services, router: h.Init(0)}
}

// bearer issues a token for principalID.
func (e *testEnv) bearer(principalID string) string {
	e.t.Helper()
	token, err := e.services.Auth.IssueToken(context.Background(), principalID)
	require.NoError(e.t, err)
	return "Bearer " + token.SignedString
}

// do sends body as JSON. A nil body sends no body.
func (e *testEnv) do(method, path, auth string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func credentialBody(title, password string) map[string]any {
	return map[string]any{
		"item_type": "credential",
		"title":     title,
		"payload":   map[string]any{"username": "alice", "password": password},
	}
}

// createItem stores a credential through the API and returns its id.
func (e *testEnv) createItem(auth, title string) string {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/items", auth, credentialBody(title, "s3cret!"))
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.VaultItem](e.t, rec).ID
}
