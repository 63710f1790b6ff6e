// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMultiLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ml := newMultiLimiter(rate.Limit(1), 2, time.Minute)
	ml.now = func() time.Time { return now }

	assert.True(t, ml.allow("a"))
	assert.True(t, ml.allow("a"))
	assert.False(t, ml.allow("a"), "burst exhausted")
	assert.True(t, ml.allow("b"), "keys are independent")

	now = now.Add(time.Second)
	assert.True(t, ml.allow("a"), "one token refilled")
}

func TestMultiLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ml := newMultiLimiter(rate.Limit(1), 1, time.Minute)
	ml.now = func() time.Time { return now }

	ml.allow("a")
	now = now.Add(2 * time.Minute)
	ml.allow("b")

	ml.mu.Lock()
	defer ml.mu.Unlock()
	assert.NotContains(t, ml.entries, "a")
	assert.Contains(t, ml.entries, "b")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(req))
}

func TestWithLinkRateLimit(t *testing.T) {
	limiter := newMultiLimiter(rate.Limit(0.001), 1, time.Minute)

	router := chi.NewRouter()
	router.With(withLinkRateLimit(limiter)).Post("/links/{id}/open", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(id string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/links/"+id+"/open", nil))
		return rec
	}

	require.Equal(t, http.StatusOK, send("one").Code)

	rec := send("one")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, send("two").Code, "other links have their own budget")
}
