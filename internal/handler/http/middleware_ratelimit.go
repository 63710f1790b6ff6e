// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Public link consumption is throttled per client and link so passphrases
// cannot be guessed at wire speed.
const (
	linkConsumeRate  = rate.Limit(1)
	linkConsumeBurst = 20
	limiterIdleTTL   = 10 * time.Minute
)

type multiLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*limBucket
}

type limBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newMultiLimiter(limit rate.Limit, burst int, ttl time.Duration) *multiLimiter {
	return &multiLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*limBucket),
	}
}

func (m *multiLimiter) allow(key string) bool {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.entries[key]
	if b == nil {
		b = &limBucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.entries[key] = b
	}
	b.lastSeen = now

	for k, v := range m.entries {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.entries, k)
		}
	}
	return b.lim.AllowN(now, 1)
}

// clientIP is the peer address. Forwarding headers are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// withLinkRateLimit rejects consumption attempts beyond the limiter's budget
// with 429, keyed by client address and link id.
func withLinkRateLimit(limiter *multiLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r) + "|" + chi.URLParam(r, "id")
			if !limiter.allow(key) {
				logger.FromRequest(r).Warn().
					Str("func", "withLinkRateLimit").
					Str("link_id", chi.URLParam(r, "id")).
					Msg("link consumption rate limited")
				writeError(w, r, "withLinkRateLimit", errTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
